package main

import (
	"errors"
	"log"
	"net/http"

	"matchday/src/db"
	"matchday/src/lib"
	"matchday/src/models"
	"matchday/src/types"
	"matchday/src/utils"

	"github.com/gin-gonic/gin"
)

func transactionHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/checkout", func(ctx *gin.Context) {
			var body types.CheckoutRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			email := ctx.GetString("email")
			session, err := utils.InitiatePayment(userId, email, body.EventID)
			if err != nil {
				log.Printf("[Checkout] error for event %d: %s\n", body.EventID, err.Error())
				switch {
				case errors.Is(err, types.ErrNotFound):
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				case errors.Is(err, types.ErrAlreadyPaid):
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				case errors.Is(err, types.ErrEventNotPayable),
					errors.Is(err, types.ErrOrganizerNotPayable):
					ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				default:
					var ge *lib.GatewayError
					if errors.As(err, &ge) {
						ctx.JSON(http.StatusBadGateway, gin.H{"error": ge.Message})
						return
					}
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				}
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"reference":         session.Reference,
				"authorization_url": session.AuthorizationURL,
			})
		}).
		GET("/checkout/:reference/url", func(ctx *gin.Context) {
			reference := ctx.Params.ByName("reference")
			url, err := utils.CheckoutURL(reference)
			if err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"authorization_url": url})
		}).
		GET("/transactions", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var transactions []models.Transaction
			db := db.GetDb()
			if err := db.
				Where(&models.Transaction{UserID: userId}).
				Order("created_at desc").
				Limit(50).
				Find(&transactions).
				Error; err != nil {
				log.Printf("Error retrieving transactions: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": transactions, "count": len(transactions)})
		}).
		GET("/transactions/:reference", func(ctx *gin.Context) {
			reference := ctx.Params.ByName("reference")
			userId := ctx.GetUint("id")
			role := ctx.GetString("role")
			var txn models.Transaction
			db := db.GetDb()
			if err := db.
				Where(&models.Transaction{Reference: reference}).
				First(&txn).
				Error; err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			if txn.UserID != userId && role != types.ROLE_ADMIN {
				ctx.Status(http.StatusForbidden)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": txn})
		})

	return g
}
