package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"

	"matchday/src/db"
	"matchday/src/models"
	"matchday/src/types"
	"matchday/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/yeqown/go-qrcode"
)

func verificationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/admissions/verify", func(ctx *gin.Context) {
			var body types.VerifyTicketRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			role := ctx.GetString("role")
			result, err := utils.VerifyTicket(&body, userId, role)
			if err != nil {
				log.Printf("Error verifying ticket [%s]: %s\n", body.Reference, err.Error())
				switch {
				case errors.Is(err, types.ErrInvalidPassType):
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				case errors.Is(err, types.ErrForbidden):
					ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
				case errors.Is(err, types.ErrNotFound):
					if result != nil {
						ctx.JSON(http.StatusNotFound, result)
						return
					}
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				default:
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				}
				return
			}
			ctx.JSON(http.StatusOK, result)
		}).
		GET("/tickets/:reference/code", func(ctx *gin.Context) {
			reference := ctx.Params.ByName("reference")
			userId := ctx.GetUint("id")
			var txn models.Transaction
			gdb := db.GetDb()
			if err := gdb.
				Where(&models.Transaction{Reference: reference, Status: types.TRANSACTION_SUCCESS}).
				First(&txn).
				Error; err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			if txn.UserID != userId {
				ctx.Status(http.StatusForbidden)
				return
			}
			if txn.QRCodeData == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			qrc, err := qrcode.New(*txn.QRCodeData)
			if err != nil {
				log.Printf("Error generating qrcode for [%s]: %s\n", reference, err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			tempdir := os.Getenv("TEMP_DIR")
			if tempdir == "" {
				tempdir = os.TempDir()
			}
			filepath := path.Join(tempdir, fmt.Sprintf("%s.jpeg", reference))
			if err := qrc.Save(filepath); err != nil {
				log.Printf("Could not save qrcode to file [%s]: %s\n", filepath, err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.FileAttachment(filepath, "eticket.jpeg")
		})

	return g
}
