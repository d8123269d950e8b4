package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"matchday/src/db"
	"matchday/src/lib"
	"matchday/src/middlewares"
	"matchday/src/models"
	"matchday/src/types"
	"matchday/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

func paystackWebhookRoute(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	apiv1.POST("/webhook/paystack", func(ctx *gin.Context) {
		payload, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			log.Printf("Error reading request body: %s\n", err.Error())
			ctx.Status(http.StatusServiceUnavailable)
			return
		}
		// Signature check comes first. Nothing below runs on a forged body.
		pc := lib.GetPaystackClient()
		signature := ctx.GetHeader("x-paystack-signature")
		if !pc.VerifySignature(payload, signature) {
			log.Printf("Error verifying webhook signature: %s\n", types.ErrInvalidSignature.Error())
			ctx.Status(http.StatusUnauthorized)
			return
		}
		eventType := gjson.GetBytes(payload, "event").String()
		log.Printf("[PaystackEvent] %s\n", eventType)
		switch eventType {
		case "charge.success":
			reference := gjson.GetBytes(payload, "data.reference").String()
			if reference == "" {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if err := utils.ApplyConfirmation(reference); err != nil {
				log.Printf("Error applying confirmation for [%s]: %s\n", reference, err.Error())
				if errors.Is(err, types.ErrNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.Status(http.StatusInternalServerError)
				return
			}
		case "charge.failed":
			reference := gjson.GetBytes(payload, "data.reference").String()
			if reference == "" {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if err := utils.MarkFailed(reference); err != nil {
				log.Printf("Error marking transaction failed for [%s]: %s\n", reference, err.Error())
				if errors.Is(err, types.ErrNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.Status(http.StatusInternalServerError)
				return
			}
		}
		ctx.Status(http.StatusOK)
	})
	return apiv1
}

func payoutHandlers(g *gin.Engine) *gin.RouterGroup {
	payouts := apiv1Group(g).Group("/payouts")
	payouts.Use(middlewares.AuthMiddleware)
	payouts.
		POST("/onboarding", func(ctx *gin.Context) {
			var body types.CreateSubaccountRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			role := ctx.GetString("role")
			if role != types.ROLE_ORGANIZER && role != types.ROLE_ADMIN {
				ctx.Status(http.StatusForbidden)
				return
			}
			gdb := db.GetDb()
			var user models.User
			if err := gdb.Where(&models.User{ID: userId}).First(&user).Error; err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			pc := lib.GetPaystackClient()
			out, err := pc.CreateSubaccount(context.Background(), &lib.CreateSubaccountInput{
				BusinessName:  user.Name,
				BankCode:      body.BankCode,
				AccountNumber: body.AccountNumber,
			})
			if err != nil {
				log.Printf("Error while setting up payout account: %s\n", err.Error())
				if errors.Is(err, lib.ErrAccountResolution) {
					ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
				return
			}
			if err := gdb.Transaction(func(tx *gorm.DB) error {
				return tx.
					Model(&models.User{}).
					Where("id = ?", user.ID).
					Updates(&models.User{
						SubaccountCode: &out.SubaccountCode,
						BankCode:       &body.BankCode,
						AccountNumber:  &body.AccountNumber,
						AccountName:    &out.AccountName,
					}).
					Error
			}); err != nil {
				log.Printf("Error saving payout account for user %d: %s\n", user.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"subaccount_code": out.SubaccountCode,
				"account_name":    out.AccountName,
			})
		}).
		GET("/account", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var user models.User
			gdb := db.GetDb()
			if err := gdb.
				Select("id", "subaccount_code", "account_name", "bank_code").
				Where(&models.User{ID: userId}).
				First(&user).
				Error; err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			onboarded := user.SubaccountCode != nil && *user.SubaccountCode != ""
			ctx.JSON(http.StatusOK, gin.H{
				"onboarded":       onboarded,
				"subaccount_code": user.SubaccountCode,
				"account_name":    user.AccountName,
			})
		})
	return payouts
}
