package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"matchday/src/db"
	"matchday/src/lib"
	"matchday/src/lib/mailer"
	"matchday/src/models"
	"matchday/src/types"
	"matchday/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func otpKey(email string) string {
	return fmt.Sprintf("otp:%s", email)
}

func AuthRegister(ctx *gin.Context) (id *uint, status int, err error) {
	var body types.RegisterRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	role := body.Role
	if role == "" {
		role = types.ROLE_PLAYER
	}

	gdb := db.GetDb()
	newUser := models.User{
		Name:  body.Name,
		Email: body.Email,
		Role:  role,
	}
	err = gdb.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.
			Model(&models.User{}).
			Select("id").
			Where("email = ?", body.Email).
			First(&existing).
			Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		if existing.ID > 0 {
			err := errors.New("user is already registered. Please proceed to Log In")
			log.Printf("error: %s\n", err.Error())
			return err
		}
		if err := tx.Create(&newUser).Error; err != nil {
			log.Printf("Error creating user: %s\n", err.Error())
			return fmt.Errorf("error creating user: %s", body.Email)
		}
		return nil
	})
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	if err := sendCode(newUser.Email); err != nil {
		log.Printf("Could not send verification code to %s: %s\n", newUser.Email, err.Error())
	}
	return &newUser.ID, http.StatusCreated, nil
}

func AuthRequestCode(ctx *gin.Context) (status int, err error) {
	var body types.RequestCodeRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return http.StatusBadRequest, err
	}
	gdb := db.GetDb()
	var user models.User
	if err := gdb.
		Model(&models.User{}).
		Select("id", "email").
		Where("email = ?", body.Email).
		First(&user).
		Error; err != nil {
		return http.StatusNotFound, errors.New("no account found for this email")
	}
	if err := sendCode(user.Email); err != nil {
		return http.StatusBadRequest, err
	}
	return http.StatusOK, nil
}

func AuthVerifyCode(ctx *gin.Context) (token *string, status int, err error) {
	var body types.VerifyCodeRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	rd := lib.GetRedisClient()
	if rd == nil {
		return nil, http.StatusInternalServerError, errors.New("verification is unavailable")
	}
	code, err := rd.Get(context.Background(), otpKey(body.Email)).Result()
	if err != nil || code != body.Code {
		return nil, http.StatusUnauthorized, errors.New("invalid or expired code")
	}
	rd.Del(context.Background(), otpKey(body.Email))

	gdb := db.GetDb()
	var user models.User
	if err := gdb.Where(&models.User{Email: body.Email}).First(&user).Error; err != nil {
		return nil, http.StatusNotFound, errors.New("no account found for this email")
	}
	if !user.EmailVerified {
		now := time.Now()
		if err := gdb.
			Model(&models.User{}).
			Where("id = ?", user.ID).
			Updates(map[string]any{"email_verified": true, "verified_at": now}).
			Error; err != nil {
			log.Printf("Error marking user %d verified: %s\n", user.ID, err.Error())
		}
	}

	jwt, err := utils.GenerateJWT(user.Email, user.ID, user.Role)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return &jwt, http.StatusOK, nil
}

func sendCode(email string) error {
	rd := lib.GetRedisClient()
	if rd == nil {
		return errors.New("verification is unavailable")
	}
	code := utils.NewVerificationCode()
	if err := rd.SetEx(context.Background(), otpKey(email), code, 10*time.Minute).Err(); err != nil {
		return err
	}
	go mailer.SendVerificationCode(email, code)
	return nil
}
