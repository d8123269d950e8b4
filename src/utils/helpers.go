package utils

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strconv"
	"strings"
	"time"

	"matchday/src/config"
	"matchday/src/db"
	"matchday/src/models"
	"matchday/src/types"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func GenerateJWT(email string, userId uint, role string) (string, error) {
	claims := types.Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userId), 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(config.JWTSecret())
}

// NewReference builds the reference that joins a checkout session, the
// gateway charge and the webhook confirmation.
func NewReference() string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("MD-%d-%s", time.Now().UnixMilli(), suffix)
}

// TicketPayloadJSON serializes the document embedded in a ticket QR code.
func TicketPayloadJSON(userId, eventId uint, reference string) (string, error) {
	payload := types.TicketPayload{
		UserID:    strconv.FormatUint(uint64(userId), 10),
		EventID:   strconv.FormatUint(uint64(eventId), 10),
		Reference: reference,
		Type:      types.TicketPassType,
	}
	b, err := json.Marshal(&payload)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// NewVerificationCode returns a 6-digit one-time code for email verification.
func NewVerificationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return fmt.Sprintf("%06d", time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("%06d", n.Int64())
}

func EventSlug(title string) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s-%s", slug.Make(title), suffix)
}

func CreateNewEvent(params *types.CreateEventRequestBody, creatorId uint) (uint, error) {
	date, err := time.Parse(config.DATE_PARSE_FORMAT, params.Date)
	if err != nil {
		log.Printf("Error parsing date: %s\n", err.Error())
		return 0, err
	}

	var about *string
	if params.About != "" {
		about = &params.About
	}
	event := models.Event{
		Title:          params.Title,
		Slug:           EventSlug(params.Title),
		About:          about,
		Location:       params.Location,
		Date:           date,
		StartTime:      params.StartTime,
		EndTime:        params.EndTime,
		PricePerPlayer: params.PricePerPlayer,
		Slots:          params.Slots,
		TeamOnly:       params.TeamOnly,
		Status:         types.EVENT_OPEN,
		CreatedBy:      creatorId,
		Participants:   types.Participants{},
	}

	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where(&models.User{ID: creatorId}).First(&user).Error; err != nil {
			return err
		}
		if user.Role != types.ROLE_ORGANIZER && user.Role != types.ROLE_ADMIN {
			return types.ErrForbidden
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return event.ID, nil
}

// CompletePastEvents flips open events whose date has passed to completed.
// Runs as a recurring background job.
func CompletePastEvents() {
	db := db.GetDb()
	res := db.
		Model(&models.Event{}).
		Where("status = ? AND date < ?", types.EVENT_OPEN, time.Now().Truncate(24*time.Hour)).
		Update("status", types.EVENT_COMPLETED)
	if res.Error != nil {
		log.Printf("[housekeeping] Error completing past events: %s\n", res.Error.Error())
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[housekeeping] Completed %d past events\n", res.RowsAffected)
	}
}

// UpdateEventStatus moves an event between statuses, guarded so a stale
// client cannot revive a canceled or completed event.
func UpdateEventStatus(id uint, newStatus types.EventStatus, oldStatus types.EventStatus) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Model(&models.Event{}).
			Where(&models.Event{ID: id, Status: oldStatus}).
			Update("status", newStatus)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return errors.New("event is not in the expected status")
		}
		return nil
	})
}
