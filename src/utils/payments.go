package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"matchday/src/config"
	"matchday/src/db"
	"matchday/src/lib"
	"matchday/src/models"
	"matchday/src/types"

	"gorm.io/gorm"
)

// ComputeSplit divides a price into the organizer and platform shares.
// Both shares are rounded to 2 decimal places and always sum to the price.
func ComputeSplit(price float64) (organizer float64, platform float64, err error) {
	if price < 0 {
		return 0, 0, types.ErrNegativePrice
	}
	organizer = math.Round(price*float64(lib.OrganizerSharePercent)) / 100
	platform = math.Round((price-organizer)*100) / 100
	return organizer, platform, nil
}

type CheckoutSession struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
}

// InitiatePayment validates the event and the payer, records a pending
// transaction and asks the gateway for a checkout URL. The pending row is
// written before the gateway call so a confirmation webhook always has a
// transaction to land on.
func InitiatePayment(userId uint, email string, eventId uint) (*CheckoutSession, error) {
	gdb := db.GetDb()
	var event models.Event
	var organizer models.User
	txn := models.Transaction{
		EventID:   eventId,
		UserID:    userId,
		Reference: NewReference(),
		Status:    types.TRANSACTION_PENDING,
	}
	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&models.Event{ID: eventId}).First(&event).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return err
		}
		if event.Status != types.EVENT_OPEN || event.PricePerPlayer <= 0 {
			return types.ErrEventNotPayable
		}
		if err := tx.Where(&models.User{ID: event.CreatedBy}).First(&organizer).Error; err != nil {
			return err
		}
		if organizer.SubaccountCode == nil || *organizer.SubaccountCode == "" {
			return types.ErrOrganizerNotPayable
		}

		var paid int64
		if err := tx.
			Model(&models.Transaction{}).
			Where(&models.Transaction{EventID: eventId, UserID: userId, Status: types.TRANSACTION_SUCCESS}).
			Count(&paid).Error; err != nil {
			return err
		}
		if paid > 0 {
			return types.ErrAlreadyPaid
		}

		organizerShare, platformShare, err := ComputeSplit(event.PricePerPlayer)
		if err != nil {
			return err
		}
		txn.Amount = event.PricePerPlayer
		txn.OrganizerShare = organizerShare
		txn.PlatformShare = platformShare
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	pc := lib.GetPaystackClient()
	out, err := pc.InitializeTransaction(context.Background(), &lib.InitializeTransactionInput{
		Email:               email,
		Amount:              int64(math.Round(event.PricePerPlayer * 100)),
		Reference:           txn.Reference,
		CallbackURL:         fmt.Sprintf("%s/events/%d", config.AppHost(), eventId),
		EventID:             eventId,
		UserID:              userId,
		OrganizerSubaccount: *organizer.SubaccountCode,
	})
	if err != nil {
		log.Printf("[payments] Gateway error for reference %s: %s\n", txn.Reference, err.Error())
		return nil, err
	}

	// Cache the checkout URL so the client can recover an interrupted redirect.
	rd := lib.GetRedisClient()
	if rd != nil {
		if err := rd.SetEx(context.Background(), checkoutKey(txn.Reference), out.AuthorizationURL, 10*time.Minute).Err(); err != nil {
			log.Printf("[redis] Error caching checkout url: %s\n", err.Error())
		}
	}

	return &CheckoutSession{
		Reference:        txn.Reference,
		AuthorizationURL: out.AuthorizationURL,
	}, nil
}

func checkoutKey(reference string) string {
	return fmt.Sprintf("checkout:%s", reference)
}

// CheckoutURL returns the cached authorization URL for a pending reference.
func CheckoutURL(reference string) (string, error) {
	rd := lib.GetRedisClient()
	if rd == nil {
		return "", types.ErrNotFound
	}
	url, err := rd.Get(context.Background(), checkoutKey(reference)).Result()
	if err != nil {
		return "", types.ErrNotFound
	}
	return url, nil
}

// ApplyConfirmation settles a confirmed charge: the transaction flips to
// success, the payer lands on the event's participant roster and any team
// roster entries flip to paid. The whole propagation runs in one store
// transaction and replays are no-ops, so retried webhooks are safe.
func ApplyConfirmation(reference string) error {
	gdb := db.GetDb()
	return gdb.Transaction(func(tx *gorm.DB) error {
		var txn models.Transaction
		if err := tx.Where(&models.Transaction{Reference: reference}).First(&txn).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return err
		}
		if txn.Status == types.TRANSACTION_SUCCESS {
			return nil
		}

		// A (user, event) pair gets at most one success. A second confirmed
		// charge for the pair is parked as failed for reconciliation.
		var dup int64
		if err := tx.
			Model(&models.Transaction{}).
			Where("event_id = ? AND user_id = ? AND status = ? AND reference <> ?",
				txn.EventID, txn.UserID, types.TRANSACTION_SUCCESS, reference).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			log.Printf("[payments] Duplicate charge for user %d on event %d, refusing to settle %s\n", txn.UserID, txn.EventID, reference)
			return tx.
				Model(&models.Transaction{}).
				Where("reference = ? AND status = ?", reference, types.TRANSACTION_PENDING).
				Update("status", types.TRANSACTION_FAILED).
				Error
		}

		qrData, err := TicketPayloadJSON(txn.UserID, txn.EventID, txn.Reference)
		if err != nil {
			return err
		}
		res := tx.
			Model(&models.Transaction{}).
			Where("reference = ? AND status <> ?", reference, types.TRANSACTION_SUCCESS).
			Updates(&models.Transaction{
				Status:     types.TRANSACTION_SUCCESS,
				QRCodeData: &qrData,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return nil
		}

		if err := upsertParticipant(tx, txn.EventID, txn.UserID, reference); err != nil {
			return err
		}
		if err := markTeamMemberPaid(tx, txn.EventID, txn.UserID); err != nil {
			return err
		}
		return nil
	})
}

// MarkFailed flips a pending transaction to failed. Confirmed transactions
// are never downgraded.
func MarkFailed(reference string) error {
	gdb := db.GetDb()
	return gdb.Transaction(func(tx *gorm.DB) error {
		var txn models.Transaction
		if err := tx.Where(&models.Transaction{Reference: reference}).First(&txn).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return err
		}
		return tx.
			Model(&models.Transaction{}).
			Where("reference = ? AND status = ?", reference, types.TRANSACTION_PENDING).
			Update("status", types.TRANSACTION_FAILED).
			Error
	})
}

func upsertParticipant(tx *gorm.DB, eventId, userId uint, reference string) error {
	var event models.Event
	if err := tx.Where(&models.Event{ID: eventId}).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.ErrNotFound
		}
		return err
	}
	participants := event.Participants
	found := false
	for i := range participants {
		if participants[i].UserID == userId {
			participants[i].Paid = true
			participants[i].Reference = reference
			found = true
			break
		}
	}
	if !found {
		participants = append(participants, types.Participant{
			UserID:    userId,
			Paid:      true,
			Reference: reference,
		})
	}
	return tx.
		Model(&models.Event{}).
		Where("id = ?", eventId).
		Update("participants", participants).
		Error
}

func markTeamMemberPaid(tx *gorm.DB, eventId, userId uint) error {
	var teams []models.Team
	if err := tx.Where(&models.Team{EventID: eventId}).Find(&teams).Error; err != nil {
		return err
	}
	for _, team := range teams {
		changed := false
		members := team.Members
		for i := range members {
			if members[i].UserID == userId && !members[i].Paid {
				members[i].Paid = true
				changed = true
			}
		}
		if !changed {
			continue
		}
		if err := tx.
			Model(&models.Team{}).
			Where("id = ?", team.ID).
			Update("members", members).
			Error; err != nil {
			return err
		}
	}
	return nil
}

// VerifyTicket checks a scanned ticket for the event's organizer and marks
// it used on first sight. A second scan stays valid but reports used. A
// reference with no confirmed payment returns the invalid result together
// with ErrNotFound so callers can signal not-found.
func VerifyTicket(in *types.VerifyTicketRequestBody, requesterId uint, requesterRole string) (*types.VerificationResult, error) {
	if in.Type != types.TicketPassType {
		return nil, types.ErrInvalidPassType
	}
	gdb := db.GetDb()
	var event models.Event
	if err := gdb.Where(&models.Event{ID: in.EventID}).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	if event.CreatedBy != requesterId && requesterRole != types.ROLE_ADMIN {
		return nil, types.ErrForbidden
	}

	var txn models.Transaction
	err := gdb.
		Preload("User").
		Where(&models.Transaction{Reference: in.Reference, EventID: in.EventID, Status: types.TRANSACTION_SUCCESS}).
		First(&txn).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.VerificationResult{
				Valid:   false,
				Message: "No confirmed payment found for this ticket",
			}, types.ErrNotFound
		}
		return nil, err
	}
	if in.UserID != nil && *in.UserID != txn.UserID {
		return &types.VerificationResult{
			Valid:   false,
			Message: "Ticket does not belong to the presented user",
		}, nil
	}

	data := &types.VerificationData{
		UserID:    strconv.FormatUint(uint64(txn.UserID), 10),
		EventID:   strconv.FormatUint(uint64(txn.EventID), 10),
		Reference: txn.Reference,
		User: &types.VerifiedAttendee{
			Name:     txn.User.Name,
			Email:    txn.User.Email,
			ImageURL: txn.User.ImageURL,
		},
		Event: &types.VerifiedEvent{
			Title:          event.Title,
			Date:           event.Date,
			StartTime:      event.StartTime,
			EndTime:        event.EndTime,
			Location:       event.Location,
			PricePerPlayer: event.PricePerPlayer,
		},
	}

	if txn.UsedAt != nil {
		data.Used = true
		data.ScannedAt = txn.UsedAt
		return &types.VerificationResult{
			Valid:   true,
			Message: "Ticket already used",
			Data:    data,
		}, nil
	}

	now := time.Now()
	res := gdb.
		Model(&models.Transaction{}).
		Where("id = ? AND used_at IS NULL", txn.ID).
		Update("used_at", now)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected < 1 {
		// Lost the race against a concurrent scan of the same ticket.
		var again models.Transaction
		if err := gdb.Where("id = ?", txn.ID).First(&again).Error; err != nil {
			return nil, err
		}
		data.Used = true
		data.ScannedAt = again.UsedAt
		return &types.VerificationResult{
			Valid:   true,
			Message: "Ticket already used",
			Data:    data,
		}, nil
	}

	data.Used = false
	data.ScannedAt = &now
	return &types.VerificationResult{
		Valid:   true,
		Message: "Ticket verified",
		Data:    data,
	}, nil
}
