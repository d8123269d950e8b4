package models

import (
	"matchday/src/types"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Transaction struct {
	ID uuid.UUID `gorm:"primarykey;type:uuid" json:"id"`

	EventID        uint                    `json:"event_id"`
	UserID         uint                    `json:"user_id"`
	Currency       string                  `gorm:"default:'NGN'" json:"currency,omitempty"`
	Amount         float64                 `json:"amount"`
	OrganizerShare float64                 `json:"organizer_share"`
	PlatformShare  float64                 `json:"platform_share"`
	Reference      string                  `gorm:"uniqueIndex" json:"reference"`
	Status         types.TransactionStatus `gorm:"default:'pending'" json:"status"`

	// One-time admission state. UsedAt set exactly once by ticket verification.
	UsedAt     *time.Time `json:"used_at,omitempty"`
	QRCodeData *string    `json:"qr_code_data,omitempty"`

	Event Event `gorm:"foreignKey:event_id" json:"-"`
	User  User  `gorm:"foreignKey:user_id" json:"-"`

	types.Timestamps
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
