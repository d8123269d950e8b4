package models

import (
	"matchday/src/types"
	"time"
)

type User struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	Name          string     `json:"name,omitempty"`
	Email         string     `gorm:"uniqueIndex" json:"email,omitempty"`
	Role          string     `gorm:"default:'player'" json:"role,omitempty"`
	ImageURL      *string    `json:"image,omitempty"`
	EmailVerified bool       `json:"email_verified,omitempty"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`

	// Payout onboarding. SubaccountCode is set once the gateway accepts the
	// organizer's bank details and is required before their events are payable.
	SubaccountCode *string `json:"-"`
	BankCode       *string `json:"-"`
	AccountNumber  *string `json:"-"`
	AccountName    *string `json:"account_name,omitempty"`

	types.Timestamps
}
