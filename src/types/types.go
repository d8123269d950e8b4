package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// Participant is one entry in an Event's participant document. An entry is
// upserted whenever a payment for the event is confirmed, keyed by UserID.
type Participant struct {
	UserID    uint   `json:"userId"`
	Paid      bool   `json:"paid"`
	Reference string `json:"reference,omitempty"`
}

type Participants []Participant

func (p Participants) Value() (driver.Value, error) {
	valueString, err := json.Marshal(p)
	return string(valueString), err
}
func (p *Participants) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return errors.New("unsupported column type for participants")
}

// TeamMember.Paid mirrors the member's Transaction status. The Transaction
// row stays authoritative; this flag only exists for roster views.
type TeamMember struct {
	UserID   uint `json:"userId"`
	Accepted bool `json:"accepted"`
	Paid     bool `json:"paid"`
}

type TeamMembers []TeamMember

func (m TeamMembers) Value() (driver.Value, error) {
	valueString, err := json.Marshal(m)
	return string(valueString), err
}
func (m *TeamMembers) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return errors.New("unsupported column type for team members")
}

type EventStatus string

const (
	EVENT_OPEN      EventStatus = "open"
	EVENT_COMPLETED EventStatus = "completed"
	EVENT_CANCELED  EventStatus = "canceled"
)

type TransactionStatus string

const (
	TRANSACTION_PENDING TransactionStatus = "pending"
	TRANSACTION_SUCCESS TransactionStatus = "success"
	TRANSACTION_FAILED  TransactionStatus = "failed"
)

const (
	ROLE_PLAYER    = "player"
	ROLE_ORGANIZER = "organizer"
	ROLE_ADMIN     = "admin"
)

const (
	TEAM_SIDE_A = "A"
	TEAM_SIDE_B = "B"
)

// TicketPassType discriminates ticket tokens from any other QR payload a
// scanner might present. Verification rejects anything else.
const TicketPassType = "event_pass"

// TicketPayload is the document serialized into Transaction.QRCodeData once a
// payment is confirmed. Field order matters to the scanner app.
type TicketPayload struct {
	UserID    string `json:"userId"`
	EventID   string `json:"eventId"`
	Reference string `json:"reference"`
	Type      string `json:"type"`
}

type CreateEventRequestBody struct {
	Title          string  `json:"title" binding:"required"`
	About          string  `json:"about,omitempty"`
	Location       string  `json:"location" binding:"required"`
	Date           string  `json:"date" binding:"required,bookabledate"`
	StartTime      string  `json:"start_time" binding:"required"`
	EndTime        string  `json:"end_time" binding:"required"`
	PricePerPlayer float64 `json:"price_per_player,omitempty" binding:"omitempty,min=0"`
	Slots          uint    `json:"slots" binding:"required,min=2"`
	TeamOnly       bool    `json:"team_only,omitempty"`
}

type UpdateEventRequestBody struct {
	Title          string  `json:"title,omitempty"`
	About          string  `json:"about,omitempty"`
	Location       string  `json:"location,omitempty"`
	Date           string  `json:"date,omitempty" binding:"omitempty,bookabledate"`
	StartTime      string  `json:"start_time,omitempty"`
	EndTime        string  `json:"end_time,omitempty"`
	PricePerPlayer float64 `json:"price_per_player,omitempty" binding:"omitempty,min=0"`
	Slots          uint    `json:"slots,omitempty"`
}

type EventQueryFilters struct {
	Location string `form:"location,omitempty"`
	From     string `form:"from,omitempty"`
	To       string `form:"to,omitempty"`
	Mine     bool   `form:"mine,omitempty"`
}

type CreateTeamRequestBody struct {
	Name    string `json:"name" binding:"required"`
	Side    string `json:"side" binding:"required,oneof=A B"`
	Invites []uint `json:"invites,omitempty"`
}

type TeamInviteRequestBody struct {
	UserID uint `json:"user_id" binding:"required"`
}

type RegisterRequestBody struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role,omitempty" binding:"omitempty,oneof=player organizer"`
}

type RequestCodeRequestBody struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyCodeRequestBody struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

type CheckoutRequestBody struct {
	EventID uint `json:"event_id" binding:"required"`
}

type CreateSubaccountRequestBody struct {
	BankCode      string `json:"bank_code" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
}

type VerifyTicketRequestBody struct {
	EventID   uint   `json:"eventId" binding:"required"`
	Reference string `json:"reference" binding:"required"`
	UserID    *uint  `json:"userId,omitempty"`
	Type      string `json:"type" binding:"required"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type VerifiedAttendee struct {
	Name     string  `json:"name,omitempty"`
	Email    string  `json:"email,omitempty"`
	ImageURL *string `json:"image,omitempty"`
}

type VerifiedEvent struct {
	Title          string    `json:"title,omitempty"`
	Date           time.Time `json:"date,omitempty"`
	StartTime      string    `json:"start_time,omitempty"`
	EndTime        string    `json:"end_time,omitempty"`
	Location       string    `json:"location,omitempty"`
	PricePerPlayer float64   `json:"price_per_player,omitempty"`
}

type VerificationData struct {
	UserID    string            `json:"userId"`
	EventID   string            `json:"eventId"`
	Reference string            `json:"reference"`
	ScannedAt *time.Time        `json:"scannedAt,omitempty"`
	Used      bool              `json:"used"`
	User      *VerifiedAttendee `json:"user,omitempty"`
	Event     *VerifiedEvent    `json:"event,omitempty"`
}

type VerificationResult struct {
	Valid   bool              `json:"valid"`
	Message string            `json:"message"`
	Data    *VerificationData `json:"data,omitempty"`
}

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
