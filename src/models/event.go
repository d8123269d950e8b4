package models

import (
	"matchday/src/types"
	"time"
)

type Event struct {
	ID             uint              `json:"id"`
	Title          string            `json:"title,omitempty"`
	Slug           string            `gorm:"uniqueIndex" json:"slug,omitempty"`
	About          *string           `json:"about,omitempty"`
	Location       string            `json:"location,omitempty"`
	Date           time.Time         `json:"date,omitempty"`
	StartTime      string            `json:"start_time,omitempty"`
	EndTime        string            `json:"end_time,omitempty"`
	PricePerPlayer float64           `json:"price_per_player"`
	Slots          uint              `json:"slots,omitempty"`
	TeamOnly       bool              `json:"team_only,omitempty"`
	Status         types.EventStatus `gorm:"default:'open'" json:"status,omitempty"`
	ImageURL       *string           `json:"image,omitempty"`
	CreatedBy      uint              `json:"created_by,omitempty"`

	// Participant roster kept as a document on the event row. Uniqueness per
	// user is maintained by the upsert path, not by a database constraint.
	Participants types.Participants `gorm:"type:jsonb" json:"participants,omitempty"`

	Creator User `gorm:"foreignKey:created_by" json:"-"`

	types.Timestamps
}
