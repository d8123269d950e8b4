package models

import (
	"matchday/src/types"
)

type Team struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	EventID   uint   `json:"event_id"`
	CreatedBy uint   `json:"created_by,omitempty"`
	Name      string `json:"name,omitempty"`
	Side      string `json:"side,omitempty"`

	// Roster document. Capacity is floor(event.Slots / 2); enforced on invite.
	Members types.TeamMembers `gorm:"type:jsonb" json:"members,omitempty"`

	Event   Event `gorm:"foreignKey:event_id" json:"-"`
	Captain User  `gorm:"foreignKey:created_by" json:"-"`

	types.Timestamps
}
