package utils

import (
	"errors"
	"fmt"
	"log"

	"matchday/src/config"
	"matchday/src/db"
	"matchday/src/lib/mailer"
	"matchday/src/models"
	"matchday/src/types"

	"gorm.io/gorm"
)

// TeamCapacity is half the event's slots, one side of the pitch.
func TeamCapacity(event *models.Event) int {
	return int(event.Slots / 2)
}

func CreateTeam(eventId uint, creatorId uint, params *types.CreateTeamRequestBody) (uint, error) {
	gdb := db.GetDb()
	team := models.Team{
		EventID:   eventId,
		CreatedBy: creatorId,
		Name:      params.Name,
		Side:      params.Side,
		Members: types.TeamMembers{
			{UserID: creatorId, Accepted: true},
		},
	}
	var event models.Event
	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&models.Event{ID: eventId}).First(&event).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return err
		}
		if event.Status != types.EVENT_OPEN {
			return types.ErrEventNotPayable
		}

		var existing []models.Team
		if err := tx.Where(&models.Team{EventID: eventId}).Find(&existing).Error; err != nil {
			return err
		}
		for _, t := range existing {
			if t.Side == params.Side {
				return types.ErrTeamSideTaken
			}
			for _, m := range t.Members {
				if m.UserID == creatorId {
					return types.ErrAlreadyOnTeam
				}
			}
		}

		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, inviteeId := range params.Invites {
		if err := InviteToTeam(team.ID, creatorId, inviteeId); err != nil {
			log.Printf("[teams] Could not invite user %d to team %d: %s\n", inviteeId, team.ID, err.Error())
		}
	}
	return team.ID, nil
}

// InviteToTeam adds an unaccepted roster entry and mails the invitee.
// Only the team's captain can invite.
func InviteToTeam(teamId uint, captainId uint, inviteeId uint) error {
	gdb := db.GetDb()
	var team models.Team
	var invitee models.User
	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Event").Where(&models.Team{ID: teamId}).First(&team).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return err
		}
		if team.CreatedBy != captainId {
			return types.ErrForbidden
		}
		if err := tx.Where(&models.User{ID: inviteeId}).First(&invitee).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return err
		}
		if len(team.Members) >= TeamCapacity(&team.Event) {
			return types.ErrTeamFull
		}
		for _, m := range team.Members {
			if m.UserID == inviteeId {
				return types.ErrAlreadyOnTeam
			}
		}
		var others []models.Team
		if err := tx.Where(&models.Team{EventID: team.EventID}).Find(&others).Error; err != nil {
			return err
		}
		for _, t := range others {
			for _, m := range t.Members {
				if m.UserID == inviteeId {
					return types.ErrAlreadyOnTeam
				}
			}
		}

		members := append(team.Members, types.TeamMember{UserID: inviteeId})
		return tx.
			Model(&models.Team{}).
			Where("id = ?", teamId).
			Update("members", members).
			Error
	})
	if err != nil {
		return err
	}

	eventURL := fmt.Sprintf("%s/events/%d", config.AppHost(), team.EventID)
	go mailer.SendTeamInvite(invitee.Email, team.Name, team.Event.Title, eventURL)
	return nil
}

// RespondToInvite accepts or declines a pending roster entry. Declining
// removes the entry entirely. A member who already paid cannot be dropped,
// their entry mirrors a confirmed transaction.
func RespondToInvite(teamId uint, userId uint, accept bool) error {
	gdb := db.GetDb()
	return gdb.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.Where(&models.Team{ID: teamId}).First(&team).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return err
		}
		found := false
		members := types.TeamMembers{}
		for _, m := range team.Members {
			if m.UserID == userId {
				found = true
				if !accept {
					if m.Paid {
						return types.ErrAlreadyPaid
					}
					continue
				}
				m.Accepted = true
			}
			members = append(members, m)
		}
		if !found {
			return types.ErrNotFound
		}
		return tx.
			Model(&models.Team{}).
			Where("id = ?", teamId).
			Update("members", members).
			Error
	})
}
