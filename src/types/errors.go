package types

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrAlreadyPaid         = errors.New("user already has a confirmed payment for this event")
	ErrEventNotPayable     = errors.New("event is not open for payment")
	ErrOrganizerNotPayable = errors.New("organizer has not completed payout onboarding")
	ErrForbidden           = errors.New("not allowed to perform this action")
	ErrInvalidSignature    = errors.New("webhook signature mismatch")
	ErrInvalidPassType     = errors.New("unrecognized ticket type")
	ErrTeamFull            = errors.New("team roster is full")
	ErrTeamSideTaken       = errors.New("a team already exists for this side")
	ErrAlreadyOnTeam       = errors.New("user already belongs to a team for this event")
	ErrNegativePrice       = errors.New("price must not be negative")
)
