package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUserBanned          = errors.New("user is banned")
	ErrAlreadyPending      = errors.New("application is already pending review")
	ErrAlreadyAccepted     = errors.New("application is already accepted")
	ErrDecisionDateMissing = errors.New("rejected application has no decision date")

	ErrAlreadyClaimed = errors.New("active claim already exists")
	ErrNoClaim        = errors.New("admin has no active claim")
	ErrWrongAdmin     = errors.New("application is claimed by another admin")
)

// CooldownError is returned by Start while the 30-day re-application
// window after a rejection is still running.
type CooldownError struct {
	ResumeAt time.Time
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active until %s", e.ResumeAt.Format(time.RFC3339))
}
