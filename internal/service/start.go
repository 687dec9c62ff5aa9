package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clan-rush/recruitbot/internal/models"
	"github.com/clan-rush/recruitbot/internal/storage"
	"github.com/sirupsen/logrus"
)

// Start creates or restarts the questionnaire for a user. The user must
// exist and not be banned. An unfinished application is restarted in
// place; a rejected one allows a new application only once the cooldown
// window since its decision date has fully elapsed (inclusive boundary).
func (s *Service) Start(ctx context.Context, userID int64) (*models.Application, error) {
	var app *models.Application
	err := s.store.InTransaction(ctx, func(tx storage.Store) error {
		user, err := tx.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		if user.IsBanned {
			return ErrUserBanned
		}

		last, err := tx.GetLastApplication(ctx, userID)
		if errors.Is(err, storage.ErrApplicationNotFound) {
			app = models.NewApplication(userID)
			return tx.CreateApplication(ctx, app)
		}
		if err != nil {
			return err
		}

		switch last.Status {
		case models.ApplicationStatusInProgress:
			if err := last.ClearAnswers(); err != nil {
				return err
			}
			if err := tx.DeleteAnswers(ctx, last.ID); err != nil {
				return err
			}
			app = last
			return nil

		case models.ApplicationStatusWaiting, models.ApplicationStatusProcessing:
			return ErrAlreadyPending

		case models.ApplicationStatusAccepted:
			return ErrAlreadyAccepted

		case models.ApplicationStatusRejected:
			if last.DecisionDate == nil {
				logrus.Errorf("rejected application %d of user %d has no decision date", last.ID, userID)
				return ErrDecisionDateMissing
			}
			if time.Now().UTC().Sub(*last.DecisionDate) >= s.cooldown {
				app = models.NewApplication(userID)
				return tx.CreateApplication(ctx, app)
			}
			return &CooldownError{ResumeAt: last.DecisionDate.Add(s.cooldown)}

		default:
			return fmt.Errorf("application %d: unknown status %q: %w", last.ID, last.Status, models.ErrWrongStatus)
		}
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}
