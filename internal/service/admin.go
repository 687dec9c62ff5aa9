package service

import (
	"context"
	"errors"

	"github.com/clan-rush/recruitbot/internal/models"
	"github.com/clan-rush/recruitbot/internal/storage"
	"github.com/sirupsen/logrus"
)

// Take claims a waiting application for an admin. The claim row and the
// status transition are written in one transaction, so a failed guard
// never leaves an orphaned claim.
func (s *Service) Take(ctx context.Context, adminID, applicationID int64) (*models.AdminProcessingApplication, error) {
	var claim *models.AdminProcessingApplication
	err := s.store.InTransaction(ctx, func(tx storage.Store) error {
		app, err := tx.GetApplication(ctx, applicationID)
		if err != nil {
			return err
		}

		if _, err := tx.GetClaimByApplication(ctx, applicationID); err == nil {
			logrus.Warnf("admin %d tried to take application %d, which is already claimed", adminID, applicationID)
			return ErrAlreadyClaimed
		} else if !errors.Is(err, storage.ErrClaimNotFound) {
			return err
		}

		if _, err := tx.GetClaimByAdmin(ctx, adminID); err == nil {
			logrus.Warnf("admin %d tried to take application %d while holding another claim", adminID, applicationID)
			return ErrAlreadyClaimed
		} else if !errors.Is(err, storage.ErrClaimNotFound) {
			return err
		}

		if err := app.Take(adminID); err != nil {
			return err
		}
		if err := tx.UpdateApplication(ctx, app); err != nil {
			return err
		}

		claim = &models.AdminProcessingApplication{
			AdminID:       adminID,
			ApplicationID: applicationID,
		}
		return tx.CreateClaim(ctx, claim)
	})
	if err != nil {
		return nil, err
	}
	return claim, nil
}

// Accept resolves the admin's claimed application with an invite link.
func (s *Service) Accept(ctx context.Context, adminID, applicationID int64, inviteLink string) (*models.Application, error) {
	return s.resolve(ctx, adminID, applicationID, func(app *models.Application) error {
		return app.Accept(inviteLink)
	})
}

// Reject resolves the admin's claimed application with a rejection
// reason, starting the re-application cooldown.
func (s *Service) Reject(ctx context.Context, adminID, applicationID int64, reason string) (*models.Application, error) {
	return s.resolve(ctx, adminID, applicationID, func(app *models.Application) error {
		return app.Reject(reason)
	})
}

func (s *Service) resolve(
	ctx context.Context,
	adminID, applicationID int64,
	transition func(app *models.Application) error,
) (*models.Application, error) {
	var app *models.Application
	err := s.store.InTransaction(ctx, func(tx storage.Store) error {
		claim, err := tx.GetClaimByAdmin(ctx, adminID)
		if errors.Is(err, storage.ErrClaimNotFound) {
			return ErrNoClaim
		}
		if err != nil {
			return err
		}
		if claim.ApplicationID != applicationID {
			logrus.Warnf(
				"admin %d tried to resolve application %d, but holds a claim on %d",
				adminID, applicationID, claim.ApplicationID,
			)
			return ErrWrongAdmin
		}

		app, err = tx.GetApplication(ctx, applicationID)
		if err != nil {
			return err
		}
		if err := transition(app); err != nil {
			return err
		}
		if err := tx.UpdateApplication(ctx, app); err != nil {
			return err
		}
		return tx.DeleteClaim(ctx, claim.ID)
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}
