package service

import (
	"context"

	"github.com/clan-rush/recruitbot/internal/models"
	"github.com/clan-rush/recruitbot/internal/storage"
)

// Complete moves the user's latest application to the review queue.
func (s *Service) Complete(ctx context.Context, userID int64) (*models.Application, error) {
	var app *models.Application
	err := s.store.InTransaction(ctx, func(tx storage.Store) error {
		var err error
		app, err = tx.GetLastApplication(ctx, userID)
		if err != nil {
			return err
		}
		if err := app.Complete(); err != nil {
			return err
		}
		return tx.UpdateApplication(ctx, app)
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}
