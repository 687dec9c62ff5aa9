package service

import (
	"context"
	"errors"

	"github.com/clan-rush/recruitbot/internal/models"
	"github.com/clan-rush/recruitbot/internal/storage"
)

// EnsureUser returns the user, creating the record on first interaction.
func (s *Service) EnsureUser(ctx context.Context, id int64, username, firstName, lastName string) (*models.User, error) {
	var user *models.User
	err := s.store.InTransaction(ctx, func(tx storage.Store) error {
		var err error
		user, err = tx.GetUser(ctx, id)
		if err == nil {
			return nil
		}
		if !errors.Is(err, storage.ErrUserNotFound) {
			return err
		}
		user = &models.User{
			ID:        id,
			Username:  username,
			FirstName: firstName,
			LastName:  lastName,
		}
		return tx.CreateUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Ban(ctx context.Context, userID int64) (*models.User, error) {
	return s.updateUser(ctx, userID, (*models.User).Ban)
}

func (s *Service) Unban(ctx context.Context, userID int64) (*models.User, error) {
	return s.updateUser(ctx, userID, (*models.User).Unban)
}

func (s *Service) updateUser(
	ctx context.Context,
	userID int64,
	mutate func(u *models.User) error,
) (*models.User, error) {
	var user *models.User
	err := s.store.InTransaction(ctx, func(tx storage.Store) error {
		var err error
		user, err = tx.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		if err := mutate(user); err != nil {
			return err
		}
		return tx.UpdateUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
