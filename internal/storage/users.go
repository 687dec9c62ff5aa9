package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/clan-rush/recruitbot/internal/models"
	"gorm.io/gorm"
)

func (s *Storage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("getting user %d: %w", id, ErrUserNotFound)
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &user, nil
}

func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func (s *Storage) UpdateUser(ctx context.Context, user *models.User) error {
	if err := s.db.
		WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":   user.Username,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"is_banned":  user.IsBanned,
		}).
		Error; err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	return nil
}
