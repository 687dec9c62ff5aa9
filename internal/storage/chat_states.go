package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/clan-rush/recruitbot/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Storage) GetChatState(ctx context.Context, userID, chatID int64) (*models.ChatState, error) {
	var state models.ChatState
	if err := s.db.
		WithContext(ctx).
		Where("user_id = ? AND chat_id = ?", userID, chatID).
		First(&state).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("getting chat state of user %d in chat %d: %w", userID, chatID, ErrChatStateNotFound)
		}
		return nil, fmt.Errorf("getting chat state: %w", err)
	}
	return &state, nil
}

func (s *Storage) SetChatState(ctx context.Context, state *models.ChatState) error {
	if err := s.db.
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "chat_id"}},
			UpdateAll: true,
		}).
		Create(state).
		Error; err != nil {
		return fmt.Errorf("setting chat state: %w", err)
	}
	return nil
}

func (s *Storage) DeleteChatState(ctx context.Context, userID, chatID int64) error {
	if err := s.db.
		WithContext(ctx).
		Where("user_id = ? AND chat_id = ?", userID, chatID).
		Delete(&models.ChatState{}).
		Error; err != nil {
		return fmt.Errorf("deleting chat state: %w", err)
	}
	return nil
}
