package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/clan-rush/recruitbot/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Storage) GetApplication(ctx context.Context, id int64) (*models.Application, error) {
	var app models.Application
	if err := s.db.
		WithContext(ctx).
		Preload("Answers").
		Where("id = ?", id).
		First(&app).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("getting application %d: %w", id, ErrApplicationNotFound)
		}
		return nil, fmt.Errorf("getting application: %w", err)
	}
	return &app, nil
}

// GetLastApplication returns the user's most recent application, answers
// preloaded.
func (s *Storage) GetLastApplication(ctx context.Context, userID int64) (*models.Application, error) {
	var app models.Application
	if err := s.db.
		WithContext(ctx).
		Preload("Answers").
		Where("user_id = ?", userID).
		Order("id DESC").
		First(&app).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("getting last application of user %d: %w", userID, ErrApplicationNotFound)
		}
		return nil, fmt.Errorf("getting last application: %w", err)
	}
	return &app, nil
}

func (s *Storage) ListApplications(
	ctx context.Context,
	status models.ApplicationStatus,
	limit int,
) ([]*models.Application, error) {
	query := s.db.WithContext(ctx).Preload("Answers").Order("id")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var result []*models.Application
	if err := query.Find(&result).Error; err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	return result, nil
}

func (s *Storage) CreateApplication(ctx context.Context, app *models.Application) error {
	if err := s.db.
		WithContext(ctx).
		Omit(clause.Associations).
		Create(app).
		Error; err != nil {
		return fmt.Errorf("creating application: %w", err)
	}
	return nil
}

// UpdateApplication persists the lifecycle columns only; answers are
// written through the answer methods.
func (s *Storage) UpdateApplication(ctx context.Context, app *models.Application) error {
	if err := s.db.
		WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", app.ID).
		Updates(map[string]any{
			"status":           app.Status,
			"decision_date":    app.DecisionDate,
			"rejection_reason": app.RejectionReason,
			"invite_link":      app.InviteLink,
			"admin_id":         app.AdminID,
		}).
		Error; err != nil {
		return fmt.Errorf("updating application: %w", err)
	}
	return nil
}

func (s *Storage) CreateAnswer(ctx context.Context, answer *models.ApplicationAnswer) error {
	if err := s.db.WithContext(ctx).Create(answer).Error; err != nil {
		return fmt.Errorf("creating answer: %w", err)
	}
	return nil
}

func (s *Storage) UpdateAnswer(
	ctx context.Context,
	applicationID int64,
	q models.Question,
	text string,
) error {
	if err := s.db.
		WithContext(ctx).
		Model(&models.ApplicationAnswer{}).
		Where("application_id = ? AND question_number = ?", applicationID, q).
		Update("answer_text", text).
		Error; err != nil {
		return fmt.Errorf("updating answer: %w", err)
	}
	return nil
}

func (s *Storage) DeleteAnswers(ctx context.Context, applicationID int64) error {
	if err := s.db.
		WithContext(ctx).
		Where("application_id = ?", applicationID).
		Delete(&models.ApplicationAnswer{}).
		Error; err != nil {
		return fmt.Errorf("deleting answers: %w", err)
	}
	return nil
}
