package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/clan-rush/recruitbot/internal/models"
	"gorm.io/gorm"
)

func (s *Storage) GetClaimByAdmin(ctx context.Context, adminID int64) (*models.AdminProcessingApplication, error) {
	var claim models.AdminProcessingApplication
	if err := s.db.WithContext(ctx).Where("admin_id = ?", adminID).First(&claim).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("getting claim of admin %d: %w", adminID, ErrClaimNotFound)
		}
		return nil, fmt.Errorf("getting claim by admin: %w", err)
	}
	return &claim, nil
}

func (s *Storage) GetClaimByApplication(ctx context.Context, applicationID int64) (*models.AdminProcessingApplication, error) {
	var claim models.AdminProcessingApplication
	if err := s.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&claim).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("getting claim of application %d: %w", applicationID, ErrClaimNotFound)
		}
		return nil, fmt.Errorf("getting claim by application: %w", err)
	}
	return &claim, nil
}

func (s *Storage) CreateClaim(ctx context.Context, claim *models.AdminProcessingApplication) error {
	if err := s.db.WithContext(ctx).Create(claim).Error; err != nil {
		return fmt.Errorf("creating claim: %w", err)
	}
	return nil
}

func (s *Storage) DeleteClaim(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Delete(&models.AdminProcessingApplication{}, id).Error; err != nil {
		return fmt.Errorf("deleting claim: %w", err)
	}
	return nil
}
