package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/clan-rush/recruitbot/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrClaimNotFound       = errors.New("claim not found")
	ErrChatStateNotFound   = errors.New("chat state not found")
)

// Store is the persistence contract consumed by the service layer.
// InTransaction runs fn against a transaction-scoped Store; every
// mutating use case runs inside exactly one such scope.
type Store interface {
	InTransaction(ctx context.Context, fn func(tx Store) error) error

	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error

	GetApplication(ctx context.Context, id int64) (*models.Application, error)
	GetLastApplication(ctx context.Context, userID int64) (*models.Application, error)
	ListApplications(ctx context.Context, status models.ApplicationStatus, limit int) ([]*models.Application, error)
	CreateApplication(ctx context.Context, app *models.Application) error
	UpdateApplication(ctx context.Context, app *models.Application) error

	CreateAnswer(ctx context.Context, answer *models.ApplicationAnswer) error
	UpdateAnswer(ctx context.Context, applicationID int64, q models.Question, text string) error
	DeleteAnswers(ctx context.Context, applicationID int64) error

	GetClaimByAdmin(ctx context.Context, adminID int64) (*models.AdminProcessingApplication, error)
	GetClaimByApplication(ctx context.Context, applicationID int64) (*models.AdminProcessingApplication, error)
	CreateClaim(ctx context.Context, claim *models.AdminProcessingApplication) error
	DeleteClaim(ctx context.Context, id int64) error

	GetChatState(ctx context.Context, userID, chatID int64) (*models.ChatState, error)
	SetChatState(ctx context.Context, state *models.ChatState) error
	DeleteChatState(ctx context.Context, userID, chatID int64) error
}

type Storage struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

var _ Store = (*Storage)(nil)

func (s *Storage) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Application{},
		&models.ApplicationAnswer{},
		&models.AdminProcessingApplication{},
		&models.ChatState{},
	); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}
	return nil
}

func (s *Storage) InTransaction(ctx context.Context, fn func(tx Store) error) error {
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Storage{db: tx})
	}); err != nil {
		return fmt.Errorf("in tx: %w", err)
	}
	return nil
}
