package service

import (
	"time"

	"github.com/clan-rush/recruitbot/internal/storage"
)

const DefaultCooldown = 30 * 24 * time.Hour

// Service implements the application lifecycle use cases. Every mutating
// method runs inside a single storage transaction, so a late-stage guard
// failure rolls back the earlier writes of the same use case.
type Service struct {
	store    storage.Store
	cooldown time.Duration
}

func New(store storage.Store, cooldown time.Duration) *Service {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Service{store: store, cooldown: cooldown}
}

// Cooldown reports the re-application cooldown the service enforces.
func (s *Service) Cooldown() time.Duration {
	return s.cooldown
}
