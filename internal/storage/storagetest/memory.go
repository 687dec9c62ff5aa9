// Package storagetest provides an in-memory storage.Store for tests.
package storagetest

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/clan-rush/recruitbot/internal/models"
	"github.com/clan-rush/recruitbot/internal/storage"
)

// Memory mimics the relational store, including the unique-claim
// constraints. Transactions are not rolled back; tests relying on it
// should assert on returned errors, not on partial writes.
type Memory struct {
	mu sync.Mutex

	users   map[int64]models.User
	apps    map[int64]models.Application
	answers map[int64][]models.ApplicationAnswer
	claims  map[int64]models.AdminProcessingApplication
	states  map[chatStateKey]models.ChatState

	nextAppID    int64
	nextAnswerID int64
	nextClaimID  int64
}

var _ storage.Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		users:   make(map[int64]models.User),
		apps:    make(map[int64]models.Application),
		answers: make(map[int64][]models.ApplicationAnswer),
		claims:  make(map[int64]models.AdminProcessingApplication),
		states:  make(map[chatStateKey]models.ChatState),
	}
}

func (m *Memory) InTransaction(_ context.Context, fn func(tx storage.Store) error) error {
	return fn(m)
}

func (m *Memory) GetUser(_ context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("getting user %d: %w", id, storage.ErrUserNotFound)
	}
	return &user, nil
}

func (m *Memory) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; ok {
		return errors.New("duplicate user id")
	}
	m.users[user.ID] = *user
	return nil
}

func (m *Memory) UpdateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; !ok {
		return fmt.Errorf("updating user %d: %w", user.ID, storage.ErrUserNotFound)
	}
	m.users[user.ID] = *user
	return nil
}

func (m *Memory) GetApplication(_ context.Context, id int64) (*models.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	app, ok := m.apps[id]
	if !ok {
		return nil, fmt.Errorf("getting application %d: %w", id, storage.ErrApplicationNotFound)
	}
	return m.withAnswers(app), nil
}

func (m *Memory) GetLastApplication(_ context.Context, userID int64) (*models.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var last *models.Application
	for id := range m.apps {
		app := m.apps[id]
		if app.UserID != userID {
			continue
		}
		if last == nil || app.ID > last.ID {
			last = &app
		}
	}
	if last == nil {
		return nil, fmt.Errorf("getting last application of user %d: %w", userID, storage.ErrApplicationNotFound)
	}
	return m.withAnswers(*last), nil
}

func (m *Memory) ListApplications(
	_ context.Context,
	status models.ApplicationStatus,
	limit int,
) ([]*models.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*models.Application
	for id := range m.apps {
		app := m.apps[id]
		if status != "" && app.Status != status {
			continue
		}
		result = append(result, m.withAnswers(app))
	}
	slices.SortFunc(result, func(a, b *models.Application) int {
		return int(a.ID - b.ID)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *Memory) CreateApplication(_ context.Context, app *models.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextAppID++
	app.ID = m.nextAppID
	stored := *app
	stored.Answers = nil
	m.apps[app.ID] = stored
	return nil
}

func (m *Memory) UpdateApplication(_ context.Context, app *models.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.apps[app.ID]
	if !ok {
		return fmt.Errorf("updating application %d: %w", app.ID, storage.ErrApplicationNotFound)
	}
	stored.Status = app.Status
	stored.DecisionDate = app.DecisionDate
	stored.RejectionReason = app.RejectionReason
	stored.InviteLink = app.InviteLink
	stored.AdminID = app.AdminID
	m.apps[app.ID] = stored
	return nil
}

func (m *Memory) CreateAnswer(_ context.Context, answer *models.ApplicationAnswer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.answers[answer.ApplicationID] {
		if existing.QuestionNumber == answer.QuestionNumber {
			return errors.New("duplicate answer for question")
		}
	}
	m.nextAnswerID++
	answer.ID = m.nextAnswerID
	m.answers[answer.ApplicationID] = append(m.answers[answer.ApplicationID], *answer)
	return nil
}

func (m *Memory) UpdateAnswer(_ context.Context, applicationID int64, q models.Question, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	answers := m.answers[applicationID]
	for i := range answers {
		if answers[i].QuestionNumber == q {
			answers[i].AnswerText = text
			return nil
		}
	}
	return fmt.Errorf("no answer to question %d of application %d", q, applicationID)
}

func (m *Memory) DeleteAnswers(_ context.Context, applicationID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.answers, applicationID)
	return nil
}

func (m *Memory) GetClaimByAdmin(_ context.Context, adminID int64) (*models.AdminProcessingApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id := range m.claims {
		claim := m.claims[id]
		if claim.AdminID == adminID {
			return &claim, nil
		}
	}
	return nil, fmt.Errorf("getting claim of admin %d: %w", adminID, storage.ErrClaimNotFound)
}

func (m *Memory) GetClaimByApplication(_ context.Context, applicationID int64) (*models.AdminProcessingApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id := range m.claims {
		claim := m.claims[id]
		if claim.ApplicationID == applicationID {
			return &claim, nil
		}
	}
	return nil, fmt.Errorf("getting claim of application %d: %w", applicationID, storage.ErrClaimNotFound)
}

func (m *Memory) CreateClaim(_ context.Context, claim *models.AdminProcessingApplication) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.claims {
		if existing.AdminID == claim.AdminID || existing.ApplicationID == claim.ApplicationID {
			return errors.New("duplicate claim")
		}
	}
	m.nextClaimID++
	claim.ID = m.nextClaimID
	m.claims[claim.ID] = *claim
	return nil
}

func (m *Memory) DeleteClaim(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.claims, id)
	return nil
}

type chatStateKey struct {
	UserID int64
	ChatID int64
}

func (m *Memory) GetChatState(_ context.Context, userID, chatID int64) (*models.ChatState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.states[chatStateKey{UserID: userID, ChatID: chatID}]
	if !ok {
		return nil, fmt.Errorf("getting chat state of user %d in chat %d: %w", userID, chatID, storage.ErrChatStateNotFound)
	}
	return &state, nil
}

func (m *Memory) SetChatState(_ context.Context, state *models.ChatState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[chatStateKey{UserID: state.UserID, ChatID: state.ChatID}] = *state
	return nil
}

func (m *Memory) DeleteChatState(_ context.Context, userID, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, chatStateKey{UserID: userID, ChatID: chatID})
	return nil
}

// ClaimCount reports the number of active claims.
func (m *Memory) ClaimCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.claims)
}

func (m *Memory) withAnswers(app models.Application) *models.Application {
	answers := slices.Clone(m.answers[app.ID])
	slices.SortFunc(answers, func(a, b models.ApplicationAnswer) int {
		return int(a.QuestionNumber - b.QuestionNumber)
	})
	app.Answers = answers
	return &app
}
