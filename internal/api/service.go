package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/clan-rush/recruitbot/internal/models"
	"github.com/clan-rush/recruitbot/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Service exposes read-only application data for admin tooling.
type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

type answerView struct {
	Question int    `json:"question"`
	Label    string `json:"label"`
	Text     string `json:"text"`
}

type applicationView struct {
	ID              int64        `json:"id"`
	UserID          int64        `json:"user_id"`
	Status          string       `json:"status"`
	DecisionDate    *time.Time   `json:"decision_date,omitempty"`
	RejectionReason string       `json:"rejection_reason,omitempty"`
	InviteLink      string       `json:"invite_link,omitempty"`
	AdminID         *int64       `json:"admin_id,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	Answers         []answerView `json:"answers"`
}

func viewOf(app *models.Application) applicationView {
	view := applicationView{
		ID:              app.ID,
		UserID:          app.UserID,
		Status:          string(app.Status),
		DecisionDate:    app.DecisionDate,
		RejectionReason: app.RejectionReason,
		InviteLink:      app.InviteLink,
		AdminID:         app.AdminID,
		CreatedAt:       app.CreatedAt,
		Answers:         make([]answerView, 0, len(app.Answers)),
	}
	for _, q := range models.Questions() {
		if ans, ok := app.Answer(q); ok {
			view.Answers = append(view.Answers, answerView{
				Question: int(q),
				Label:    q.Label(),
				Text:     ans.AnswerText,
			})
		}
	}
	return view
}

func (s *Service) HandleHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	}
}

func (s *Service) HandleListApplications() echo.HandlerFunc {
	return func(c echo.Context) error {
		status := models.ApplicationStatus(c.QueryParam("status"))

		limit := 100
		if raw := c.QueryParam("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "limit must be a positive integer"})
			}
			limit = parsed
		}

		apps, err := s.store.ListApplications(c.Request().Context(), status, limit)
		if err != nil {
			logrus.Errorf("listing applications: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list applications"})
		}

		views := make([]applicationView, 0, len(apps))
		for _, app := range apps {
			views = append(views, viewOf(app))
		}
		return c.JSON(http.StatusOK, views)
	}
}

func (s *Service) HandleGetApplication() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "id must be an integer"})
		}

		app, err := s.store.GetApplication(c.Request().Context(), id)
		if errors.Is(err, storage.ErrApplicationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "application not found"})
		}
		if err != nil {
			logrus.Errorf("getting application %d: %v", id, err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to get application"})
		}
		return c.JSON(http.StatusOK, viewOf(app))
	}
}
