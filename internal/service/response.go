package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/clan-rush/recruitbot/internal/models"
	"github.com/clan-rush/recruitbot/internal/storage"
)

type AnswerStatus string

const (
	AnswerStatusNew     AnswerStatus = "NEW"
	AnswerStatusUpdated AnswerStatus = "UPDATE"
)

// SubmitAnswer stores the answer to one question on the user's latest
// application, inserting on first contact with the question and updating
// on repeats. The returned status tells the presentation layer whether
// to advance to the next question or to return to the overview. Answers
// failing the question's format rules are rejected with
// models.ErrInvalidAnswer before anything is stored.
func (s *Service) SubmitAnswer(
	ctx context.Context,
	userID int64,
	q models.Question,
	text string,
) (AnswerStatus, error) {
	if !q.Valid() {
		return "", fmt.Errorf("question %d: %w", q, models.ErrInvalidQuestion)
	}
	if err := q.Validate(text); err != nil {
		return "", fmt.Errorf("validating answer to question %d: %w", q, err)
	}

	var status AnswerStatus
	err := s.store.InTransaction(ctx, func(tx storage.Store) error {
		app, err := tx.GetLastApplication(ctx, userID)
		if err != nil {
			return err
		}

		switch err := app.AddAnswer(q, text); {
		case err == nil:
			status = AnswerStatusNew
			return tx.CreateAnswer(ctx, &models.ApplicationAnswer{
				ApplicationID:  app.ID,
				QuestionNumber: q,
				AnswerText:     text,
			})
		case errors.Is(err, models.ErrAnswerExists):
			if err := app.UpdateAnswer(q, text); err != nil {
				return err
			}
			status = AnswerStatusUpdated
			return tx.UpdateAnswer(ctx, app.ID, q, text)
		default:
			return err
		}
	})
	if err != nil {
		return "", err
	}
	return status, nil
}
