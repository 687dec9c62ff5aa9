package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/clan-rush/recruitbot/internal/models"
	"github.com/clan-rush/recruitbot/internal/storage"
)

// Overview renders the user's current answers for the confirmation step.
func (s *Service) Overview(ctx context.Context, userID int64) (string, error) {
	var app *models.Application
	if err := s.store.InTransaction(ctx, func(tx storage.Store) error {
		var err error
		app, err = tx.GetLastApplication(ctx, userID)
		return err
	}); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Your application:\n\n")
	for _, ans := range sortedAnswers(app) {
		fmt.Fprintf(&b, "%d) %s: %s\n", ans.QuestionNumber, ans.QuestionNumber.Label(), ans.AnswerText)
	}
	b.WriteString("\nIs everything correct?")
	return b.String(), nil
}

// FormatForAdmins renders the application card posted to the admin chat,
// escaped for MarkdownV2.
func (s *Service) FormatForAdmins(ctx context.Context, applicationID int64) (string, error) {
	var app *models.Application
	if err := s.store.InTransaction(ctx, func(tx storage.Store) error {
		var err error
		app, err = tx.GetApplication(ctx, applicationID)
		return err
	}); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Application \\#%d from [ID%d](tg://user?id=%d)\n\n", app.ID, app.UserID, app.UserID)
	fmt.Fprintf(&b, "Status: %s\n", EscapeMarkdownV2(string(app.Status)))
	for _, ans := range sortedAnswers(app) {
		fmt.Fprintf(
			&b,
			"%d\\) %s: %s\n",
			ans.QuestionNumber,
			EscapeMarkdownV2(ans.QuestionNumber.Label()),
			EscapeMarkdownV2(ans.AnswerText),
		)
	}
	return b.String(), nil
}

func sortedAnswers(app *models.Application) []models.ApplicationAnswer {
	answers := slices.Clone(app.Answers)
	slices.SortFunc(answers, func(a, b models.ApplicationAnswer) int {
		return int(a.QuestionNumber - b.QuestionNumber)
	})
	return answers
}

var markdownV2Escaper = strings.NewReplacer(
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(", ")", "\\)",
	"~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#", "+", "\\+", "-", "\\-",
	"=", "\\=", "|", "\\|", "{", "\\{", "}", "\\}", ".", "\\.", "!", "\\!",
)

func EscapeMarkdownV2(text string) string {
	return markdownV2Escaper.Replace(text)
}
