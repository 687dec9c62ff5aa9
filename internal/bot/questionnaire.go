package bot

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/clan-rush/recruitbot/internal/models"
	"github.com/clan-rush/recruitbot/internal/service"
	"github.com/clan-rush/recruitbot/internal/storage"
	"gopkg.in/telebot.v4"
)

const greeting = "Welcome! To join the clan you need to fill out an application. " +
	"Be ready to answer 5 questions."

func (h *Handler) handleStart(uc *UpdateContext) error {
	if uc.Chat().Type != telebot.ChatPrivate {
		return uc.TC().Send("This command works only in a private chat with the bot.")
	}

	sender := uc.Sender()
	if _, err := h.svc.EnsureUser(uc, sender.ID, sender.Username, sender.FirstName, sender.LastName); err != nil {
		return fmt.Errorf("ensuring user: %w", err)
	}

	_, err := h.svc.Start(uc, sender.ID)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUserBanned):
		return uc.TC().Send("You are not allowed to apply.")
	case errors.Is(err, service.ErrAlreadyPending):
		return uc.TC().Send("Your application is pending review.")
	case errors.Is(err, service.ErrAlreadyAccepted):
		return uc.TC().Send("Your application has already been accepted.")
	default:
		var cooldownErr *service.CooldownError
		if errors.As(err, &cooldownErr) {
			return uc.TC().Send(fmt.Sprintf(
				"You can re-apply only once a month.\nNext attempt: %s (UTC).",
				cooldownErr.ResumeAt.UTC().Format("02.01.2006 15:04"),
			))
		}
		return fmt.Errorf("starting application: %w", err)
	}

	uc.L().Infof("user %d starts filling out the questionnaire", sender.ID)

	if err := h.store.SetChatState(uc, &models.ChatState{
		UserID:   sender.ID,
		ChatID:   uc.Chat().ID,
		Stage:    models.StageQuestion,
		Question: models.QuestionPubgID,
	}); err != nil {
		return fmt.Errorf("setting chat state: %w", err)
	}

	if err := uc.TC().Send(greeting, removeKeyboard()); err != nil {
		return fmt.Errorf("sending greeting: %w", err)
	}
	return uc.TC().Send(models.QuestionPubgID.Prompt())
}

func (h *Handler) handleText(uc *UpdateContext) error {
	state, err := h.store.GetChatState(uc, uc.Sender().ID, uc.Chat().ID)
	if errors.Is(err, storage.ErrChatStateNotFound) {
		if uc.Chat().Type == telebot.ChatPrivate {
			return uc.TC().Send("Use /start to begin an application.")
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("getting chat state: %w", err)
	}

	switch state.Stage {
	case models.StageQuestion:
		return h.handleAnswer(uc, state.Question)
	case models.StageDecision:
		return h.handleDecision(uc)
	case models.StageEdit:
		return h.handleEdit(uc, state.Question)
	case models.StageRejectReason:
		return h.handleRejectReason(uc, state.PendingApplicationID)
	default:
		return fmt.Errorf("unknown conversation stage %q", state.Stage)
	}
}

func (h *Handler) handleAnswer(uc *UpdateContext, q models.Question) error {
	userID := uc.Sender().ID

	status, err := h.svc.SubmitAnswer(uc, userID, q, uc.TC().Text())
	switch {
	case err == nil:
	case errors.Is(err, models.ErrInvalidAnswer):
		return uc.TC().Send(q.ValidationHint())
	default:
		return fmt.Errorf("submitting answer to question %d: %w", q, err)
	}

	// A repeated answer means the user came back to an already answered
	// question, so the overview is the right next screen.
	if status == service.AnswerStatusUpdated || q >= models.QuestionAbout {
		return h.showOverview(uc)
	}

	next := q + 1
	if err := h.store.SetChatState(uc, &models.ChatState{
		UserID:   userID,
		ChatID:   uc.Chat().ID,
		Stage:    models.StageQuestion,
		Question: next,
	}); err != nil {
		return fmt.Errorf("setting chat state: %w", err)
	}
	return uc.TC().Send(next.Prompt())
}

func (h *Handler) handleDecision(uc *UpdateContext) error {
	userID := uc.Sender().ID

	choice, err := strconv.Atoi(uc.TC().Text())
	if err != nil || choice < 1 || choice > models.QuestionCount+1 {
		return uc.TC().Send("Use the keyboard: 1-5 to edit an answer, 6 to submit.")
	}

	if choice <= models.QuestionCount {
		q := models.Question(choice)
		if err := h.store.SetChatState(uc, &models.ChatState{
			UserID:   userID,
			ChatID:   uc.Chat().ID,
			Stage:    models.StageEdit,
			Question: q,
		}); err != nil {
			return fmt.Errorf("setting chat state: %w", err)
		}
		return uc.TC().Send(
			fmt.Sprintf("Send the new answer to question %d (%s).", q, q.Label()),
			removeKeyboard(),
		)
	}

	return h.submitApplication(uc)
}

func (h *Handler) handleEdit(uc *UpdateContext, q models.Question) error {
	_, err := h.svc.SubmitAnswer(uc, uc.Sender().ID, q, uc.TC().Text())
	switch {
	case err == nil:
	case errors.Is(err, models.ErrInvalidAnswer):
		return uc.TC().Send(q.ValidationHint())
	default:
		return fmt.Errorf("updating answer to question %d: %w", q, err)
	}
	return h.showOverview(uc)
}

func (h *Handler) showOverview(uc *UpdateContext) error {
	userID := uc.Sender().ID

	overview, err := h.svc.Overview(uc, userID)
	if err != nil {
		return fmt.Errorf("rendering overview: %w", err)
	}
	if err := h.store.SetChatState(uc, &models.ChatState{
		UserID: userID,
		ChatID: uc.Chat().ID,
		Stage:  models.StageDecision,
	}); err != nil {
		return fmt.Errorf("setting chat state: %w", err)
	}
	return uc.TC().Send(
		overview+"\n\n1-5 to edit an answer, 6 to submit.",
		userDecisionKeyboard(),
	)
}

func (h *Handler) submitApplication(uc *UpdateContext) error {
	userID := uc.Sender().ID

	app, err := h.svc.Complete(uc, userID)
	switch {
	case err == nil:
	case errors.Is(err, models.ErrIncomplete):
		return uc.TC().Send("You haven't answered all the questions yet.")
	case errors.Is(err, models.ErrWrongStatus):
		return uc.TC().Send("Your application has already been submitted.")
	default:
		return fmt.Errorf("completing application: %w", err)
	}

	if err := h.store.DeleteChatState(uc, userID, uc.Chat().ID); err != nil {
		return fmt.Errorf("clearing chat state: %w", err)
	}

	if err := uc.TC().Send(
		"Your application has been submitted. We will get back to you after review.",
		removeKeyboard(),
	); err != nil {
		return fmt.Errorf("sending confirmation: %w", err)
	}

	card, err := h.svc.FormatForAdmins(uc, app.ID)
	if err != nil {
		return fmt.Errorf("formatting application for admins: %w", err)
	}
	if _, err := uc.Bot().Send(
		&telebot.Chat{ID: h.config.AdminChatID},
		card,
		takeKeyboard(app.ID),
		telebot.ModeMarkdownV2,
	); err != nil {
		return fmt.Errorf("posting application to admin chat: %w", err)
	}

	uc.L().Infof("application %d of user %d submitted for review", app.ID, userID)
	return nil
}
