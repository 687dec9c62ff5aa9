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

func (h *Handler) handleTake(uc *UpdateContext) error {
	applicationID, err := callbackApplicationID(uc)
	if err != nil {
		return err
	}
	adminID := uc.Sender().ID

	_, err = h.svc.Take(uc, adminID, applicationID)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrAlreadyClaimed):
		return respond(uc, "The application is already claimed, or you hold another one.")
	case errors.Is(err, models.ErrWrongStatus):
		return respond(uc, "The application is not awaiting review.")
	case errors.Is(err, storage.ErrApplicationNotFound):
		return respond(uc, "Application not found.")
	default:
		return fmt.Errorf("taking application %d: %w", applicationID, err)
	}

	uc.L().Infof("admin %d took application %d", adminID, applicationID)

	if err := uc.TC().Edit(decisionKeyboard(applicationID)); err != nil {
		uc.L().Warnf("editing review keyboard: %v", err)
	}
	return respond(uc, fmt.Sprintf("Application #%d is yours.", applicationID))
}

func (h *Handler) handleAccept(uc *UpdateContext) error {
	applicationID, err := callbackApplicationID(uc)
	if err != nil {
		return err
	}
	adminID := uc.Sender().ID

	clanChat := &telebot.Chat{ID: h.config.ClanChatID}
	link, err := uc.Bot().CreateInviteLink(clanChat, &telebot.ChatInviteLink{MemberLimit: 1})
	if err != nil {
		return fmt.Errorf("creating invite link: %w", err)
	}

	app, err := h.svc.Accept(uc, adminID, applicationID, link.InviteLink)
	if err != nil {
		if _, revokeErr := uc.Bot().RevokeInviteLink(clanChat, link.InviteLink); revokeErr != nil {
			uc.L().Errorf("revoking unused invite link: %v", revokeErr)
		}
		return h.respondResolveError(uc, applicationID, err)
	}

	uc.L().Infof("admin %d accepted application %d", adminID, applicationID)

	if _, err := uc.Bot().Send(
		&telebot.User{ID: app.UserID},
		fmt.Sprintf("Congratulations, your application has been accepted! Join us: %s", app.InviteLink),
	); err != nil {
		uc.L().Errorf("notifying user %d about acceptance: %v", app.UserID, err)
	}

	if err := uc.TC().Edit(&telebot.ReplyMarkup{}); err != nil {
		uc.L().Warnf("removing review keyboard: %v", err)
	}
	return respond(uc, fmt.Sprintf("Application #%d accepted.", applicationID))
}

func (h *Handler) handleDecline(uc *UpdateContext) error {
	applicationID, err := callbackApplicationID(uc)
	if err != nil {
		return err
	}

	if err := h.store.SetChatState(uc, &models.ChatState{
		UserID:               uc.Sender().ID,
		ChatID:               uc.Chat().ID,
		Stage:                models.StageRejectReason,
		PendingApplicationID: applicationID,
	}); err != nil {
		return fmt.Errorf("setting chat state: %w", err)
	}

	if err := uc.TC().Send(fmt.Sprintf(
		"Send the rejection reason for application #%d as a message.",
		applicationID,
	)); err != nil {
		return fmt.Errorf("asking for rejection reason: %w", err)
	}
	return respond(uc, "")
}

func (h *Handler) handleRejectReason(uc *UpdateContext, applicationID int64) error {
	adminID := uc.Sender().ID

	app, err := h.svc.Reject(uc, adminID, applicationID, uc.TC().Text())
	if err != nil {
		return h.respondResolveError(uc, applicationID, err)
	}

	if err := h.store.DeleteChatState(uc, adminID, uc.Chat().ID); err != nil {
		return fmt.Errorf("clearing chat state: %w", err)
	}

	uc.L().Infof("admin %d rejected application %d", adminID, applicationID)

	resumeAt := app.DecisionDate.Add(h.svc.Cooldown())
	if _, err := uc.Bot().Send(
		&telebot.User{ID: app.UserID},
		fmt.Sprintf(
			"Unfortunately, your application has been declined.\nReason: %s\nYou may apply again after %s (UTC).",
			app.RejectionReason,
			resumeAt.UTC().Format("02.01.2006 15:04"),
		),
	); err != nil {
		uc.L().Errorf("notifying user %d about rejection: %v", app.UserID, err)
	}

	return uc.TC().Send(fmt.Sprintf("Application #%d declined.", applicationID))
}

func (h *Handler) handleBan(uc *UpdateContext) error {
	return h.handleUserModeration(uc, "ban")
}

func (h *Handler) handleUnban(uc *UpdateContext) error {
	return h.handleUserModeration(uc, "unban")
}

func (h *Handler) handleUserModeration(uc *UpdateContext, action string) error {
	if uc.Chat().ID != h.config.AdminChatID {
		uc.L().Debugf("ignoring /%s outside the admin chat", action)
		return nil
	}

	args := uc.TC().Args()
	if len(args) != 1 {
		return uc.TC().Send(fmt.Sprintf("Usage: /%s <user_id>", action))
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return uc.TC().Send(fmt.Sprintf("Usage: /%s <user_id>", action))
	}

	if action == "ban" {
		_, err = h.svc.Ban(uc, userID)
	} else {
		_, err = h.svc.Unban(uc, userID)
	}
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrUserNotFound):
		return uc.TC().Send("User not found.")
	case errors.Is(err, models.ErrAlreadyBanned):
		return uc.TC().Send("The user is already banned.")
	case errors.Is(err, models.ErrNotBanned):
		return uc.TC().Send("The user is not banned.")
	default:
		return fmt.Errorf("%sning user %d: %w", action, userID, err)
	}

	uc.L().Infof("admin %d applied /%s to user %d", uc.Sender().ID, action, userID)
	return uc.TC().Send(fmt.Sprintf("Done: /%s %d.", action, userID))
}

func (h *Handler) respondResolveError(uc *UpdateContext, applicationID int64, err error) error {
	switch {
	case errors.Is(err, service.ErrNoClaim):
		return respond(uc, "You haven't taken an application.")
	case errors.Is(err, service.ErrWrongAdmin):
		return respond(uc, "This application is claimed by another admin.")
	case errors.Is(err, models.ErrWrongStatus):
		return respond(uc, "The application is not being processed.")
	default:
		return fmt.Errorf("resolving application %d: %w", applicationID, err)
	}
}

func callbackApplicationID(uc *UpdateContext) (int64, error) {
	id, err := strconv.ParseInt(uc.TC().Data(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing callback application id %q: %w", uc.TC().Data(), err)
	}
	return id, nil
}

func respond(uc *UpdateContext, text string) error {
	if uc.TC().Callback() == nil {
		if text == "" {
			return nil
		}
		return uc.TC().Send(text)
	}
	return uc.TC().Respond(&telebot.CallbackResponse{Text: text})
}
