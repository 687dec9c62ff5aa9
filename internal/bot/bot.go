package bot

import (
	"context"

	"github.com/clan-rush/recruitbot/internal/config"
	"github.com/clan-rush/recruitbot/internal/service"
	"github.com/clan-rush/recruitbot/internal/storage"
	"gopkg.in/telebot.v4"
)

// Handler routes Telegram updates to the application services and keeps
// the questionnaire FSM position in storage.
type Handler struct {
	config *config.Config
	store  storage.Store
	svc    *service.Service
}

func New(cfg *config.Config, store storage.Store, svc *service.Service) *Handler {
	return &Handler{
		config: cfg,
		store:  store,
		svc:    svc,
	}
}

func (h *Handler) Register(b *telebot.Bot) {
	b.Handle("/start", h.wrap(h.handleStart))
	b.Handle("/ban", h.wrap(h.handleBan))
	b.Handle("/unban", h.wrap(h.handleUnban))
	b.Handle(telebot.OnText, h.wrap(h.handleText))
	b.Handle(&telebot.Btn{Unique: callbackTake}, h.wrap(h.handleTake))
	b.Handle(&telebot.Btn{Unique: callbackAccept}, h.wrap(h.handleAccept))
	b.Handle(&telebot.Btn{Unique: callbackDecline}, h.wrap(h.handleDecline))
}

func (h *Handler) wrap(fn func(uc *UpdateContext) error) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), h.config.BotHandleTimeout)
		defer cancel()

		uc := NewUpdateContext(ctx, c)
		if err := fn(uc); err != nil {
			uc.L().Errorf("handling update: %v", err)
		}
		return nil
	}
}
