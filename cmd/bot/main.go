package main

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/clan-rush/recruitbot/internal/bot"
	"github.com/clan-rush/recruitbot/internal/config"
	"github.com/clan-rush/recruitbot/internal/logging"
	"github.com/clan-rush/recruitbot/internal/service"
	"github.com/clan-rush/recruitbot/internal/storage"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config.SetupCommon()
	logging.Init()

	cfg := config.New()
	logrus.Debugf("config: %+v", cfg)

	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	store := storage.New(db)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	migrateCtx, migrateCancel := context.WithTimeout(ctx, 10*time.Second)
	defer migrateCancel()

	if err := store.Migrate(migrateCtx); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token: cfg.TelegramToken,
		Poller: &telebot.LongPoller{
			Timeout:        10 * time.Second,
			AllowedUpdates: []string{"message", "callback_query"},
		},
	})
	if err != nil {
		logrus.Fatalf("Failed to create bot: %v", err)
	}

	svc := service.New(store, cfg.ApplicationCooldown)
	bot.New(cfg, store, svc).Register(b)

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		b.Start()
	}()

	<-ctx.Done()

	b.Stop()

	logrus.Info("waiting for bot to finish")
	wg.Wait()
}
