package main

import (
	"context"
	"time"

	"github.com/clan-rush/recruitbot/internal/api"
	"github.com/clan-rush/recruitbot/internal/config"
	"github.com/clan-rush/recruitbot/internal/logging"
	"github.com/clan-rush/recruitbot/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
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

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer migrateCancel()

	if err := store.Migrate(migrateCtx); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	service := api.NewService(store)
	e := echo.New()
	e.GET("/healthz", service.HandleHealth())
	e.GET("/applications", service.HandleListApplications())
	e.GET("/applications/:id", service.HandleGetApplication())

	if err := e.Start(cfg.APIListenAddr); err != nil {
		logrus.Fatalf("API server stopped: %v", err)
	}
}
