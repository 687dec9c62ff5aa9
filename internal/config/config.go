package config

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	TelegramToken    string        `mapstructure:"telegram_token"`
	BotHandleTimeout time.Duration `mapstructure:"bot_handle_timeout"`

	// ClanChatID is the chat invite links are issued for; AdminChatID is
	// where completed applications are posted for review.
	ClanChatID  int64 `mapstructure:"clan_chat_id"`
	AdminChatID int64 `mapstructure:"admin_chat_id"`

	ApplicationCooldown time.Duration `mapstructure:"application_cooldown"`

	PostgresDSN string `mapstructure:"postgres_dsn"`

	APIListenAddr string `mapstructure:"api_listen_addr"`
}

func New() *Config {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		logrus.Fatalf("unmarshalling config: %v", err)
	}
	return cfg
}

func SetupCommon() {
	viper.SetDefault("bot_handle_timeout", "10s")
	viper.SetDefault("application_cooldown", "720h")
	viper.SetDefault("api_listen_addr", ":8080")
	viper.SetEnvPrefix("RECRUITBOT")

	viper.MustBindEnv("telegram_token")
	viper.MustBindEnv("postgres_dsn")
	viper.MustBindEnv("clan_chat_id")
	viper.MustBindEnv("admin_chat_id")
	viper.AutomaticEnv()
}
