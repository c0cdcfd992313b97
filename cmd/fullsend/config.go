package main

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the credentials and sender identity read from TWILIO_*
// environment variables.
type Config struct {
	AccountSID          string
	AuthToken           string
	APIKeySID           string
	APIKeySecret        string
	SenderNum           string
	MessagingServiceSID string
}

func loadConfig() (*Config, error) {
	// A local .env file is a development convenience; absence is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("twilio")
	v.AutomaticEnv()

	cfg := &Config{
		AccountSID:          v.GetString("account_sid"),
		AuthToken:           v.GetString("account_tkn"),
		APIKeySID:           v.GetString("api_key_sid"),
		APIKeySecret:        v.GetString("api_key_secret"),
		SenderNum:           v.GetString("sender_num"),
		MessagingServiceSID: v.GetString("messaging_service_sid"),
	}

	if cfg.AccountSID == "" {
		return nil, errors.New("TWILIO_ACCOUNT_SID must be set")
	}

	if cfg.AuthToken == "" && cfg.APIKeySID == "" {
		return nil, errors.New("either TWILIO_ACCOUNT_TKN or TWILIO_API_KEY_SID/TWILIO_API_KEY_SECRET must be set")
	}

	if cfg.SenderNum == "" && cfg.MessagingServiceSID == "" {
		return nil, errors.New("either TWILIO_SENDER_NUM or TWILIO_MESSAGING_SERVICE_SID must be set")
	}

	return cfg, nil
}
