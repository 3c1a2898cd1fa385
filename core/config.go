package core

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries the process-wide settings. It is loaded once at start
// and passed by reference to every component that needs it.
type Config struct {
	Env            string // DEV (default), TEST, QA, PROD
	Debug          bool
	APIBaseURL     string // coaching backend base URL, path-prefixed /api
	RequestTimeout time.Duration
	StoragePath    string // device key/value store file; empty selects the in-memory store
}

// LoadConfig reads settings from the environment, with an optional local
// .env file taking effect first.
func LoadConfig() (*Config, error) {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("env", "DEV")
	conf.SetDefault("debug", true)
	conf.SetDefault("apiBaseUrl", "http://localhost:5002/api")
	conf.SetDefault("requestTimeout", 15*time.Second)
	conf.SetDefault("storagePath", "")

	// load .env if it exists (ignore if it does not)
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	conf.SetEnvPrefix("coachly")
	conf.AutomaticEnv()

	return &Config{
		Env:            conf.GetString("env"),
		Debug:          conf.GetBool("debug"),
		APIBaseURL:     conf.GetString("apiBaseUrl"),
		RequestTimeout: conf.GetDuration("requestTimeout"),
		StoragePath:    conf.GetString("storagePath"),
	}, nil
}
