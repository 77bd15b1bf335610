package config

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel       string        `env:"LOG_LEVEL,default=INFO"`
	DefaultMode    string        `env:"DEFAULT_MODE,default=groups"`
	DefaultFormat  string        `env:"DEFAULT_FORMAT,default=json"`
	RevealInterval time.Duration `env:"REVEAL_INTERVAL,default=0s"`
	Trials         int           `env:"TRIALS,default=100"`
}

// Load reads the environment, after loading a .env file from the working directory if there is one
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if config.Trials <= 0 {
		return Config{}, fmt.Errorf("TRIALS must be greater than 0: %v", config.Trials)
	}
	return config, nil
}
