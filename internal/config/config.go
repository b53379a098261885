package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

// Config carries the runtime settings of the quizdeck binary. Values
// are layered: built-in defaults, then an optional config file, then
// QUIZDECK_* environment variables. Command-line flags are applied on
// top by the CLI layer.
type Config struct {
	// BankPath is a question bank file to load instead of the embedded
	// bank. Empty means the embedded bank.
	BankPath string `mapstructure:"bank_path"`

	// DBPath is the SQLite history database location. Empty resolves
	// through the store's default path.
	DBPath string `mapstructure:"db_path"`

	// TimerSeconds is the session countdown budget.
	TimerSeconds int `mapstructure:"timer_seconds"`
}

// Load resolves the configuration. The config file is read from
// QUIZDECK_CONFIG if set (and must exist), otherwise from
// $XDG_CONFIG_HOME/quizdeck/config.yaml (falling back to
// ~/.config/quizdeck/config.yaml), where a missing file is fine.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("bank_path", "")
	v.SetDefault("db_path", "")
	v.SetDefault("timer_seconds", quiz.DefaultTimerSeconds)

	if p := os.Getenv("QUIZDECK_CONFIG"); p != "" {
		v.SetConfigFile(p)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix("QUIZDECK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges. Path fields are not checked here; a
// bad bank or database path surfaces when it is opened.
func (c Config) Validate() error {
	if c.TimerSeconds <= 0 {
		return fmt.Errorf("timer_seconds must be positive, got %d", c.TimerSeconds)
	}
	return nil
}

// configDir resolves the config directory:
// $XDG_CONFIG_HOME/quizdeck, falling back to ~/.config/quizdeck.
func configDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quizdeck"), nil
}
