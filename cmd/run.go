package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/app"
	"github.com/quizdeck/quizdeck/internal/config"
	"github.com/quizdeck/quizdeck/internal/questionbank"
	"github.com/quizdeck/quizdeck/internal/store"
)

// runApp resolves configuration, loads the question bank, opens the
// history store, and hands everything to the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	universe, err := loadUniverse(cfg)
	if err != nil {
		return err
	}

	opts := app.Options{
		Universe: universe,
		Config:   cfg,
	}

	// History is optional: a broken store degrades to an unrecorded
	// session rather than blocking play.
	st, err := openStore(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Session history unavailable:", err)
		fmt.Fprintln(os.Stderr, "Results will not be recorded.")
	} else {
		defer st.Close()
		opts.History = st.History()
	}

	return app.Run(opts)
}

// loadConfig layers command-line flags on top of the file and
// environment configuration.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		cfg.BankPath = p
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if t, _ := cmd.Flags().GetInt("timer"); t > 0 {
		cfg.TimerSeconds = t
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadUniverse reads the configured bank file, falling back to the
// embedded bank when none is set.
func loadUniverse(cfg config.Config) ([]questionbank.Question, error) {
	if cfg.BankPath == "" {
		return questionbank.Default(), nil
	}
	qs, err := questionbank.Load(cfg.BankPath)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	return qs, nil
}

// openStore opens the history database at the configured path or the
// default XDG location.
func openStore(cfg config.Config) (*store.Store, error) {
	path := cfg.DBPath
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create DB directory: %w", err)
	}
	return store.Open(path)
}
