package app

import (
	"errors"
	"fmt"
	"os"

	"phonelogin/internal/domain"
	"phonelogin/internal/form"
	"phonelogin/internal/logging"
	"phonelogin/internal/services/persistence"
	"phonelogin/internal/services/session"
	"phonelogin/internal/store"
)

// Wire bundles the stores, services and loggers used by the CLI and TUI.
type Wire struct {
	Installation domain.InstallationID
	Log          *logging.Logger
	Store        domain.KeyValueStore
	Gateway      domain.PersistenceGateway
	Session      domain.SessionService
	Form         *form.Controller
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Home == "" {
		return nil, errors.New("app: home directory required")
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("app: create home: %w", err)
	}
	settings := cfg.settings()

	inst, err := store.EnsureInstallation(cfg.Home)
	if err != nil {
		return nil, err
	}

	// Logging
	log := logging.NopLogger()
	if settings.Logging.Enabled {
		if log, err = logging.NewLogger(cfg.LogDir(), settings.Logging.Level); err != nil {
			return nil, err
		}
	}
	log = log.WithInstallation(inst.String())

	// Device storage
	var kv domain.KeyValueStore
	if settings.Storage.Ephemeral {
		kv = store.NewMemoryStore()
	} else {
		kv = store.NewFileStore(cfg.Home, settings.Storage.File)
	}

	// Services
	gateway := persistence.New(kv, settings.Storage.Timeout, log)
	sessionSvc := session.New(gateway, log)

	return &Wire{
		Installation: inst,
		Log:          log,
		Store:        kv,
		Gateway:      gateway,
		Session:      sessionSvc,
		Form:         form.New(sessionSvc, log),
	}, nil
}

// Close releases the log file.
func (w *Wire) Close() error {
	if w == nil {
		return nil
	}
	return w.Log.Close()
}
