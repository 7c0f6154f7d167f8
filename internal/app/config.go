package app

import (
	"path/filepath"

	"phonelogin/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string         // data directory, e.g. $HOME/.phonelogin
	Settings *config.Config // loaded settings; defaults when nil
}

func (c Config) settings() *config.Config {
	if c.Settings == nil {
		return config.Default()
	}
	return c.Settings
}

// LogDir is where debug.log is written.
func (c Config) LogDir() string { return filepath.Join(c.Home, "logs") }
