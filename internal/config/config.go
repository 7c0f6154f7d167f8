// Package config loads phonelogin settings from defaults, an optional YAML
// file under the home directory, and PHONELOGIN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"phonelogin/internal/logging"
)

const (
	// DirName is the home directory created under the user's home.
	DirName = ".phonelogin"
	// FileName is the config file looked up inside the home directory.
	FileName = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. PHONELOGIN_LOGGING_LEVEL.
	EnvPrefix = "PHONELOGIN"
)

// Config represents the complete phonelogin configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Form    FormConfig    `mapstructure:"form" yaml:"form"`
}

// StorageConfig controls the device key-value store.
type StorageConfig struct {
	// File is the storage document name inside the home directory.
	File string `mapstructure:"file" yaml:"file"`
	// Timeout bounds each storage operation (0 = no timeout).
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	// Ephemeral keeps the session in memory only.
	Ephemeral bool `mapstructure:"ephemeral" yaml:"ephemeral"`
}

// LoggingConfig controls debug logging.
type LoggingConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Level   string `mapstructure:"level" yaml:"level"`
}

// FormConfig controls the interactive form.
type FormConfig struct {
	Title       string `mapstructure:"title" yaml:"title"`
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			File: "storage.json",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   logging.LevelInfo,
		},
		Form: FormConfig{
			Title:       "Phone Login",
			Placeholder: "Enter phone number",
		},
	}
}

// SetDefaults registers every default on v so they apply without a file.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("storage.file", d.Storage.File)
	v.SetDefault("storage.timeout", d.Storage.Timeout)
	v.SetDefault("storage.ephemeral", d.Storage.Ephemeral)
	v.SetDefault("logging.enabled", d.Logging.Enabled)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("form.title", d.Form.Title)
	v.SetDefault("form.placeholder", d.Form.Placeholder)
}

// DefaultHome returns ~/.phonelogin.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DirName), nil
}

// Load reads configuration into v and decodes it. If file is empty,
// home/config.yaml is used when present. A missing file is not an error.
func Load(v *viper.Viper, home, file string) (*Config, error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(file == "" && errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if c.Storage.File == "" {
		return errors.New("config: storage.file must not be empty")
	}
	if filepath.Base(c.Storage.File) != c.Storage.File {
		return fmt.Errorf("config: storage.file %q must be a plain file name", c.Storage.File)
	}
	if c.Storage.Timeout < 0 {
		return fmt.Errorf("config: storage.timeout must not be negative, got %s", c.Storage.Timeout)
	}
	c.Logging.Level = logging.ParseLevel(c.Logging.Level)
	return nil
}

const defaultHeader = "# phonelogin configuration\n" +
	"# Every key can be overridden with PHONELOGIN_<SECTION>_<KEY>, e.g. PHONELOGIN_LOGGING_LEVEL=DEBUG.\n\n"

// WriteDefault writes the default configuration to path. An existing file is
// left alone unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	body, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("config: encode defaults: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, append([]byte(defaultHeader), body...), 0o600)
}
