package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(viper.New(), t.TempDir(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg.Storage.File != want.Storage.File {
		t.Errorf("storage.file = %q, want %q", cfg.Storage.File, want.Storage.File)
	}
	if !cfg.Logging.Enabled || cfg.Logging.Level != "INFO" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.Form.Placeholder != "Enter phone number" {
		t.Errorf("placeholder = %q", cfg.Form.Placeholder)
	}
}

func TestLoadFromHomeFile(t *testing.T) {
	home := t.TempDir()
	body := "storage:\n  file: session.json\n  timeout: 2s\nlogging:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(home, FileName), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(viper.New(), home, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.File != "session.json" {
		t.Errorf("storage.file = %q", cfg.Storage.File)
	}
	if cfg.Storage.Timeout != 2*time.Second {
		t.Errorf("storage.timeout = %s", cfg.Storage.Timeout)
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("logging.level = %q, want normalised DEBUG", cfg.Logging.Level)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PHONELOGIN_FORM_PLACEHOLDER", "Your number")
	t.Setenv("PHONELOGIN_STORAGE_EPHEMERAL", "true")
	cfg, err := Load(viper.New(), t.TempDir(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Form.Placeholder != "Your number" {
		t.Errorf("placeholder = %q", cfg.Form.Placeholder)
	}
	if !cfg.Storage.Ephemeral {
		t.Error("expected ephemeral storage from env")
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(viper.New(), t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for explicit missing config file")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Storage.File = "../escape.json"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for storage.file with a path")
	}
	cfg = Default()
	cfg.Storage.Timeout = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative timeout")
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(b), "# phonelogin configuration") {
		t.Errorf("missing header: %q", string(b))
	}
	var got Config
	if err := yaml.Unmarshal(b, &got); err != nil {
		t.Fatalf("decode written config: %v", err)
	}
	if got.Form.Title != Default().Form.Title {
		t.Errorf("title = %q", got.Form.Title)
	}

	if err := WriteDefault(path, false); err == nil {
		t.Error("expected error when file exists and force is false")
	}
	if err := WriteDefault(path, true); err != nil {
		t.Errorf("forced overwrite: %v", err)
	}

	cfg, err := Load(viper.New(), filepath.Dir(path), "")
	if err != nil {
		t.Fatalf("Load written defaults: %v", err)
	}
	if cfg.Storage.Timeout != 0 {
		t.Errorf("timeout = %s", cfg.Storage.Timeout)
	}
}
