package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"phonelogin/internal/app"
	"phonelogin/internal/config"
	"phonelogin/internal/store"
)

func TestNewWire_FileBacked(t *testing.T) {
	home := t.TempDir()
	w, err := app.NewWire(app.Config{Home: home})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	defer w.Close()

	if w.Installation == "" {
		t.Fatal("missing installation id")
	}
	if _, ok := w.Store.(*store.FileStore); !ok {
		t.Fatalf("expected file store, got %T", w.Store)
	}

	ctx := context.Background()
	w.Form.OnInputChange("5551234567")
	if _, err := w.Form.OnSubmit(ctx); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, store.DefaultFile)); err != nil {
		t.Fatalf("storage document missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "logs", "debug.log")); err != nil {
		t.Fatalf("debug log missing: %v", err)
	}

	// A second wiring over the same home sees the session after Load.
	w2, err := app.NewWire(app.Config{Home: home})
	if err != nil {
		t.Fatalf("second NewWire: %v", err)
	}
	defer w2.Close()
	if w2.Installation != w.Installation {
		t.Fatal("installation id changed between runs")
	}
	if err := w2.Form.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if v, ok := w2.Form.StoredValue(); !ok || v != "(555) 123-4567" {
		t.Fatalf("stored value %q ok=%v", v, ok)
	}
}

func TestNewWire_Ephemeral(t *testing.T) {
	settings := config.Default()
	settings.Storage.Ephemeral = true
	settings.Logging.Enabled = false

	home := t.TempDir()
	w, err := app.NewWire(app.Config{Home: home, Settings: settings})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	defer w.Close()

	if _, ok := w.Store.(*store.MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", w.Store)
	}
	if _, err := os.Stat(filepath.Join(home, "logs")); !os.IsNotExist(err) {
		t.Fatal("logs directory created although logging is disabled")
	}
}

func TestNewWire_RequiresHome(t *testing.T) {
	if _, err := app.NewWire(app.Config{}); err == nil {
		t.Fatal("expected error without home")
	}
}
