package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"phonelogin/internal/config"
	"phonelogin/internal/domain"
	"phonelogin/internal/form"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	if cerr := wire.Close(); cerr != nil {
		t.Fatalf("close: %v", cerr)
	}
	return stdout.String(), stderr.String(), err
}

func TestLoginStatusLogout(t *testing.T) {
	home := t.TempDir()

	out, _, err := run(t, "--home", home, "login", "555", "123", "4567")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, form.MsgLoginSuccess) {
		t.Fatalf("login output %q", out)
	}

	out, _, err = run(t, "--home", home, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "Welcome, (555) 123-4567!") {
		t.Fatalf("status output %q", out)
	}
	if !strings.Contains(out, "Installation: ") {
		t.Fatalf("status output missing installation: %q", out)
	}

	out, _, err = run(t, "--home", home, "logout")
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !strings.Contains(out, form.MsgLogoutSuccess) {
		t.Fatalf("logout output %q", out)
	}

	out, _, err = run(t, "--home", home, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, notLoggedIn) {
		t.Fatalf("status output %q", out)
	}
}

func TestLogin_InvalidNumber(t *testing.T) {
	home := t.TempDir()

	_, errOut, err := run(t, "--home", home, "login", "555-1234")
	if !errors.Is(err, domain.ErrInvalidPhoneNumber) {
		t.Fatalf("expected invalid phone number error, got %v", err)
	}
	if !strings.Contains(errOut, form.MsgInvalidNumber) {
		t.Fatalf("stderr %q", errOut)
	}
	if _, err := os.Stat(filepath.Join(home, "storage.json")); !os.IsNotExist(err) {
		t.Fatal("invalid login wrote storage")
	}
}

func TestLogout_WhenLoggedOut(t *testing.T) {
	out, _, err := run(t, "--home", t.TempDir(), "logout")
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !strings.Contains(out, notLoggedIn) {
		t.Fatalf("output %q", out)
	}
}

func TestFormatAndValidate(t *testing.T) {
	home := t.TempDir()

	out, _, err := run(t, "--home", home, "format", "5551234")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if strings.TrimSpace(out) != "(555) 123-4" {
		t.Fatalf("format output %q", out)
	}

	out, _, err = run(t, "--home", home, "validate", "555.123.4567")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "valid: (555) 123-4567") {
		t.Fatalf("validate output %q", out)
	}

	_, _, err = run(t, "--home", home, "validate", "123")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(home, "installation.json")); !os.IsNotExist(err) {
		t.Fatal("offline commands should not initialise the home directory")
	}
}

func TestConfigInit(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, config.FileName)

	if _, _, err := run(t, "--home", home, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file missing: %v", err)
	}
	if _, _, err := run(t, "--home", home, "config", "init"); err == nil {
		t.Fatal("expected error when config exists")
	}
	if _, _, err := run(t, "--home", home, "config", "init", "--force"); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
}

func TestEphemeralDoesNotPersist(t *testing.T) {
	home := t.TempDir()

	if _, _, err := run(t, "--home", home, "--ephemeral", "login", "5551234567"); err != nil {
		t.Fatalf("login: %v", err)
	}
	out, _, err := run(t, "--home", home, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, notLoggedIn) {
		t.Fatalf("ephemeral session leaked to disk: %q", out)
	}
}

func TestEnvOverridesStorageFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PHONELOGIN_STORAGE_FILE", "other.json")

	if _, _, err := run(t, "--home", home, "login", "5551234567"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "other.json")); err != nil {
		t.Fatalf("expected storage at other.json: %v", err)
	}
}

func TestLogLevelFlag(t *testing.T) {
	home := t.TempDir()

	if _, _, err := run(t, "--home", home, "--log-level", "DEBUG", "status"); err != nil {
		t.Fatalf("status: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(home, "logs", "debug.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "command started") {
		t.Fatalf("debug line missing from log:\n%s", data)
	}
}
