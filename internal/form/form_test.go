package form_test

import (
	"context"
	"testing"

	"phonelogin/internal/domain"
	"phonelogin/internal/form"
	"phonelogin/internal/services/persistence"
	"phonelogin/internal/services/session"
	"phonelogin/internal/store"
	"phonelogin/internal/store/storetest"
)

func newController(t *testing.T) (*form.Controller, *storetest.FailingStore) {
	t.Helper()
	fs := storetest.New(store.NewMemoryStore())
	svc := session.New(persistence.New(fs, 0, nil), nil)
	return form.New(svc, nil), fs
}

func TestOnInputChange_FormatsProgressively(t *testing.T) {
	c, _ := newController(t)
	steps := []struct{ raw, want string }{
		{"5", "5"},
		{"555", "555"},
		{"5551", "(555) 1"},
		{"(555) 1234", "(555) 123-4"},
		{"(555) 123-45678", "(555) 123-4567"},
		{"(555) 123-45679", "(555) 123-4567"},
	}
	for _, s := range steps {
		if got := c.OnInputChange(s.raw); got != s.want {
			t.Fatalf("OnInputChange(%q) = %q, want %q", s.raw, got, s.want)
		}
		if c.DisplayValue() != s.want {
			t.Fatalf("DisplayValue = %q, want %q", c.DisplayValue(), s.want)
		}
	}
}

func TestIsValid_TracksInput(t *testing.T) {
	c, _ := newController(t)
	if c.IsValid() {
		t.Fatal("empty input must not be valid")
	}
	c.OnInputChange("555123456")
	if c.IsValid() {
		t.Fatal("nine digits must not be valid")
	}
	c.OnInputChange("5551234567")
	if !c.IsValid() {
		t.Fatal("ten digits must be valid")
	}
}

func TestOnSubmit_Success(t *testing.T) {
	ctx := context.Background()
	c, _ := newController(t)
	c.OnInputChange("5551234567")

	n, err := c.OnSubmit(ctx)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if n.Kind != form.NoticeInfo || n.Text != form.MsgLoginSuccess {
		t.Fatalf("unexpected notice %+v", n)
	}
	if c.DisplayValue() != "" {
		t.Fatalf("input not cleared: %q", c.DisplayValue())
	}
	if v, ok := c.StoredValue(); !ok || v != "(555) 123-4567" {
		t.Fatalf("stored value %q ok=%v", v, ok)
	}
	if g := c.Greeting(); g != "Welcome, (555) 123-4567!" {
		t.Fatalf("greeting = %q", g)
	}
}

func TestOnSubmit_Invalid(t *testing.T) {
	c, fs := newController(t)
	c.OnInputChange("555")

	n, err := c.OnSubmit(context.Background())
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if n.Kind != form.NoticeError || n.Text != form.MsgInvalidNumber {
		t.Fatalf("unexpected notice %+v", n)
	}
	if c.DisplayValue() != "555" {
		t.Fatal("invalid submit must keep the input")
	}
	if fs.Calls(domain.OpWrite) != 0 {
		t.Fatal("invalid submit must not write")
	}
}

func TestOnSubmit_StorageFailure_IsSilent(t *testing.T) {
	c, fs := newController(t)
	fs.Fail(domain.OpWrite, nil)
	c.OnInputChange("5551234567")

	n, err := c.OnSubmit(context.Background())
	if !domain.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if !n.Empty() {
		t.Fatalf("expected no notice, got %+v", n)
	}
	if _, ok := c.StoredValue(); ok {
		t.Fatal("expected logged out after failed submit")
	}
	if c.DisplayValue() != "(555) 123-4567" {
		t.Fatal("failed submit must keep the input")
	}
}

func TestOnLogout(t *testing.T) {
	ctx := context.Background()
	c, _ := newController(t)

	n, err := c.OnLogout(ctx)
	if err != nil || !n.Empty() {
		t.Fatalf("logout while logged out: notice=%+v err=%v", n, err)
	}

	c.OnInputChange("5551234567")
	if _, err := c.OnSubmit(ctx); err != nil {
		t.Fatal(err)
	}
	n, err = c.OnLogout(ctx)
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if n.Text != form.MsgLogoutSuccess {
		t.Fatalf("unexpected notice %+v", n)
	}
	if _, ok := c.StoredValue(); ok {
		t.Fatal("still logged in after logout")
	}
	if c.Greeting() != "" {
		t.Fatal("greeting shown while logged out")
	}
}

func TestLoad_SeedsStoredValue(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	if err := mem.SetItem(ctx, session.StorageKey, "(555) 123-4567"); err != nil {
		t.Fatal(err)
	}
	c := form.New(session.New(persistence.New(mem, 0, nil), nil), nil)

	if _, ok := c.StoredValue(); ok {
		t.Fatal("stored value visible before Load")
	}
	if err := c.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if v, ok := c.StoredValue(); !ok || v != "(555) 123-4567" {
		t.Fatalf("stored value %q ok=%v", v, ok)
	}
}
