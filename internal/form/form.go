// Package form is the UI-facing façade over the session service: it keeps
// the in-progress input, decides submit enablement, and turns outcomes into
// the confirmation notices the shells display.
package form

import (
	"context"
	"fmt"
	"sync"

	"phonelogin/internal/domain"
	"phonelogin/internal/logging"
	"phonelogin/internal/phone"
)

// Notice texts surfaced to the user.
const (
	MsgLoginSuccess  = "Logged in successfully with phone number!"
	MsgLogoutSuccess = "Logged out successfully!"
	MsgInvalidNumber = "Please enter a valid 10-digit phone number."
)

// NoticeKind classifies a notice for styling.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeInfo
	NoticeError
)

// Notice is a blocking confirmation or error message for the user. The zero
// value means "nothing to show".
type Notice struct {
	Kind NoticeKind
	Text string
}

// Empty reports whether there is nothing to show.
func (n Notice) Empty() bool { return n.Kind == NoticeNone }

// Controller holds the form input and delegates transitions to the session.
type Controller struct {
	session domain.SessionService
	log     *logging.Logger

	mu    sync.Mutex
	input string
}

// New returns a Controller with an empty input field.
func New(session domain.SessionService, log *logging.Logger) *Controller {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Controller{session: session, log: log.WithComponent("form")}
}

// Load resolves the initial session state from storage. Until it returns the
// form reports no stored value.
func (c *Controller) Load(ctx context.Context) error {
	_, err := c.session.Restore(ctx)
	return err
}

// OnInputChange records raw input and returns its display form.
func (c *Controller) OnInputChange(raw string) string {
	formatted := phone.Format(raw)
	c.mu.Lock()
	c.input = formatted
	c.mu.Unlock()
	return formatted
}

// DisplayValue returns the formatted input as currently shown.
func (c *Controller) DisplayValue() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// IsValid reports whether the current input, stripped of non-digits, passes
// the ten-digit check. Submit is only enabled when this is true.
func (c *Controller) IsValid() bool {
	return phone.Valid(phone.Clean(c.DisplayValue()))
}

// StoredValue returns the logged-in phone number, if any.
func (c *Controller) StoredValue() (domain.PhoneNumber, bool) {
	st := c.session.State()
	if !st.LoggedIn() {
		return "", false
	}
	return st.Value, true
}

// Greeting returns the welcome line for a logged-in user, or "".
func (c *Controller) Greeting() string {
	v, ok := c.StoredValue()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Welcome, %s!", v)
}

// OnSubmit logs in with the current input. On success the input is cleared.
// A storage failure yields no notice: the action silently does not complete
// and the error is returned for logging.
func (c *Controller) OnSubmit(ctx context.Context) (Notice, error) {
	input := c.DisplayValue()
	if !phone.Valid(phone.Clean(input)) {
		return Notice{Kind: NoticeError, Text: MsgInvalidNumber}, domain.NewValidationError(input)
	}

	if _, err := c.session.Login(ctx, input); err != nil {
		if domain.IsValidation(err) {
			return Notice{Kind: NoticeError, Text: MsgInvalidNumber}, err
		}
		c.log.Error("submit did not complete", "error", err)
		return Notice{}, err
	}

	c.mu.Lock()
	c.input = ""
	c.mu.Unlock()
	return Notice{Kind: NoticeInfo, Text: MsgLoginSuccess}, nil
}

// OnLogout removes the stored session. It is a silent no-op when nobody is
// logged in.
func (c *Controller) OnLogout(ctx context.Context) (Notice, error) {
	if !c.session.State().LoggedIn() {
		return Notice{}, nil
	}
	if _, err := c.session.Logout(ctx); err != nil {
		c.log.Error("logout did not complete", "error", err)
		return Notice{}, err
	}
	return Notice{Kind: NoticeInfo, Text: MsgLogoutSuccess}, nil
}
