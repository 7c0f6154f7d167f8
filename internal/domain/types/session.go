package types

// Status is the login status of the local device.
type Status int

const (
	// StatusLoggedOut means no session is stored.
	StatusLoggedOut Status = iota
	// StatusLoggedIn means a phone number is stored under the session key.
	StatusLoggedIn
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusLoggedOut:
		return "logged-out"
	case StatusLoggedIn:
		return "logged-in"
	default:
		return "unknown"
	}
}

// State is the session state passed through the orchestration layer.
// The zero value is logged out.
type State struct {
	Status Status      `json:"status"`
	Value  PhoneNumber `json:"value,omitempty"`
}

// LoggedIn reports whether a session is present.
func (s State) LoggedIn() bool { return s.Status == StatusLoggedIn }

// LoggedOutState returns the empty session state.
func LoggedOutState() State { return State{Status: StatusLoggedOut} }

// LoggedInState returns a state holding the given phone number.
func LoggedInState(p PhoneNumber) State { return State{Status: StatusLoggedIn, Value: p} }
