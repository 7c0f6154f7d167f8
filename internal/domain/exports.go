package domain

import (
	interfaces "phonelogin/internal/domain/interfaces"
	types "phonelogin/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	PhoneNumber    = types.PhoneNumber
	Key            = types.Key
	InstallationID = types.InstallationID
	Status         = types.Status
	State          = types.State
	Lookup         = types.Lookup
	Done           = types.Done
)

// Result is the generic outcome type returned by the persistence gateway.
type Result[T any] = types.Result[T]

// Status values re-exported for callers that only import domain.
const (
	StatusLoggedOut = types.StatusLoggedOut
	StatusLoggedIn  = types.StatusLoggedIn
)

// LoggedOutState returns the empty session state.
func LoggedOutState() State { return types.LoggedOutState() }

// LoggedInState returns a state holding p.
func LoggedInState(p PhoneNumber) State { return types.LoggedInState(p) }

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyValueStore      = interfaces.KeyValueStore
	PersistenceGateway = interfaces.PersistenceGateway
	SessionService     = interfaces.SessionService
)
