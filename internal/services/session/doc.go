// Package session resolves and drives the LoggedOut/LoggedIn state.
//
// It restores the stored phone number at startup, gates logins through the
// ten-digit validator, writes the canonical form via the persistence
// gateway, and deletes it on logout. State only changes after storage
// confirms the operation.
package session
