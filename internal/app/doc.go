// Package app wires application dependencies for the CLI and the terminal
// form.
//
// It records the installation id, opens the debug log, picks the device
// store (file-backed or in-memory) and builds the persistence gateway,
// session service and form controller, exposing them via the Wire struct.
package app
