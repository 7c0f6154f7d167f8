// Package tui is the interactive terminal form built on bubbletea.
//
// The model keeps no session state of its own: every decision (formatting,
// submit enablement, login and logout) goes through form.Controller, and
// storage calls run inside tea.Cmds so the event loop never blocks.
package tui
