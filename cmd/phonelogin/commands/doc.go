// Package commands defines the phonelogin CLI and wires dependencies for subcommands.
//
// Commands
//
//   - form           Open the interactive login form (default)
//   - login          Log in with a 10-digit phone number
//   - logout         Remove the stored phone number
//   - status         Show who is logged in
//   - format         Print the display form of a raw number
//   - validate       Check whether a raw number has exactly 10 digits
//   - config init    Write a default config.yaml
//
// # Implementation
//
// The root command loads settings through viper (defaults, config.yaml,
// PHONELOGIN_* environment, flags) and builds the dependency graph (store,
// gateway, session, form controller) before any subcommand runs. Commands
// that never touch storage or settings are marked offline and skip both.
package commands
