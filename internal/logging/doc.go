// Package logging provides structured JSON logging for phonelogin.
//
// It wraps log/slog. Loggers write to <dir>/debug.log, or to stderr when no
// directory is given, and carry persistent attributes such as the
// installation id and component name.
//
//	logger, err := logging.NewLogger(filepath.Join(home, "logs"), "INFO")
//	if err != nil {
//		return err
//	}
//	defer logger.Close()
//	logger.WithComponent("session").Info("logged in", "key", "phoneNumber")
package logging
