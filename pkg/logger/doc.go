// Package logger builds structured *slog.Logger instances for the assertion
// tooling and provides attribute constructors that keep key names consistent
// wherever notifications are logged.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "assertcheck"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.WarnContext(ctx, "assertion failed",
//	    logger.NotificationCode(string(n.Code)),
//	    logger.NotificationMessage(n.Message),
//	)
//
// New defaults to JSON output at INFO level on stdout. Development
// environments switch to text output at DEBUG level.
//
// Registered context extractors run on every Handle call, so values stored
// in the context at logging time end up on the record.
package logger
