// Package logging provides structured logging for custsearch.
//
// Interactive runs cannot write to the terminal while the search view owns
// it, so the TUI logs JSON lines to {log dir}/custsearch.log through a
// size-rotated [RotatingWriter]. Non-interactive commands log human-readable
// lines to stderr via [NewConsole].
//
// # Basic Usage
//
//	logger, err := logging.NewLoggerWithRotation(dir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	runLogger := logger.WithRun(runID).WithSource("customers.json")
//	runLogger.Info("dataset loaded", "records", 1200)
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"dataset loaded","run_id":"...","source":"customers.json","records":1200}
//
// # Rotation
//
// When the active file would grow past MaxSizeMB it is renamed to
// custsearch.log.1, older backups shift up, and anything past MaxBackups is
// removed. With Compress set, backups are gzipped in the background and
// [RotatingWriter.Close] waits for them.
//
// All types in this package are safe for concurrent use. Child loggers share
// the parent's writer, so only the root logger should be closed.
package logging
