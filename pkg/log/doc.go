/*
Package log provides structured logging for cephkey using zerolog.

The package wraps the zerolog library to provide JSON-structured
logging with component-specific child loggers and configurable log
levels. Logs go to stderr by default: stdout is reserved for the run
report.

# Usage

Initializing the logger:

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
	})

Component loggers:

	reconLog := log.WithComponent("reconcile")
	reconLog.Debug().Str("option", "mon_allow_pool_delete").Msg("looking up current value")

Structured fields:

	log.Logger.Error().
		Err(err).
		Str("cmd", cmd.String()).
		Msg("command failed")
*/
package log
