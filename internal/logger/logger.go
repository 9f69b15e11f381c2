// Package logger holds the process-wide debug logger. Output meant for
// users goes through internal/terminal; this logger only carries
// diagnostics enabled by --verbose.
package logger

import "go.uber.org/zap"

var log = zap.NewNop().Sugar()

// Init switches the logger to a development-config zap logger writing to
// stderr. Without it, logging is a no-op.
func Init(verbose bool) {
	if !verbose {
		return
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return
	}
	log = l.Sugar()
}

// L returns the current debug logger.
func L() *zap.SugaredLogger {
	return log
}
