// Package logx builds the logger used by the calc command.
package logx

import (
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/zephyrtronium/calc/internal/config"
)

// New creates a logger writing to w. Verbose settings log at debug level;
// otherwise only warnings and errors are logged.
func New(cfg *config.Config, w io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetLevel(log.WarnLevel)
	if cfg.Verbose {
		l.SetLevel(log.DebugLevel)
	}
	if cfg.LogFormat == config.LogJSON {
		l.SetFormatter(&log.JSONFormatter{})
	} else {
		l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}
	return l
}

// Discard returns a logger that writes nothing.
func Discard() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}
