package config

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/m-mizutani/goerr/v2"
)

// ParseLogLevel parses debug, info, warn, error or fatal (case-insensitive).
func ParseLogLevel(level string) (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return log.InfoLevel, goerr.Wrap(err, "invalid log level", goerr.V("level", level))
	}
	return lvl, nil
}

// NewLogger creates the diagnostics logger writing to w.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "planetmoney-dl",
	}), nil
}
