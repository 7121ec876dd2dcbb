// Package logging builds the structured logger shared by the front ends.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at level ("debug", "info", "warn", "error"),
// with every line tagged by prefix.
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}), nil
}

// Session returns a child logger for one connected player.
func Session(parent *log.Logger, user, remote string) *log.Logger {
	return parent.With("user", user, "remote", remote)
}
