// Package logging builds the slog logger shared by the CLI, the HTTP server
// and the scheduling policies.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const service = "os-scheduler"

// Formats lists the accepted values of log.format.
var Formats = []string{"text", "json"}

// New returns a logger that tags every record with the service name. Unknown
// levels and formats are errors, so a typo in config.yaml or on the command
// line does not silently change what gets logged.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("service", service), nil
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func ValidateFormat(format string) error {
	for _, f := range Formats {
		if strings.EqualFold(format, f) {
			return nil
		}
	}
	return fmt.Errorf("unknown log format %q, want one of %s", format, strings.Join(Formats, ", "))
}
