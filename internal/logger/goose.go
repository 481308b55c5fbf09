package logger

import (
	"fmt"
	"strings"
)

// GooseLogger adapts *Logger to the logger interface expected by goose
// (Printf and Fatalf).
type GooseLogger struct {
	l *Logger
}

// NewGooseLogger returns a goose-compatible logger writing through l.
func NewGooseLogger(l *Logger) *GooseLogger {
	return &GooseLogger{l: l}
}

func (g *GooseLogger) Printf(format string, v ...any) {
	g.l.Info().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level and panics instead of exiting, so that the
// caller's deferred cleanup still runs.
func (g *GooseLogger) Fatalf(format string, v ...any) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	g.l.Error().Str("component", "goose").Msg(msg)
	panic(msg)
}
