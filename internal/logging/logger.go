// Package logging provides the structured logger used throughout the
// detection pipeline, adapted from the teacher application's zerolog
// wrapper to a component-tagged interface independent of the zerolog
// package itself.
package logging

import (
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog"
)

// Logger is the structured logging contract consumed by the pipeline
// and strategy runner. Implementations must be safe for concurrent use.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ZerologAdapter backs Logger with github.com/rs/zerolog.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// New builds a ZerologAdapter writing to writer at the given level.
func New(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

// NewConsole builds a ZerologAdapter writing human-readable output to stderr.
func NewConsole(level zerolog.Level) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
	return New(consoleWriter, level)
}

// Nop returns a Logger that discards everything, useful as a default
// when callers do not care about pipeline diagnostics.
func Nop() Logger {
	return New(io.Discard, zerolog.Disabled)
}

// event starts a zerolog event at level, tags it with component, and
// attaches fields in a stable key order so two runs over the same
// fields map produce byte-identical log lines.
func (z *ZerologAdapter) event(level zerolog.Level, component string, fields map[string]interface{}) *zerolog.Event {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ev := z.logger.WithLevel(level).Str("component", component)
	for _, k := range keys {
		ev = ev.Interface(k, fields[k])
	}
	return ev
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	z.event(zerolog.DebugLevel, component, fields).Msg(message)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	z.event(zerolog.InfoLevel, component, fields).Msg(message)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	z.event(zerolog.WarnLevel, component, fields).Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	z.event(zerolog.ErrorLevel, component, fields).Err(err).Msg("operation failed")
}
