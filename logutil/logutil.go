// logutil.go - slog-Setup mit zusaetzlichem TRACE-Level
//
// Dieses Modul enthaelt:
// - LevelTrace: Log-Level unterhalb von DEBUG
// - NewLogger: Text-Handler mit kurzen Source-Pfaden
// - Trace: Convenience-Funktion fuer Trace-Logs
package logutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
)

// LevelTrace liegt eine Stufe unter slog.LevelDebug
const LevelTrace slog.Level = -8

// NewLogger erstellt einen Text-Logger fuer das gegebene Level
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				if level, ok := attr.Value.Any().(slog.Level); ok && level == LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			return attr
		},
	}))
}

// Trace loggt auf LevelTrace ueber den Default-Logger
func Trace(msg string, args ...any) {
	slog.Log(context.TODO(), LevelTrace, msg, args...)
}
