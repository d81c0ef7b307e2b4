package logger

import (
	"io"
	"log/slog"
	"os"
)

// Init installs a JSON slog logger as the process default. The terminal
// client writes to a file so log lines do not fight the tview screen.
func Init(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

// InitFile opens (or creates) path and logs there. Falls back to stderr.
func InitFile(path string) *os.File {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		Init(os.Stderr)
		return nil
	}
	Init(f)
	return f
}
