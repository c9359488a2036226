// Package logging создает структурированный логгер сервиса.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New создает JSON логгер в stdout с заданным уровнем
func New(level string) *slog.Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter создает JSON логгер, пишущий в w
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ParseLevel переводит имя уровня в slog.Level. Неизвестное имя дает info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
