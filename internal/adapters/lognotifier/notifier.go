package lognotifier

// Package lognotifier surfaces user-facing notifications through the
// structured logger. It is the headless stand-in for a toast layer.

import (
	"log/slog"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
)

var _ ports.Notifier = (*Notifier)(nil)

// Notifier writes notifications as structured log records.
type Notifier struct {
	logger *slog.Logger
}

// New creates a Notifier backed by the given logger. A nil logger
// falls back to slog.Default().
func New(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{logger: logger.With("component", "notifier")}
}

func (n *Notifier) Success(message string) {
	n.logger.Info("notification", "kind", "success", "message", message)
}

func (n *Notifier) Error(message string) {
	n.logger.Warn("notification", "kind", "error", "message", message)
}
