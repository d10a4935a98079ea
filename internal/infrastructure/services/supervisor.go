package services

import (
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

// NewSupervisor returns the root supervisor with its events logged through
// logger.
func NewSupervisor(name string, logger *slog.Logger, shutdownTimeout time.Duration) *suture.Supervisor {
	handler := &sutureslog.Handler{Logger: logger}

	return suture.New(name, suture.Spec{
		EventHook:        handler.MustHook(),
		FailureThreshold: 5,
		FailureDecay:     30,
		FailureBackoff:   15 * time.Second,
		Timeout:          shutdownTimeout,
	})
}
