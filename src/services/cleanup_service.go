package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sitevoice/complaints-server/src/logging"
)

// CleanupService periodically removes expired admin sessions
type CleanupService struct {
	sessions *SessionService
	enabled  bool
	interval time.Duration
	done     chan bool
	log      zerolog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(sessions *SessionService, enabled bool) *CleanupService {
	return &CleanupService{
		sessions: sessions,
		enabled:  enabled,
		interval: time.Hour,
		done:     make(chan bool),
		log:      logging.NewLogger("cleanup"),
	}
}

// Start starts the cleanup loop in a goroutine
func (cs *CleanupService) Start(ctx context.Context) {
	if !cs.enabled {
		cs.log.Info().Msg("session cleanup disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(cs.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-cs.done:
				return
			case <-ticker.C:
				cs.cleanup(ctx)
			}
		}
	}()

	cs.log.Info().Dur("interval", cs.interval).Msg("session cleanup started")
}

// Stop stops the cleanup loop
func (cs *CleanupService) Stop() {
	close(cs.done)
}

func (cs *CleanupService) cleanup(ctx context.Context) {
	removed, err := cs.sessions.DeleteExpired(ctx)
	if err != nil {
		cs.log.Error().Err(err).Msg("session cleanup failed")
		return
	}
	if removed > 0 {
		cs.log.Info().Int64("removed", removed).Msg("expired sessions deleted")
	}
}
