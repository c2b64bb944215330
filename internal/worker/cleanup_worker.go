package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/telmart/console_api/internal/repository"
)

// CleanupWorker periodically removes expired drafts and login sessions
// from Postgres. Redis entries expire on their own via TTL.
type CleanupWorker struct {
	drafts   *repository.DraftRepository
	sessions *repository.SessionRepository
	interval time.Duration
}

// NewCleanupWorker constructs a CleanupWorker.
func NewCleanupWorker(drafts *repository.DraftRepository, sessions *repository.SessionRepository, interval time.Duration) *CleanupWorker {
	return &CleanupWorker{
		drafts:   drafts,
		sessions: sessions,
		interval: interval,
	}
}

// Start begins the periodic cleanup loop and listens for context cancellation.
func (w *CleanupWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting cleanup worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Cleanup worker stopped")
			return
		}
	}
}

func (w *CleanupWorker) run(ctx context.Context) {
	draftCount, err := w.drafts.DeleteExpired(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to delete expired drafts")
	}

	sessionCount, err := w.sessions.DeleteExpired(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to delete expired sessions")
	}

	if draftCount > 0 || sessionCount > 0 {
		log.Info().
			Int64("drafts", draftCount).
			Int64("sessions", sessionCount).
			Msg("Cleanup completed")
	}
}
