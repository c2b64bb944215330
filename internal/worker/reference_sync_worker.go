package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/telmart/console_api/internal/cache"
	"github.com/telmart/console_api/pkg/catalog"
)

// ReferenceSyncWorker periodically warms the SKU family reference cache
// so the picker opens without a backend round trip. Reference data is
// not seller-scoped; the request is authenticated by the console key
// signature alone.
type ReferenceSyncWorker struct {
	catalogClient  *catalog.Client
	referenceCache *cache.ReferenceCache
	interval       time.Duration
}

// NewReferenceSyncWorker constructs a ReferenceSyncWorker.
func NewReferenceSyncWorker(catalogClient *catalog.Client, referenceCache *cache.ReferenceCache, interval time.Duration) *ReferenceSyncWorker {
	return &ReferenceSyncWorker{
		catalogClient:  catalogClient,
		referenceCache: referenceCache,
		interval:       interval,
	}
}

// Start begins the periodic warmup loop and listens for context cancellation.
func (w *ReferenceSyncWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting reference sync worker")

	// Run immediately on start
	w.run(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Reference sync worker stopped")
			return
		}
	}
}

func (w *ReferenceSyncWorker) run(ctx context.Context) {
	start := time.Now()

	families, err := w.catalogClient.ListSkuFamilies(ctx, "", "")
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch SKU families")
		return
	}
	if err := w.referenceCache.SetSkuFamilies(ctx, families); err != nil {
		log.Error().Err(err).Msg("Failed to cache SKU families")
		return
	}

	log.Info().Int("count", len(families)).Dur("duration", time.Since(start)).Msg("Reference warmup completed")
}
