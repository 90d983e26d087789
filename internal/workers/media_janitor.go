package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/socialix/internal/config"
	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/store"
)

// MediaJanitor destroys media objects whose immediate destruction failed.
// Each enqueued handle is retried once per interval until it succeeds or
// maxAttempts sweeps have failed, after which it is dropped with an error log.
type MediaJanitor struct {
	media       store.MediaStorage
	interval    time.Duration
	maxAttempts int
	logger      *logger.Logger

	mu      sync.Mutex
	pending map[string]int
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewMediaJanitor(media store.MediaStorage, cfg config.Workers, log *logger.Logger) *MediaJanitor {
	interval := cfg.MediaCleanupInterval
	if interval <= 0 {
		interval = config.DefaultMediaCleanupInterval
	}
	maxAttempts := cfg.MediaCleanupMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = config.DefaultMediaCleanupAttempts
	}

	return &MediaJanitor{
		media:       media,
		interval:    interval,
		maxAttempts: maxAttempts,
		logger:      log.GetChildLogger(),
		pending:     make(map[string]int),
	}
}

// Enqueue schedules publicID for destruction. Empty handles are ignored and
// a handle already pending keeps its attempt count.
func (j *MediaJanitor) Enqueue(publicID string) {
	if publicID == "" {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if _, ok := j.pending[publicID]; !ok {
		j.pending[publicID] = 0
	}
}

// Pending returns the number of handles waiting for destruction.
func (j *MediaJanitor) Pending() int {
	j.mu.Lock()
	defer j.mu.Unlock()

	return len(j.pending)
}

// Run starts the sweep loop. A running loop is stopped first.
func (j *MediaJanitor) Run(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sweep(jobCtx)
			}
		}
	}()
}

// Stop cancels the sweep loop and waits for it to exit. Pending handles are
// kept. Safe to call when the loop is not running.
func (j *MediaJanitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// sweep makes one destruction attempt per pending handle.
func (j *MediaJanitor) sweep(ctx context.Context) {
	j.mu.Lock()
	ids := make([]string, 0, len(j.pending))
	for id := range j.pending {
		ids = append(ids, id)
	}
	j.mu.Unlock()

	for _, id := range ids {
		if ctx.Err() != nil {
			return
		}

		err := j.media.Destroy(ctx, id)

		j.mu.Lock()
		switch {
		case err == nil:
			delete(j.pending, id)
			j.logger.Info().Str("public_id", id).Msg("orphaned media destroyed")
		default:
			j.pending[id]++
			if j.pending[id] >= j.maxAttempts {
				delete(j.pending, id)
				j.logger.Error().Err(err).Str("public_id", id).Int("attempts", j.maxAttempts).Msg("giving up on orphaned media")
			} else {
				j.logger.Warn().Err(err).Str("public_id", id).Int("attempt", j.pending[id]).Msg("orphaned media destroy failed")
			}
		}
		j.mu.Unlock()
	}
}
