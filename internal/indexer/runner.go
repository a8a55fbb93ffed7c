package indexer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hamsterpocket/internal/model"
	"hamsterpocket/internal/storage"
)

// RunConfig holds runtime settings for one event stream sync.
type RunConfig struct {
	EventName         model.EventName
	StartSequence     uint64
	PageSize          uint64
	CheckpointPath    string
	CheckpointEnabled bool
	MaxRetries        int
	RetryBackoff      time.Duration
}

// Runner drains an event stream window by window and writes the decoded
// events to storage.
type Runner struct {
	cfg        RunConfig
	indexer    *Indexer
	storage    storage.Store
	logger     *zap.Logger
	checkpoint *CheckpointStore
}

// NewRunner builds a Runner with its dependencies.
func NewRunner(cfg RunConfig, ix *Indexer, store storage.Store, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:        cfg,
		indexer:    ix,
		storage:    store,
		logger:     logger,
		checkpoint: NewCheckpointStore(cfg.CheckpointPath, cfg.CheckpointEnabled),
	}
}

// Run executes the sync loop until the stream is drained.
func (r *Runner) Run(ctx context.Context) error {
	if r.indexer == nil {
		return fmt.Errorf("indexer is nil")
	}
	if r.storage == nil {
		return fmt.Errorf("storage is nil")
	}
	if r.cfg.PageSize == 0 {
		return fmt.Errorf("page size must be greater than zero")
	}
	if r.cfg.EventName == "" {
		return fmt.Errorf("event name is required")
	}

	start := r.cfg.StartSequence
	if r.checkpoint != nil {
		cp, ok, err := r.checkpoint.Load()
		if err != nil {
			return err
		}
		if ok && cp.EventName == string(r.cfg.EventName) && cp.NextSequence > start {
			start = cp.NextSequence
			r.logger.Info("resume from checkpoint", zap.Uint64("next_sequence", start))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		events, err := r.fetchWithRetry(ctx, start, r.cfg.PageSize)
		if err != nil {
			return fmt.Errorf("fetch events: %w", err)
		}
		if len(events) == 0 {
			r.logger.Info("stream drained", zap.Uint64("next_sequence", start))
			return nil
		}

		if err := r.storage.PutEventBatch(ctx, events); err != nil {
			return fmt.Errorf("store events: %w", err)
		}

		last := events[len(events)-1].SequenceNumber
		start = last + 1

		if r.checkpoint != nil {
			if err := r.checkpoint.Save(string(r.cfg.EventName), start); err != nil {
				return err
			}
		}

		r.logger.Info("page complete",
			zap.String("event", string(r.cfg.EventName)),
			zap.Int("events", len(events)),
			zap.Uint64("next_sequence", start),
		)

		if uint64(len(events)) < r.cfg.PageSize {
			return nil
		}
	}
}

func (r *Runner) fetchWithRetry(ctx context.Context, start, limit uint64) ([]model.PocketEvent, error) {
	maxRetries := r.cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	delay := r.cfg.RetryBackoff
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}

	for attempt := 0; ; attempt++ {
		events, err := r.indexer.Fetch(ctx, r.cfg.EventName, start, limit)
		if err == nil {
			return events, nil
		}
		if attempt >= maxRetries {
			return nil, err
		}
		r.logger.Warn("fetch failed, retrying",
			zap.Error(err),
			zap.Uint64("start", start),
			zap.Int("attempt", attempt+1),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}
