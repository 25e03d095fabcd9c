// Package service projects the medicine catalog into the search index
//
// One reader walks the catalog by id (keyset pagination) and hands pages to a
// small pool of writers. Every document in a run carries the same indexed_at
// so a rerun replaces rows instead of duplicating them
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	perr "pillbox/internal/platform/errors"
	"pillbox/internal/platform/logger"
	"pillbox/internal/platform/retry"
	"pillbox/internal/services/indexer/domain"
)

// Config tunes the pipeline
type Config struct {
	Workers  int // writers; <=0 -> 1
	PageSize int // rows per catalog page and per insert; <=0 -> 5000

	// Attempts bounds catalog reads that fail with a retryable error; <=0 -> 3
	Attempts  int
	RetryBase time.Duration // first backoff, doubled per attempt; <=0 -> 200ms
}

// Service implements domain.RunnerPort
type Service struct {
	src  domain.Source
	sink domain.Sink
	cfg  Config
	now  func() time.Time
}

// New constructs the indexer service
func New(src domain.Source, sink domain.Sink, cfg Config) *Service {
	if src == nil {
		panic("indexer.Service requires a non nil Source")
	}
	if sink == nil {
		panic("indexer.Service requires a non nil Sink")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 5000
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = 3
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = 200 * time.Millisecond
	}
	return &Service{src: src, sink: sink, cfg: cfg, now: time.Now}
}

var _ domain.RunnerPort = (*Service)(nil)

// Reindex copies the whole catalog; the first error cancels the run
func (s *Service) Reindex(ctx context.Context, opt domain.RunOptions) (domain.Stats, error) {
	log := logger.Named("indexer")
	start := s.now()
	at := start.UTC().Truncate(time.Second)

	if !opt.DryRun {
		if err := s.sink.EnsureTable(ctx); err != nil {
			return domain.Stats{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "ensure search table")
		}
		if opt.Truncate {
			if err := s.sink.Truncate(ctx); err != nil {
				return domain.Stats{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "truncate search table")
			}
		}
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	pages := make(chan []domain.Doc, s.cfg.Workers)
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		st   domain.Stats
		fail = func(err error) { cancel(err) }
	)

	for range s.cfg.Workers {
		wg.Go(func() {
			for docs := range pages {
				if !opt.DryRun {
					if err := s.sink.Write(ctx, docs, at); err != nil {
						fail(perr.Wrap(err, perr.ErrorCodeUnavailable, "write search batch"))
						continue
					}
				}
				mu.Lock()
				st.Pages++
				st.Docs += len(docs)
				mu.Unlock()
			}
		})
	}

	var after int64
read:
	for {
		docs, err := s.readPage(ctx, after)
		if err != nil {
			fail(perr.FromPostgres(err, "read catalog page"))
			break
		}
		if len(docs) == 0 {
			break
		}
		after = docs[len(docs)-1].ID
		select {
		case pages <- docs:
		case <-ctx.Done():
			break read
		}
		log.Debug().Int64("after_id", after).Int("rows", len(docs)).Msg("catalog page queued")
		if len(docs) < s.cfg.PageSize {
			break
		}
	}
	close(pages)
	wg.Wait()

	st.LastID = after
	st.Elapsed = s.now().Sub(start)
	if err := context.Cause(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Int("docs", st.Docs).Msg("reindex failed")
		return st, err
	}
	if err := ctx.Err(); err != nil {
		return st, err
	}
	log.Info().
		Int("pages", st.Pages).
		Int("docs", st.Docs).
		Int64("last_id", st.LastID).
		Bool("dry_run", opt.DryRun).
		Dur("elapsed", st.Elapsed).
		Msg("reindex done")
	return st, nil
}

// readPage reads one catalog page, backing off with jitter while the error is retryable
func (s *Service) readPage(ctx context.Context, after int64) ([]domain.Doc, error) {
	var docs []domain.Doc
	attempt := 0
	policy := retry.Policy{Attempts: s.cfg.Attempts, Base: s.cfg.RetryBase, Jitter: 0.5}
	err := retry.Do(ctx, policy, func() error {
		attempt++
		var err error
		docs, err = s.src.After(ctx, after, s.cfg.PageSize)
		if err != nil && !perr.Retryable(err) {
			return retry.Permanent(err)
		}
		return err
	}, func(err error, wait time.Duration) {
		logger.Named("indexer").Warn().Err(err).Int("attempt", attempt).Int64("after_id", after).Dur("retry_in", wait).Msg("catalog read retry")
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}
