package widget

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/kakai/internal/logging"
	"github.com/dmitrijs2005/kakai/internal/repositories/kv"
	"github.com/robfig/cron/v3"
)

// DefaultRefreshSpec redraws the widget when the day changes.
const DefaultRefreshSpec = "@midnight"

// RefreshFunc receives every freshly computed entry.
type RefreshFunc func(ctx context.Context, e Entry)

// Scheduler drives widget refreshes: on RefreshSpec, and whenever the reload
// key changes between two polls.
type Scheduler struct {
	provider    *Provider
	repo        kv.Repository
	logger      logging.Logger
	onRefresh   RefreshFunc
	refreshSpec string
	poll        time.Duration
	cron        *cron.Cron

	// refreshMu serializes callbacks; cron runs jobs concurrently.
	refreshMu sync.Mutex
	// loaded is set after the first entry read without storage errors.
	loaded bool

	mu       sync.Mutex
	lastHint []byte
}

// NewScheduler builds a scheduler running in loc. An empty refreshSpec means
// DefaultRefreshSpec; a non-positive poll disables reload polling.
func NewScheduler(provider *Provider, repo kv.Repository, logger logging.Logger, loc *time.Location,
	refreshSpec string, poll time.Duration, onRefresh RefreshFunc) *Scheduler {
	if refreshSpec == "" {
		refreshSpec = DefaultRefreshSpec
	}
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		provider:    provider,
		repo:        repo,
		logger:      logger.With("component", "widget_scheduler"),
		onRefresh:   onRefresh,
		refreshSpec: refreshSpec,
		poll:        poll,
		cron:        cron.New(cron.WithLocation(loc)),
	}
}

// Run renders once, then refreshes on schedule until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.refreshSpec, func() { s.Refresh(ctx) }); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", s.refreshSpec, err)
	}
	if s.poll > 0 {
		spec := "@every " + s.poll.String()
		if _, err := s.cron.AddFunc(spec, func() { s.CheckReload(ctx) }); err != nil {
			return fmt.Errorf("invalid poll interval %s: %w", s.poll, err)
		}
	}

	hint := s.readHint(ctx)
	s.mu.Lock()
	s.lastHint = hint
	s.mu.Unlock()
	s.Refresh(ctx)

	s.cron.Start()
	s.logger.Info(ctx, "widget scheduler started", "refresh", s.refreshSpec, "poll", s.poll.String())

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.logger.Info(context.Background(), "widget scheduler stopped")
	return nil
}

// Refresh computes a new entry and hands it to the refresh callback. Until
// shared storage has been read successfully once, the placeholder is shown
// instead.
func (s *Scheduler) Refresh(ctx context.Context) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	e, next, err := s.provider.Timeline(ctx)
	switch {
	case err == nil:
		s.loaded = true
	case !s.loaded:
		s.logger.Warn(ctx, "shared storage unreadable, showing placeholder", "err", err)
		e = s.provider.Placeholder()
	}
	s.logger.Debug(ctx, "widget refreshed", "next_refresh", next.Format(time.RFC3339))
	if s.onRefresh != nil {
		s.onRefresh(ctx, e)
	}
}

// CheckReload refreshes when the reload key changed since the previous
// check and reports whether it did.
func (s *Scheduler) CheckReload(ctx context.Context) bool {
	hint := s.readHint(ctx)

	s.mu.Lock()
	changed := !bytes.Equal(hint, s.lastHint)
	s.lastHint = hint
	s.mu.Unlock()

	if !changed {
		return false
	}
	s.logger.Debug(ctx, "reload requested", "at", string(hint))
	s.Refresh(ctx)
	return true
}

func (s *Scheduler) readHint(ctx context.Context) []byte {
	v, err := s.repo.Get(ctx, kv.KeyWidgetReload)
	if err != nil {
		s.logger.Warn(ctx, "failed to read reload hint", "err", err)
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.lastHint
	}
	return v
}
