package widget

import (
	"context"
	"time"

	"github.com/dmitrijs2005/kakai/internal/logging"
	"github.com/dmitrijs2005/kakai/internal/repositories/kv"
)

// ReloadSignal is the app-side notifier: each call stamps the reload key
// with the current time so a running widget picks up the change.
type ReloadSignal struct {
	repo   kv.Repository
	logger logging.Logger
	now    func() time.Time
}

func NewReloadSignal(repo kv.Repository, logger logging.Logger) *ReloadSignal {
	return &ReloadSignal{
		repo:   repo,
		logger: logger.With("component", "widget_reload"),
		now:    time.Now,
	}
}

// NotifyDataChanged is best effort; failures are only logged.
func (s *ReloadSignal) NotifyDataChanged(ctx context.Context) {
	if err := s.repo.Set(ctx, kv.KeyWidgetReload, kv.EncodeTime(s.now())); err != nil {
		s.logger.Warn(ctx, "failed to request widget reload", "err", err)
	}
}
