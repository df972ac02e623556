package widget

import (
	"context"
	"time"

	"github.com/dmitrijs2005/kakai/internal/datex"
	"github.com/dmitrijs2005/kakai/internal/logging"
	"github.com/dmitrijs2005/kakai/internal/models"
	"github.com/dmitrijs2005/kakai/internal/repositories/kv"
)

// DefaultCoupleNames is shown until at least one name has been stored.
const DefaultCoupleNames = "커플 이름"

// Entry is one rendered state of the widget.
type Entry struct {
	Date         time.Time
	DaysTogether int

	// DaysUntilNextMeeting is nil when no meeting is planned.
	DaysUntilNextMeeting *int

	CoupleNames string

	// Meeting is the projection of the upcoming meeting, if any.
	Meeting *models.MeetingWidgetData
}

// Option configures a Provider.
type Option func(*Provider)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

// Provider computes widget entries from shared storage.
type Provider struct {
	repo   kv.Repository
	logger logging.Logger
	loc    *time.Location
	now    func() time.Time
}

func NewProvider(repo kv.Repository, logger logging.Logger, loc *time.Location, opts ...Option) *Provider {
	p := &Provider{
		repo:   repo,
		logger: logger.With("component", "widget_provider"),
		loc:    loc,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Placeholder is the sample entry shown before real data is available.
func (p *Provider) Placeholder() Entry {
	days := 7
	return Entry{
		Date:                 p.now(),
		DaysTogether:         100,
		DaysUntilNextMeeting: &days,
		CoupleNames:          "지민 & 수지",
	}
}

// Snapshot reads the current entry. Unreadable or malformed values fall
// back to their defaults.
func (p *Provider) Snapshot(ctx context.Context) Entry {
	e, _ := p.read(ctx)
	return e
}

// read is Snapshot that also returns the first storage read failure.
func (p *Provider) read(ctx context.Context) (Entry, error) {
	var readErr error
	note := func(err error) {
		if readErr == nil {
			readErr = err
		}
	}

	now := p.now()
	e := Entry{Date: now, CoupleNames: DefaultCoupleNames}

	user, err := p.readString(ctx, kv.KeyUserName)
	note(err)
	partner, err := p.readString(ctx, kv.KeyPartnerName)
	note(err)
	if user != "" || partner != "" {
		e.CoupleNames = models.Profile{UserName: user, PartnerName: partner}.CoupleNames()
	}

	if start, ok := p.readTime(ctx, kv.KeyStartDate); ok && !start.IsZero() {
		e.DaysTogether = datex.DayDiff(start, now, p.loc)
	}

	// A stale hint from a meeting that already passed counts as none.
	if next, ok := p.readTime(ctx, kv.KeyNextMeeting); ok {
		if d := datex.DayDiff(now, next, p.loc); d >= 0 {
			e.DaysUntilNextMeeting = &d
		}
	}

	raw, err := p.repo.Get(ctx, kv.KeyWidgetMeetingData)
	switch {
	case err != nil:
		p.logger.Warn(ctx, "failed to read widget data", "key", kv.KeyWidgetMeetingData, "err", err)
		note(err)
	case raw != nil:
		w, err := models.DecodeWidgetData(raw)
		if err != nil {
			p.logger.Warn(ctx, "malformed widget data", "err", err)
			break
		}
		if datex.DayDiff(now, w.StartDate, p.loc) >= 0 {
			e.Meeting = &w
		}
	}

	return e, readErr
}

// Timeline returns the current entry and the time the widget should next
// refresh: the following midnight. err reports a storage read failure; the
// entry is still usable and carries defaults for what could not be read.
func (p *Provider) Timeline(ctx context.Context) (Entry, time.Time, error) {
	e, err := p.read(ctx)
	return e, datex.NextMidnight(e.Date, p.loc), err
}

func (p *Provider) readString(ctx context.Context, key string) (string, error) {
	v, _, err := kv.GetString(ctx, p.repo, key)
	if err != nil {
		p.logger.Warn(ctx, "failed to read widget value", "key", key, "err", err)
	}
	return v, err
}

func (p *Provider) readTime(ctx context.Context, key string) (time.Time, bool) {
	v, ok, err := kv.GetTime(ctx, p.repo, key)
	if err != nil {
		p.logger.Warn(ctx, "failed to read widget value", "key", key, "err", err)
		return time.Time{}, false
	}
	return v, ok
}
