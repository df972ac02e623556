// Package calexport writes meetings as an iCalendar feed so they can be
// imported into any calendar application.
package calexport

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/kakai/internal/datex"
	"github.com/dmitrijs2005/kakai/internal/models"

	ics "github.com/arran4/golang-ical"
)

// ProductID identifies kakai as the producer of exported calendars.
const ProductID = "-//kakai//meetings//KO"

type options struct {
	stamp time.Time
}

// Option configures Write.
type Option func(*options)

// WithStamp sets DTSTAMP on every event; the default is the current time.
func WithStamp(t time.Time) Option {
	return func(o *options) { o.stamp = t }
}

// Write serializes meetings as all-day events in loc. DTEND is exclusive:
// the day after the end date, or after the start date for single-day plans.
func Write(w io.Writer, meetings []models.Meeting, loc *time.Location, opts ...Option) error {
	o := options{stamp: time.Now()}
	for _, opt := range opts {
		opt(&o)
	}

	cal := ics.NewCalendar()
	cal.SetProductId(ProductID)
	cal.SetMethod(ics.MethodPublish)

	for _, m := range meetings {
		start := datex.StartOfDay(m.StartDate, loc)
		last := start
		if m.EndDate != nil && !m.EndDate.Before(m.StartDate) {
			last = datex.StartOfDay(*m.EndDate, loc)
		}

		ev := cal.AddEvent(m.ID)
		ev.SetDtStampTime(o.stamp.UTC())
		ev.SetSummary(m.Title)
		ev.SetAllDayStartAt(start)
		ev.SetAllDayEndAt(last.AddDate(0, 0, 1))
		if len(m.Memos) > 0 {
			ev.SetDescription(strings.Join(m.Memos, "\n"))
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	return nil
}
