package models

import (
	"time"

	"github.com/dmitrijs2005/kakai/internal/datex"
)

// MeetingWidgetData is the reduced projection of the upcoming meeting that
// the widget reads from shared storage.
type MeetingWidgetData struct {
	Title     string     `json:"title"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// NewMeetingWidgetData projects m onto the widget fields.
func NewMeetingWidgetData(m Meeting) MeetingWidgetData {
	c := m.Clone()
	return MeetingWidgetData{Title: c.Title, StartDate: c.StartDate, EndDate: c.EndDate}
}

func (w MeetingWidgetData) DurationText(loc *time.Location) (string, bool) {
	d, ok := datex.ComputeDuration(w.StartDate, w.EndDate, loc)
	if !ok {
		return "", false
	}
	return d.Text(), true
}
