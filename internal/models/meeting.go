// Package models defines the couple profile, meeting records and the reduced
// meeting projection shared with the widget.
package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/dmitrijs2005/kakai/internal/datex"
)

// LegacyMemoSeparator joined plan notes inside a single memo string in the
// first storage format. It is only understood when decoding.
const LegacyMemoSeparator = "|||PLAN_SEPARATOR|||"

// Meeting is a planned date, possibly spanning several days.
type Meeting struct {
	// ID is a unique identifier generated at creation and stable across updates.
	ID string `json:"id"`

	Title string `json:"title"`

	// StartDate is the (first) day of the meeting.
	StartDate time.Time `json:"startDate"`

	// EndDate is the last day of a multi-day meeting; nil for single-day plans.
	EndDate *time.Time `json:"endDate,omitempty"`

	// Memos is the append-only history of plan notes, oldest first.
	Memos []string `json:"memos,omitempty"`

	// PhotoFilename names an image in shared storage; empty when no photo.
	PhotoFilename string `json:"photoFilename,omitempty"`

	IsCompleted bool `json:"isCompleted"`
}

// Duration returns the stay length; false when the meeting has no end date.
func (m Meeting) Duration(loc *time.Location) (datex.Duration, bool) {
	return datex.ComputeDuration(m.StartDate, m.EndDate, loc)
}

// DurationText returns e.g. "2박 3일"; false when the meeting has no end date.
func (m Meeting) DurationText(loc *time.Location) (string, bool) {
	d, ok := m.Duration(loc)
	if !ok {
		return "", false
	}
	return d.Text(), true
}

// Clone returns a deep copy so callers cannot alias store state.
func (m Meeting) Clone() Meeting {
	c := m
	if m.EndDate != nil {
		end := *m.EndDate
		c.EndDate = &end
	}
	if m.Memos != nil {
		c.Memos = append([]string(nil), m.Memos...)
	}
	return c
}

// UnmarshalJSON also accepts the legacy single "memo" field, splitting it on
// LegacyMemoSeparator.
func (m *Meeting) UnmarshalJSON(b []byte) error {
	type plain Meeting
	var aux struct {
		plain
		Memo *string `json:"memo"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*m = Meeting(aux.plain)
	if len(m.Memos) == 0 && aux.Memo != nil {
		m.Memos = SplitLegacyMemo(*aux.Memo)
	}
	return nil
}

// SplitLegacyMemo turns a separator-joined memo into its entries, dropping
// empty ones.
func SplitLegacyMemo(memo string) []string {
	var out []string
	for _, part := range strings.Split(memo, LegacyMemoSeparator) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
