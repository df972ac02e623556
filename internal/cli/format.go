package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/kakai/internal/datex"
	"github.com/dmitrijs2005/kakai/internal/models"
)

// shortIDLen is how much of a meeting id list views print.
const shortIDLen = 8

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

func dDay(days int) string {
	switch {
	case days == 0:
		return "D-Day"
	case days > 0:
		return fmt.Sprintf("D-%d", days)
	default:
		return fmt.Sprintf("D+%d", -days)
	}
}

func formatDates(m models.Meeting, loc *time.Location) string {
	s := m.StartDate.In(loc).Format(datex.DateLayout)
	if m.EndDate != nil && !datex.SameDay(m.StartDate, *m.EndDate, loc) {
		s += " ~ " + m.EndDate.In(loc).Format(datex.DateLayout)
	}
	return s
}

// formatMeeting renders one list line, e.g.
// "[ ] 2025-04-01 ~ 2025-04-03  Jeju (2박 3일)  #1f0c2e7a".
func formatMeeting(m models.Meeting, loc *time.Location) string {
	check := " "
	if m.IsCompleted {
		check = "x"
	}
	title := m.Title
	if d, ok := m.DurationText(loc); ok {
		title += " (" + d + ")"
	}
	return fmt.Sprintf("[%s] %s  %s  #%s", check, formatDates(m, loc), title, shortID(m.ID))
}

// renderMonth draws g as a text calendar. Days of the meeting are starred.
func renderMonth(w io.Writer, g datex.MonthGrid) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", g.Header())
	for _, l := range datex.WeekdayLabels {
		b.WriteString("  " + l)
	}
	b.WriteByte('\n')
	for _, week := range g.Weeks() {
		for _, c := range week {
			switch {
			case c.Day == 0:
				b.WriteString("    ")
			case c.InRange:
				fmt.Fprintf(&b, " *%2d", c.Day)
			default:
				fmt.Fprintf(&b, "  %2d", c.Day)
			}
		}
		b.WriteByte('\n')
	}
	_, _ = io.WriteString(w, b.String())
}
