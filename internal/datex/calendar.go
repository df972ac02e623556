package datex

import (
	"fmt"
	"time"
)

// WeekdayLabels are the column headers of a Sunday-first month grid.
var WeekdayLabels = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// DayCell is a single day of a MonthGrid. A zero Day marks a padding cell.
type DayCell struct {
	Day     int
	Date    time.Time
	InRange bool
	IsStart bool
	IsEnd   bool
}

// MonthGrid is the layout of the month containing a meeting's start date,
// with the meeting's days flagged.
type MonthGrid struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Days          []DayCell
}

// NewMonthGrid lays out the month of start in loc. Days between start and
// end (inclusive, compared by calendar day) are flagged InRange; without an
// end only the start day is.
func NewMonthGrid(start time.Time, end *time.Time, loc *time.Location) MonthGrid {
	loc = location(loc)
	y, m, _ := start.In(loc).Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	n := time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()

	g := MonthGrid{
		Year:          y,
		Month:         m,
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]DayCell, 0, n),
	}

	for d := 1; d <= n; d++ {
		date := time.Date(y, m, d, 0, 0, 0, 0, loc)
		cell := DayCell{Day: d, Date: date, IsStart: SameDay(date, start, loc)}
		if end != nil {
			cell.IsEnd = SameDay(date, *end, loc)
			cell.InRange = DayDiff(start, date, loc) >= 0 && DayDiff(date, *end, loc) >= 0
		} else {
			cell.InRange = cell.IsStart
		}
		g.Days = append(g.Days, cell)
	}
	return g
}

// Header returns the Korean month title, e.g. "2025년 3월".
func (g MonthGrid) Header() string {
	return fmt.Sprintf("%d년 %d월", g.Year, int(g.Month))
}

// Weeks splits the grid into rows of seven cells, padding the first and last
// rows with zero cells.
func (g MonthGrid) Weeks() [][7]DayCell {
	var weeks [][7]DayCell
	var row [7]DayCell
	col := g.LeadingBlanks
	for _, c := range g.Days {
		row[col] = c
		col++
		if col == 7 {
			weeks = append(weeks, row)
			row = [7]DayCell{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, row)
	}
	return weeks
}
