package widget

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Family is a widget layout.
type Family int

const (
	// FamilySmall shows the countdown to the next meeting, or the days
	// together when nothing is planned.
	FamilySmall Family = iota
	// FamilyMedium shows both counters side by side.
	FamilyMedium
	// FamilyMeeting only shows the countdown.
	FamilyMeeting
)

func (f Family) String() string {
	switch f {
	case FamilySmall:
		return "small"
	case FamilyMedium:
		return "medium"
	case FamilyMeeting:
		return "meeting"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// ParseFamily accepts the names returned by Family.String.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small", "":
		return FamilySmall, nil
	case "medium":
		return FamilyMedium, nil
	case "meeting":
		return FamilyMeeting, nil
	}
	return 0, fmt.Errorf("unknown widget family %q", s)
}

// Render writes e as plain text in the given layout.
func Render(w io.Writer, e Entry, f Family, loc *time.Location) error {
	var b strings.Builder

	switch f {
	case FamilyMedium:
		fmt.Fprintf(&b, "함께한 시간 %d일 | 다음 만남까지 %s\n", e.DaysTogether, countdown(e))
		if e.Meeting != nil {
			b.WriteString(e.Meeting.Title)
			if d, ok := e.Meeting.DurationText(loc); ok {
				fmt.Fprintf(&b, " (%s)", d)
			}
			b.WriteByte('\n')
		}
	case FamilyMeeting:
		b.WriteString("다음 만남까지\n")
		if e.DaysUntilNextMeeting != nil {
			fmt.Fprintf(&b, "%d\n일 남음\n", *e.DaysUntilNextMeeting)
		} else {
			b.WriteString("미정\n날짜를 설정해주세요\n")
		}
	default:
		if e.DaysUntilNextMeeting != nil {
			fmt.Fprintf(&b, "만남까지\n%d\n일 남음\n", *e.DaysUntilNextMeeting)
		} else {
			fmt.Fprintf(&b, "함께한 시간\n%d\n일\n", e.DaysTogether)
		}
	}
	b.WriteString(e.CoupleNames)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func countdown(e Entry) string {
	if e.DaysUntilNextMeeting == nil {
		return "미정"
	}
	return fmt.Sprintf("%d일 남음", *e.DaysUntilNextMeeting)
}
