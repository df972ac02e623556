package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/kakai/internal/datex"
)

// Profile describes the couple.
type Profile struct {
	UserName    string
	PartnerName string

	// RelationshipStartDate is compared at day granularity.
	RelationshipStartDate time.Time
}

// CoupleNames renders "{user} & {partner}".
func (p Profile) CoupleNames() string {
	return p.UserName + " & " + p.PartnerName
}

// DaysTogether is the number of calendar days from the relationship start
// to now. It is not clamped, so a future start date gives a negative value.
func (p Profile) DaysTogether(now time.Time, loc *time.Location) int {
	return datex.DayDiff(p.RelationshipStartDate, now, loc)
}

// ParseCoupleNames splits a combined "A & B" input. Without a second name
// the whole trimmed input is the user name.
func ParseCoupleNames(s string) (userName, partnerName string) {
	parts := strings.Split(s, "&")
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(s), ""
}
