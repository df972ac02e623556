package datex

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/kakai/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seoul = time.FixedZone("KST", 9*60*60)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, seoul)
}

func TestDayDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to time.Time
		want     int
	}{
		{"same day early and late", at(2025, 3, 16, 0, 1), at(2025, 3, 16, 23, 59), 0},
		{"crosses midnight by a minute", at(2025, 3, 16, 23, 59), at(2025, 3, 17, 0, 0), 1},
		{"two days", at(2025, 3, 25, 18, 0), at(2025, 3, 27, 9, 0), 2},
		{"past date is negative", at(2025, 3, 20, 12, 0), at(2025, 3, 10, 12, 0), -10},
		{"across year", at(2024, 12, 31, 12, 0), at(2025, 1, 1, 1, 0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayDiff(tt.from, tt.to, seoul))
		})
	}
}

func TestDayDiff_UsesGivenLocation(t *testing.T) {
	// 2025-03-16 23:30 UTC is already 2025-03-17 in Seoul.
	from := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 16, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, DayDiff(from, to, time.UTC))
	assert.Equal(t, 1, DayDiff(from, to, seoul))
}

func TestDayDiff_LongRanges(t *testing.T) {
	today := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 739902, DayDiff(time.Time{}, today, time.UTC))
	assert.Equal(t, 119355, DayDiff(time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC), today, time.UTC))
	assert.Equal(t, -119355, DayDiff(today, time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC), time.UTC))
}

func TestComputeDuration(t *testing.T) {
	start := at(2025, 3, 25, 10, 0)

	twoDays := at(2025, 3, 27, 8, 0)
	d, ok := ComputeDuration(start, &twoDays, seoul)
	require.True(t, ok)
	assert.Equal(t, Duration{Nights: 2, Days: 3}, d)
	assert.Equal(t, "2박 3일", d.Text())

	same := start
	d, ok = ComputeDuration(start, &same, seoul)
	require.True(t, ok)
	assert.Equal(t, "0박 1일", d.Text())

	before := at(2025, 3, 20, 10, 0)
	d, ok = ComputeDuration(start, &before, seoul)
	require.True(t, ok)
	assert.Equal(t, Duration{Nights: 0, Days: 1}, d)

	_, ok = ComputeDuration(start, nil, seoul)
	assert.False(t, ok)
}

func TestStartOfDayAndNextMidnight(t *testing.T) {
	now := at(2025, 3, 16, 15, 42)
	assert.Equal(t, at(2025, 3, 16, 0, 0), StartOfDay(now, seoul))
	assert.Equal(t, at(2025, 3, 17, 0, 0), NextMidnight(now, seoul))
	assert.Equal(t, at(2025, 3, 17, 0, 0), NextMidnight(at(2025, 3, 16, 0, 0), seoul))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2025-03-16 ", seoul)
	require.NoError(t, err)
	assert.Equal(t, at(2025, 3, 16, 0, 0), got)

	_, err = ParseDate("16/03/2025", seoul)
	require.ErrorIs(t, err, common.ErrInvalidDate)
}

func TestNilLocationMeansLocal(t *testing.T) {
	now := time.Now()
	assert.Equal(t, 0, DayDiff(now, now, nil))
	assert.Equal(t, time.Local, StartOfDay(now, nil).Location())
}
