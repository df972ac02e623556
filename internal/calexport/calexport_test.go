package calexport

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/kakai/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ics "github.com/arran4/golang-ical"
)

func TestWrite_AllDayEvents(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	end := time.Date(2025, 4, 3, 0, 0, 0, 0, kst)
	meetings := []models.Meeting{
		{
			ID:        "trip",
			Title:     "Jeju",
			StartDate: time.Date(2025, 4, 1, 0, 0, 0, 0, kst),
			EndDate:   &end,
			Memos:     []string{"book flights", "rent a car"},
		},
		{
			ID:        "dinner",
			Title:     "Dinner",
			StartDate: time.Date(2025, 4, 10, 23, 30, 0, 0, kst),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, meetings, kst, WithStamp(time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC))))

	cal, err := ics.ParseCalendar(&buf)
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	prop := func(ev *ics.VEvent, p ics.ComponentProperty) string {
		v := ev.GetProperty(p)
		require.NotNil(t, v, string(p))
		return v.Value
	}

	assert.Equal(t, "trip", prop(events[0], ics.ComponentPropertyUniqueId))
	assert.Equal(t, "Jeju", prop(events[0], ics.ComponentPropertySummary))
	assert.Equal(t, "20250401", prop(events[0], ics.ComponentPropertyDtStart))
	assert.Equal(t, "20250404", prop(events[0], ics.ComponentPropertyDtEnd))
	assert.Contains(t, prop(events[0], ics.ComponentPropertyDescription), "book flights")

	assert.Equal(t, "dinner", prop(events[1], ics.ComponentPropertyUniqueId))
	assert.Equal(t, "20250410", prop(events[1], ics.ComponentPropertyDtStart))
	assert.Equal(t, "20250411", prop(events[1], ics.ComponentPropertyDtEnd))
	assert.Nil(t, events[1].GetProperty(ics.ComponentPropertyDescription))
}

func TestWrite_EndBeforeStartIsSingleDay(t *testing.T) {
	end := time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC)
	meetings := []models.Meeting{{
		ID:        "odd",
		Title:     "odd",
		StartDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, meetings, time.UTC))

	cal, err := ics.ParseCalendar(&buf)
	require.NoError(t, err)
	require.Len(t, cal.Events(), 1)
	assert.Equal(t, "20250402", cal.Events()[0].GetProperty(ics.ComponentPropertyDtEnd).Value)
}

func TestWrite_EmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, time.UTC))
	assert.Contains(t, buf.String(), "BEGIN:VCALENDAR")
	assert.Contains(t, buf.String(), ProductID)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite_WriterError(t *testing.T) {
	assert.Error(t, Write(failWriter{}, nil, time.UTC))
}
