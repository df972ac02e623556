package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func TestMeeting_DurationText(t *testing.T) {
	m := Meeting{StartDate: day(2025, 3, 25), EndDate: ptr(day(2025, 3, 27))}
	text, ok := m.DurationText(time.UTC)
	require.True(t, ok)
	assert.Equal(t, "2박 3일", text)

	m.EndDate = ptr(m.StartDate)
	text, ok = m.DurationText(time.UTC)
	require.True(t, ok)
	assert.Equal(t, "0박 1일", text)

	m.EndDate = nil
	_, ok = m.DurationText(time.UTC)
	assert.False(t, ok)
}

func TestMeeting_CloneDoesNotAlias(t *testing.T) {
	m := Meeting{ID: "a", EndDate: ptr(day(2025, 1, 2)), Memos: []string{"one"}}
	c := m.Clone()

	*c.EndDate = day(2030, 1, 1)
	c.Memos[0] = "changed"

	assert.Equal(t, day(2025, 1, 2), *m.EndDate)
	assert.Equal(t, "one", m.Memos[0])
}

func TestMeeting_UnmarshalLegacyMemo(t *testing.T) {
	raw := `{"id":"x","title":"Busan","startDate":"2025-03-25T00:00:00Z",
		"memo":"book KTX|||PLAN_SEPARATOR||| reserve hotel |||PLAN_SEPARATOR|||","isCompleted":false}`

	var m Meeting
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	assert.Equal(t, "x", m.ID)
	assert.Equal(t, "Busan", m.Title)
	assert.Equal(t, []string{"book KTX", "reserve hotel"}, m.Memos)
	assert.Nil(t, m.EndDate)
}

func TestMeeting_MemosWinOverLegacyMemo(t *testing.T) {
	raw := `{"id":"x","title":"t","startDate":"2025-03-25T00:00:00Z","memos":["new"],"memo":"old"}`

	var m Meeting
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	assert.Equal(t, []string{"new"}, m.Memos)
}

func TestMeeting_MarshalNeverWritesSeparator(t *testing.T) {
	m := Meeting{ID: "x", Title: "t", StartDate: day(2025, 1, 1), Memos: []string{"a", "b"}}
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.NotContains(t, string(b), LegacyMemoSeparator)
	assert.NotContains(t, string(b), `"memo"`)
}

func TestNewMeetingWidgetData(t *testing.T) {
	m := Meeting{ID: "x", Title: "Jeju", StartDate: day(2025, 5, 1), EndDate: ptr(day(2025, 5, 3)), Memos: []string{"m"}}

	w := NewMeetingWidgetData(m)
	assert.Equal(t, "Jeju", w.Title)
	assert.Equal(t, day(2025, 5, 1), w.StartDate)
	require.NotNil(t, w.EndDate)
	assert.NotSame(t, m.EndDate, w.EndDate)

	text, ok := w.DurationText(time.UTC)
	require.True(t, ok)
	assert.Equal(t, "2박 3일", text)
}
