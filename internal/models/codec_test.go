package models

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/kakai/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeMeetings_RoundTrip(t *testing.T) {
	in := []Meeting{
		{ID: "b", Title: "later", StartDate: day(2025, 6, 1), EndDate: ptr(day(2025, 6, 3)), Memos: []string{"x", "y"}, PhotoFilename: "b.jpg"},
		{ID: "a", Title: "sooner", StartDate: day(2025, 4, 1), IsCompleted: true},
	}

	b, err := EncodeMeetings(in)
	require.NoError(t, err)

	out, err := DecodeMeetings(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncodeMeetings_NilIsEmptyList(t *testing.T) {
	b, err := EncodeMeetings(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":2,"meetings":[]}`, string(b))

	out, err := DecodeMeetings(b)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecodeMeetings_LegacyArray(t *testing.T) {
	raw := `[{"id":"a","title":"t","startDate":"2025-04-01T00:00:00Z","memo":"p1|||PLAN_SEPARATOR|||p2","isCompleted":false}]`

	out, err := DecodeMeetings([]byte(raw))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"p1", "p2"}, out[0].Memos)
	assert.True(t, out[0].StartDate.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDecodeMeetings_Errors(t *testing.T) {
	_, err := DecodeMeetings([]byte("  "))
	require.ErrorIs(t, err, common.ErrMalformedData)

	_, err = DecodeMeetings([]byte(`{"version":2,"meetings":`))
	require.ErrorIs(t, err, common.ErrMalformedData)

	_, err = DecodeMeetings([]byte(`[{"id":1}]`))
	require.ErrorIs(t, err, common.ErrMalformedData)

	_, err = DecodeMeetings([]byte(`{"version":7,"meetings":[]}`))
	require.ErrorIs(t, err, common.ErrUnsupportedVersion)
}

func TestWidgetData_RoundTrip(t *testing.T) {
	in := MeetingWidgetData{Title: "t", StartDate: day(2025, 7, 7)}
	b, err := EncodeWidgetData(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t","startDate":"2025-07-07T00:00:00Z"}`, string(b))

	out, err := DecodeWidgetData(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = DecodeWidgetData([]byte("nope"))
	require.ErrorIs(t, err, common.ErrMalformedData)
}
