package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/kakai/internal/common"
)

// Fixed keys of the shared storage contract.
const (
	KeyUserName          = "userName"
	KeyPartnerName       = "partnerName"
	KeyStartDate         = "startDate"
	KeyNextMeeting       = "nextMeeting"
	KeyMeetings          = "meetings"
	KeyWidgetMeetingData = "widgetMeetingData"
	KeySetupComplete     = "isSetupComplete"

	// KeyWidgetReload holds the time of the last "data changed" hint.
	KeyWidgetReload = "widgetReloadRequestedAt"
)

// EncodeTime is the storage encoding of dates.
func EncodeTime(t time.Time) []byte {
	return []byte(t.Format(time.RFC3339Nano))
}

// DecodeTime parses a value written by EncodeTime.
func DecodeTime(b []byte) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, string(b))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", common.ErrMalformedData, err)
	}
	return t, nil
}

// GetString reads a text value; ok is false when the key is absent.
func GetString(ctx context.Context, r Repository, key string) (value string, ok bool, err error) {
	b, err := r.Get(ctx, key)
	if err != nil || b == nil {
		return "", false, err
	}
	return string(b), true, nil
}

// GetTime reads a date value; ok is false when the key is absent.
func GetTime(ctx context.Context, r Repository, key string) (value time.Time, ok bool, err error) {
	b, err := r.Get(ctx, key)
	if err != nil || b == nil {
		return time.Time{}, false, err
	}
	t, err := DecodeTime(b)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("metadata[%s]: %w", key, err)
	}
	return t, true, nil
}
