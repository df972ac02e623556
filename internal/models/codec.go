package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/kakai/internal/common"
)

// MeetingsVersion is the current version of the serialized meetings envelope.
// Version 1 is a bare JSON array with the legacy memo field.
const MeetingsVersion = 2

type meetingsEnvelope struct {
	Version  int       `json:"version"`
	Meetings []Meeting `json:"meetings"`
}

// EncodeMeetings serializes the collection in the current envelope format.
func EncodeMeetings(ms []Meeting) ([]byte, error) {
	if ms == nil {
		ms = []Meeting{}
	}
	b, err := json.Marshal(meetingsEnvelope{Version: MeetingsVersion, Meetings: ms})
	if err != nil {
		return nil, fmt.Errorf("encode meetings: %w", err)
	}
	return b, nil
}

// DecodeMeetings parses either envelope version. Errors wrap
// common.ErrMalformedData or common.ErrUnsupportedVersion.
func DecodeMeetings(b []byte) ([]Meeting, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty meetings value", common.ErrMalformedData)
	}

	if b[0] == '[' {
		var ms []Meeting
		if err := json.Unmarshal(b, &ms); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrMalformedData, err)
		}
		return ms, nil
	}

	var env meetingsEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedData, err)
	}
	if env.Version != MeetingsVersion {
		return nil, fmt.Errorf("%w: %d", common.ErrUnsupportedVersion, env.Version)
	}
	return env.Meetings, nil
}

// EncodeWidgetData serializes the widget projection.
func EncodeWidgetData(w MeetingWidgetData) ([]byte, error) {
	b, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("encode widget data: %w", err)
	}
	return b, nil
}

// DecodeWidgetData parses the widget projection.
func DecodeWidgetData(b []byte) (MeetingWidgetData, error) {
	var w MeetingWidgetData
	if err := json.Unmarshal(b, &w); err != nil {
		return MeetingWidgetData{}, fmt.Errorf("%w: %v", common.ErrMalformedData, err)
	}
	return w, nil
}
