// Package common defines sentinel errors shared by the storage and service
// layers of kakai. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrMalformedData      = errors.New("malformed stored data")
	ErrUnsupportedVersion = errors.New("unsupported serialization version")

	// Image store errors.
	ErrEmptyImage   = errors.New("empty image data")
	ErrInvalidImage = errors.New("invalid image filename")

	// Input errors surfaced by the terminal front end.
	ErrInvalidDate = errors.New("invalid date")
)
