package models

import (
	"errors"
	"fmt"
)

// UpstreamHTTPError is a non-2xx answer from the archive or geocoding API.
type UpstreamHTTPError struct {
	Status int
	Body   string
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, e.Body)
}

// UpstreamConnectionError wraps a network or timeout failure on an upstream call.
type UpstreamConnectionError struct {
	Err error
}

func (e *UpstreamConnectionError) Error() string {
	return "upstream connection failed: " + e.Err.Error()
}

func (e *UpstreamConnectionError) Unwrap() error { return e.Err }

// InvalidDateRangeError reports a range whose computed start falls after its
// end, or a year outside the queryable bounds.
type InvalidDateRangeError struct {
	Reason string
}

func (e *InvalidDateRangeError) Error() string {
	return "invalid date range: " + e.Reason
}

var (
	// ErrInvalidInput marks malformed coordinates, empty required fields and
	// address text sent through the wrong search method.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDecode marks a day-record payload that could not be parsed.
	ErrDecode = errors.New("malformed day-record payload")

	// ErrMissingAPIKey marks a configuration without a required upstream key.
	ErrMissingAPIKey = errors.New("required API key is not configured")
)
