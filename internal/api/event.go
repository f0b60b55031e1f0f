package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// maxEventBytes caps the accepted analytics event body.
const maxEventBytes = 1 << 20

// Client-facing reasons. Internal detail never reaches the response.
const (
	reasonNotJSON      = "Content-Type must be application/json"
	reasonMissingEvent = "Missing event type"
	reasonInternal     = "Internal server error"
)

var (
	// ErrNotJSON reports a request whose media type is not JSON.
	ErrNotJSON = errors.New("api: request content type is not JSON")
	// ErrMissingEvent reports a JSON body without an "event" field.
	ErrMissingEvent = errors.New("api: event field is missing")
)

// Event is an analytics event body. Only the presence of "event" is
// checked; every other field is opaque.
type Event map[string]any

// Type returns the raw "event" value.
func (e Event) Type() any { return e["event"] }

// eventResult is the outcome of the intake chain: either an accepted event
// or an error with the HTTP status it maps to.
type eventResult struct {
	event  Event
	status int
	err    error
}

// reason is the body text for a failed result.
func (r eventResult) reason() string {
	switch {
	case errors.Is(r.err, ErrNotJSON):
		return reasonNotJSON
	case errors.Is(r.err, ErrMissingEvent):
		return reasonMissingEvent
	default:
		return reasonInternal
	}
}

// readEvent runs the intake chain in order: content type, then body and
// "event" presence. Client errors are classified before anything else is
// allowed to surface as a server error.
func readEvent(r *http.Request) eventResult {
	if !isJSONContentType(r.Header.Get("Content-Type")) {
		return eventResult{status: http.StatusBadRequest, err: ErrNotJSON}
	}
	ev, err := decodeEvent(r.Body)
	switch {
	case errors.Is(err, ErrMissingEvent):
		return eventResult{status: http.StatusBadRequest, err: err}
	case err != nil:
		return eventResult{status: http.StatusInternalServerError, err: err}
	}
	return eventResult{event: ev, status: http.StatusOK}
}

// decodeEvent parses a single JSON value from body. Null, an empty object,
// a non-object, or an object without "event" yield ErrMissingEvent.
// Malformed or oversized input is a plain decode error.
func decodeEvent(body io.Reader) (Event, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read event body: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode event body: %w", err)
	}
	if dec.More() {
		return nil, errors.New("decode event body: trailing data after JSON value")
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrMissingEvent
	}
	if _, ok := obj["event"]; !ok {
		return nil, ErrMissingEvent
	}
	return Event(obj), nil
}

// isJSONContentType accepts application/json and application/*+json.
func isJSONContentType(header string) bool {
	if header == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return mt == "application/json" ||
		(strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json"))
}
