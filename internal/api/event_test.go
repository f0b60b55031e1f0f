package api

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsJSONContentType(t *testing.T) {
	tests := map[string]bool{
		"application/json":                true,
		"Application/JSON":                true,
		"application/json; charset=utf-8": true,
		"application/problem+json":        true,
		"":                                false,
		"text/plain":                      false,
		"text/json":                       false,
		"application/jsonx":               false,
		"multipart/form-data; boundary=x": false,
		";;;":                             false,
	}
	for ct, want := range tests {
		assert.Equal(t, want, isJSONContentType(ct), "content type %q", ct)
	}
}

func TestDecodeEvent(t *testing.T) {
	ev, err := decodeEvent(strings.NewReader(`{"event": "signup", "plan": "pro", "seats": 3}`))
	require.NoError(t, err)
	assert.Equal(t, "signup", ev.Type())
	assert.Equal(t, json.Number("3"), ev["seats"])

	// Presence is all that matters; the value passes through.
	ev, err = decodeEvent(strings.NewReader(`{"event": 42}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("42"), ev.Type())

	ev, err = decodeEvent(strings.NewReader(`{"event": null}`))
	require.NoError(t, err)
	assert.Nil(t, ev.Type())
}

func TestDecodeEvent_Missing(t *testing.T) {
	for _, body := range []string{`{}`, `null`, `[]`, `["event"]`, `"event"`, `{"name": "x"}`} {
		_, err := decodeEvent(strings.NewReader(body))
		assert.ErrorIs(t, err, ErrMissingEvent, body)
	}
}

func TestDecodeEvent_Malformed(t *testing.T) {
	for _, body := range []string{``, `{`, `{"event": "a"} {"event": "b"}`, `not json`} {
		_, err := decodeEvent(strings.NewReader(body))
		require.Error(t, err, body)
		assert.NotErrorIs(t, err, ErrMissingEvent, body)
	}
}
