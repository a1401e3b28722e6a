package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageExtractor_Message_TableDriven(t *testing.T) {
	extractor, err := NewMessageExtractor("")
	require.NoError(t, err)

	tests := []struct {
		name   string
		err    error
		expect string
	}{
		{name: "nil error", err: nil, expect: ""},
		{
			name:   "prefers server message",
			err:    NewStatusError(http.StatusInternalServerError, []byte(`{"message":"server error","error":"ignored"}`)),
			expect: "server error",
		},
		{
			name:   "falls back to server error field",
			err:    NewStatusError(http.StatusConflict, []byte(`{"error":"code already exists"}`)),
			expect: "code already exists",
		},
		{
			name:   "blank server message uses transport message",
			err:    NewStatusError(http.StatusBadGateway, []byte(`{"message":"  "}`)),
			expect: "Request failed with status code 502",
		},
		{
			name:   "non json body uses transport message",
			err:    NewStatusError(http.StatusServiceUnavailable, []byte(`<html>down</html>`)),
			expect: "Request failed with status code 503",
		},
		{
			name:   "array body uses transport message",
			err:    NewStatusError(http.StatusBadRequest, []byte(`["bad"]`)),
			expect: "Request failed with status code 400",
		},
		{
			name:   "network failure uses cause",
			err:    &TransportError{Err: errors.New("dial tcp: connection refused")},
			expect: "dial tcp: connection refused",
		},
		{
			name:   "empty transport error",
			err:    &TransportError{},
			expect: UnknownErrorMessage,
		},
		{
			name:   "wrapped transport error",
			err:    fmt.Errorf("upstream: list flights: %w", NewStatusError(http.StatusNotFound, []byte(`{"message":"flight not found"}`))),
			expect: "flight not found",
		},
		{
			name:   "plain error",
			err:    context.DeadlineExceeded,
			expect: "context deadline exceeded",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, extractor.Message(tc.err))
		})
	}
}

func TestMessageExtractor_CustomQuery(t *testing.T) {
	extractor, err := NewMessageExtractor(`.errors[0].detail`)
	require.NoError(t, err)

	msg := extractor.Message(NewStatusError(http.StatusUnprocessableEntity, []byte(`{"errors":[{"detail":"capacity must be positive"}]}`)))
	assert.Equal(t, "capacity must be positive", msg)
}

func TestNewMessageExtractor_InvalidQuery(t *testing.T) {
	_, err := NewMessageExtractor(`.message |||`)
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid message query")
}

func TestTransportError_Classification(t *testing.T) {
	unauthorized := fmt.Errorf("wrapped: %w", NewStatusError(http.StatusUnauthorized, []byte(`{}`)))
	assert.True(t, IsAuthExpired(unauthorized))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(unauthorized))
	assert.Equal(t, []byte(`{}`), RawBody(unauthorized))

	forbidden := NewStatusError(http.StatusForbidden, nil)
	assert.False(t, IsAuthExpired(forbidden))
	assert.False(t, IsAuthExpired(errors.New("boom")))
	assert.Zero(t, StatusCode(errors.New("boom")))
	assert.Nil(t, RawBody(errors.New("boom")))

	assert.Equal(t, "fetch: upstream responded 403: Request failed with status code 403", forbidden.Error())
	network := &TransportError{Err: errors.New("reset")}
	assert.Equal(t, "fetch: transport failure: reset", network.Error())
	assert.ErrorIs(t, ErrSuperseded, ErrCancelled)
}
