package fetch

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// DefaultMessageQuery picks the human readable message out of an upstream
// JSON error body.
const DefaultMessageQuery = `if type == "object" then (.message // .error // empty) else empty end`

// UnknownErrorMessage is shown when nothing better is available.
const UnknownErrorMessage = "Unknown error"

// MessageExtractor turns errors into user facing messages. Preference order:
// message found in the upstream body, transport message, error text, UnknownErrorMessage.
type MessageExtractor struct {
	code *gojq.Code
}

func NewMessageExtractor(query string) (*MessageExtractor, error) {
	if strings.TrimSpace(query) == "" {
		query = DefaultMessageQuery
	}

	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("fetch: invalid message query %q: %w", query, err)
	}

	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("fetch: failed to compile message query %q: %w", query, err)
	}

	return &MessageExtractor{code: code}, nil
}

var defaultExtractor = mustExtractor(DefaultMessageQuery)

func mustExtractor(query string) *MessageExtractor {
	extractor, err := NewMessageExtractor(query)
	if err != nil {
		panic(err)
	}
	return extractor
}

// Message returns the best available message for err.
func (m *MessageExtractor) Message(err error) string {
	if err == nil {
		return ""
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		if msg := m.fromBody(transportErr.Body); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(transportErr.Message); msg != "" {
			return msg
		}
		if transportErr.Err != nil {
			return transportErr.Err.Error()
		}
		return UnknownErrorMessage
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return UnknownErrorMessage
}

func (m *MessageExtractor) fromBody(body []byte) string {
	if m == nil || m.code == nil || len(body) == 0 {
		return ""
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	iter := m.code.Run(payload)
	for {
		value, ok := iter.Next()
		if !ok {
			return ""
		}
		if _, isErr := value.(error); isErr {
			return ""
		}
		if text, isText := value.(string); isText && strings.TrimSpace(text) != "" {
			return text
		}
	}
}
