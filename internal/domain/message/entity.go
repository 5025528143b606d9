package message

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	chatterbox_errors "chatterbox/pkg/errors"

	jsoniter "github.com/json-iterator/go"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Message is an arbitrary JSON value accepted verbatim from a client.
// It is kept as compact JSON so repeated encodings are byte identical.
type Message []byte

// Parse validates body as a single UTF-8 JSON value and returns its compact form.
func Parse(body []byte) (Message, error) {
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("parse message: invalid UTF-8: %w", chatterbox_errors.ErrMalformedBody)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return nil, fmt.Errorf("parse message: %w", chatterbox_errors.ErrMalformedBody)
	}
	return Message(buf.Bytes()), nil
}

// ArrayLen reports the element count when m is a JSON array.
func (m Message) ArrayLen() (int, bool) {
	if len(m) == 0 || m[0] != '[' {
		return 0, false
	}
	var items []json.RawMessage
	if err := codec.Unmarshal(m, &items); err != nil {
		return 0, false
	}
	return len(items), true
}

func (m Message) MarshalJSON() ([]byte, error) {
	if len(m) == 0 {
		return []byte("null"), nil
	}
	return m, nil
}

func (m *Message) UnmarshalJSON(data []byte) error {
	if m == nil {
		return fmt.Errorf("message: UnmarshalJSON on nil pointer")
	}
	*m = append((*m)[:0], data...)
	return nil
}

// Clone returns a copy of messages that shares no backing arrays with it.
func Clone(messages []Message) []Message {
	out := make([]Message, len(messages))
	for i, m := range messages {
		out[i] = append(Message(nil), m...)
	}
	return out
}
