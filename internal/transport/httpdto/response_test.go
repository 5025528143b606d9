package httpdto

import (
	"testing"

	"chatterbox/internal/domain/message"

	"github.com/stretchr/testify/require"
)

func TestEnvelope_EmptyResultsEncodeAsArray(t *testing.T) {
	body, err := NewEnvelope(nil).Encode()
	require.NoError(t, err)
	require.Equal(t, `{"results":[]}`, string(body))
}

func TestEnvelope_EmbedsMessagesVerbatim(t *testing.T) {
	body, err := NewEnvelope([]message.Message{
		message.Message(`{"username":"Jono","text":"Do my bidding!"}`),
		message.Message(`[1]`),
		message.Message(`null`),
	}).Encode()
	require.NoError(t, err)
	require.Equal(t, `{"results":[{"username":"Jono","text":"Do my bidding!"},[1],null]}`, string(body))
}
