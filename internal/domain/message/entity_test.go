package message

import (
	"errors"
	"testing"

	chatterbox_errors "chatterbox/pkg/errors"

	"github.com/stretchr/testify/require"
)

func TestParse_CompactsValidJSON(t *testing.T) {
	m, err := Parse([]byte("{ \"username\" : \"Jono\",\n \"text\": \"Do my bidding!\" }"))
	require.NoError(t, err)
	require.Equal(t, `{"username":"Jono","text":"Do my bidding!"}`, string(m))
}

func TestParse_RejectsInvalidJSON(t *testing.T) {
	for _, body := range []string{"", "{", "username=Jono", `{"a":1}{"b":2}`, "{\"text\":\"\xff\xfe\"}"} {
		_, err := Parse([]byte(body))
		require.Error(t, err, body)
		require.True(t, errors.Is(err, chatterbox_errors.ErrMalformedBody), body)
	}
}

func TestParse_KeepsMultibyteText(t *testing.T) {
	m, err := Parse([]byte(`{"text":"héllo ✓"}`))
	require.NoError(t, err)
	require.Equal(t, `{"text":"héllo ✓"}`, string(m))
}

func TestArrayLen(t *testing.T) {
	cases := []struct {
		body    string
		length  int
		isArray bool
	}{
		{`[1,2]`, 2, true},
		{`[]`, 0, true},
		{`[{"a":[1,2,3]}]`, 1, true},
		{`{"a":[1,2]}`, 0, false},
		{`"[1,2]"`, 0, false},
		{`null`, 0, false},
	}
	for _, tc := range cases {
		m, err := Parse([]byte(tc.body))
		require.NoError(t, err)
		n, ok := m.ArrayLen()
		require.Equal(t, tc.isArray, ok, tc.body)
		require.Equal(t, tc.length, n, tc.body)
	}
}

func TestClone_DoesNotShareBacking(t *testing.T) {
	original := []Message{Message(`{"a":1}`)}
	cloned := Clone(original)
	cloned[0][2] = 'b'
	require.Equal(t, `{"a":1}`, string(original[0]))
}
