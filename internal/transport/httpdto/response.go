package httpdto

import (
	"chatterbox/internal/domain/message"

	jsoniter "github.com/json-iterator/go"
)

const ContentTypeJSON = "application/json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Envelope is the body of every JSON response.
type Envelope struct {
	Results []message.Message `json:"results"`
}

func NewEnvelope(results []message.Message) Envelope {
	if results == nil {
		results = []message.Message{}
	}
	return Envelope{Results: results}
}

func (e Envelope) Encode() ([]byte, error) {
	return json.Marshal(e)
}
