package api

import (
	"encoding/json"
	"fmt"

	errUtils "github.com/stonkie/stonkie/errors"
)

// analyzeEnvelope is the analyze response envelope. Data is kept raw
// because the backend has shipped two shapes for it: a flat
// {"data": "<answer>"} and a nested {"data": {"data": "<answer>"}}.
type analyzeEnvelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// nestedAnswer models the nested variant's inner object.
type nestedAnswer struct {
	Data *string `json:"data"`
}

// decodeAnswer extracts the answer text from an analyze response body.
// Only the two known shapes are accepted; anything else is an
// ErrAnswerShape error. Unknown shapes fail loudly rather than being
// stringified, so schema drift cannot leak raw JSON into the conversation.
func decodeAnswer(payload []byte) (string, error) {
	var envelope analyzeEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return "", fmt.Errorf("%w: %v", errUtils.ErrAnswerShape, err)
	}
	if len(envelope.Data) == 0 {
		return "", fmt.Errorf("%w: missing data field", errUtils.ErrAnswerShape)
	}

	// Nested shape first: when data is an object its inner data string
	// wins, matching the backend's precedence.
	var nested nestedAnswer
	if err := json.Unmarshal(envelope.Data, &nested); err == nil {
		if nested.Data == nil {
			return "", fmt.Errorf("%w: data object has no data string", errUtils.ErrAnswerShape)
		}
		return *nested.Data, nil
	}

	// Flat shape: data is the answer string itself.
	var answer string
	if err := json.Unmarshal(envelope.Data, &answer); err == nil {
		return answer, nil
	}

	return "", fmt.Errorf("%w: data is neither a string nor an object with a data string", errUtils.ErrAnswerShape)
}
