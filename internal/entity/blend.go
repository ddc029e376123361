package entity

import (
	"encoding/json"
	"fmt"
)

// BlendedWordKey is the only field the model is asked to return.
const BlendedWordKey = "blended_word"

// BlendResult is the model's JSON object, kept verbatim so extra keys survive
// the round trip to the caller.
type BlendResult map[string]any

// ParseBlendResult decodes raw model output and checks that it is a JSON object
// carrying a non-empty string under BlendedWordKey.
func ParseBlendResult(raw string) (BlendResult, error) {
	var result BlendResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFormat, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrUpstreamFormat)
	}
	word, ok := result[BlendedWordKey].(string)
	if !ok || word == "" {
		return nil, fmt.Errorf("%w: missing %q", ErrUpstreamFormat, BlendedWordKey)
	}
	return result, nil
}

func (r BlendResult) BlendedWord() string {
	word, _ := r[BlendedWordKey].(string)
	return word
}
