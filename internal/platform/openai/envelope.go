package openai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hkshrestha01-debug/aistudyapp/internal/generation"
)

// ExtractContent returns choices[0].message.content from a raw chat-completions
// response body. String content is returned as is; array content is the
// in-order concatenation of every part whose "text" is a string. Any other
// shape is reported as generation.ErrMalformedResponse.
func ExtractContent(rawBody string) (string, error) {
	var resp chatResponse
	if err := json.Unmarshal([]byte(rawBody), &resp); err != nil {
		return "", fmt.Errorf("%w: failed to parse response envelope: %v", generation.ErrMalformedResponse, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", generation.ErrMalformedResponse)
	}

	raw := bytes.TrimSpace(resp.Choices[0].Message.Content)
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: unexpected content format in response", generation.ErrMalformedResponse)
	}

	switch raw[0] {
	case '"':
		var content string
		if err := json.Unmarshal(raw, &content); err != nil {
			return "", fmt.Errorf("%w: %v", generation.ErrMalformedResponse, err)
		}
		return content, nil

	case '[':
		var parts []json.RawMessage
		if err := json.Unmarshal(raw, &parts); err != nil {
			return "", fmt.Errorf("%w: %v", generation.ErrMalformedResponse, err)
		}

		var sb strings.Builder
		for _, rawPart := range parts {
			var part contentPart
			if err := json.Unmarshal(rawPart, &part); err != nil {
				continue
			}
			var text string
			if t := bytes.TrimSpace(part.Text); len(t) == 0 || t[0] != '"' || json.Unmarshal(t, &text) != nil {
				continue
			}
			sb.WriteString(text)
		}
		return sb.String(), nil

	default:
		return "", fmt.Errorf("%w: unexpected content format in response", generation.ErrMalformedResponse)
	}
}
