package generation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hkshrestha01-debug/aistudyapp/internal/domain"
)

// DecodeSummary builds a SummaryResult from assistant content. Missing or
// mistyped fields fall back to defaults rather than failing: summary and
// definition fields default to "", key_points and definitions to empty lists.
// Non-string key points and non-object definitions are skipped.
func DecodeSummary(content string) (*domain.SummaryResult, error) {
	fields, err := decodeObject(content)
	if err != nil {
		return nil, err
	}

	keyPoints := []string{}
	for _, raw := range arrayField(fields, "key_points") {
		if kp, ok := stringOf(raw); ok {
			keyPoints = append(keyPoints, kp)
		}
	}

	definitions := []domain.Definition{}
	for _, raw := range arrayField(fields, "definitions") {
		def, ok := objectOf(raw)
		if !ok {
			continue
		}
		definitions = append(definitions, domain.Definition{
			Term:       stringField(def, "term"),
			Definition: stringField(def, "definition"),
		})
	}

	return domain.NewSummaryResult(stringField(fields, "summary"), keyPoints, definitions), nil
}

// DecodeFlashcards builds a FlashcardDeck from assistant content. A missing
// or non-array flashcards field yields an empty deck; missing card fields
// default to "". The deck size is not validated.
func DecodeFlashcards(content string) (*domain.FlashcardDeck, error) {
	fields, err := decodeObject(content)
	if err != nil {
		return nil, err
	}

	var cards []domain.Flashcard
	for _, raw := range arrayField(fields, "flashcards") {
		card, ok := objectOf(raw)
		if !ok {
			continue
		}
		cards = append(cards, domain.Flashcard{
			Question: stringField(card, "question"),
			Answer:   stringField(card, "answer"),
		})
	}

	return domain.NewFlashcardDeck(cards), nil
}

// decodeObject extracts the outermost JSON object from content and parses it.
func decodeObject(content string) (map[string]json.RawMessage, error) {
	body, err := ExtractJSON(content)
	if err != nil {
		return nil, err
	}

	fields, ok := objectOf(json.RawMessage(body))
	if !ok {
		return nil, fmt.Errorf("%w: assistant JSON is not a valid object", ErrMalformedResponse)
	}

	return fields, nil
}

func objectOf(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

func stringField(obj map[string]json.RawMessage, key string) string {
	s, _ := stringOf(obj[key])
	return s
}

// stringOf decodes raw only when it is a JSON string; null does not count.
func stringOf(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", false
	}
	return s, true
}

func arrayField(obj map[string]json.RawMessage, key string) []json.RawMessage {
	raw, ok := obj[key]
	if !ok {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}
