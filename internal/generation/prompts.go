package generation

import (
	"bytes"
	"fmt"
	"os"
	"text/template"
)

// SummaryPromptPrefix asks for a summary, key points and definitions as
// strict JSON. The study text is appended verbatim after it.
const SummaryPromptPrefix = `
You are an AI study assistant.

TASK:
1. Read the following text.
2. Write a concise summary (150–250 words) in simple language.
3. List 3–5 key points.
4. If there are definitions, include them in your own words.

Return ONLY valid JSON with this structure:
{
  "summary": "string",
  "key_points": ["string", "string"],
  "definitions": [
    {"term": "string", "definition": "string"}
  ]
}

TEXT:
`

// FlashcardPromptPrefix asks for a list of question/answer flashcards as
// strict JSON. The study text is appended verbatim after it.
const FlashcardPromptPrefix = `
You are an AI that creates study flashcards.

Given the TEXT below, create 10–20 flashcards that help a student study.

Rules:
- Questions should be clear and specific.
- Answers should be brief (1–3 sentences).
- Mix definitions, concepts, and reasoning questions.

Return ONLY valid JSON with this structure:
{
  "flashcards": [
    {"question": "string", "answer": "string"}
  ]
}

TEXT:
`

// BuildSummaryPrompt returns the summary prompt for text.
func BuildSummaryPrompt(text string) string {
	return SummaryPromptPrefix + text
}

// BuildFlashcardPrompt returns the flashcard prompt for text.
func BuildFlashcardPrompt(text string) string {
	return FlashcardPromptPrefix + text
}

// promptData represents the data passed to a custom prompt template
type promptData struct {
	Text string
}

// LoadPromptTemplate reads and parses a prompt template file. Templates
// reference the study text as {{.Text}}.
func LoadPromptTemplate(path string) (*template.Template, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
			ErrInvalidConfig, path, err)
	}

	tmpl, err := template.New(path).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	return tmpl, nil
}

// renderPrompt executes tmpl with text, or falls back to prefix+text when no
// template is configured.
func renderPrompt(tmpl *template.Template, prefix, text string) (string, error) {
	if tmpl == nil {
		return prefix + text, nil
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, promptData{Text: text}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}
