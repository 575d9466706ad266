// Package gemini provides a generation.Completer backed by Google's Gemini API.
//
// It is the alternative to the OpenAI chat-completions client, selected with
// llm.provider=gemini. The completer sends the rendered prompt as a single user
// turn and returns the concatenated text parts of the first candidate; the
// generation package then extracts and decodes the embedded JSON object.
//
// The underlying genai client is created lazily on the first request so that a
// missing GEMINI_API_KEY is reported as generation.ErrMissingCredential at the
// point of use rather than at startup.
package gemini
