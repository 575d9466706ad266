// Package generation turns study text into study material through an LLM
// round trip. It owns the prompt templates, the lenient JSON extraction that
// tolerates prose and code fences around the model's answer, and the schema
// decoders that build domain records with defaults for missing fields.
//
// Transport is abstracted behind the Completer interface so the pipeline does
// not depend on a specific provider (OpenAI chat completions, Gemini).
package generation
