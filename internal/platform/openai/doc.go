// Package openai provides the Chat Client for the OpenAI chat-completions
// endpoint and implements the generation.Completer interface on top of it.
//
// A Client performs exactly one HTTPS POST per call: it sends a single user
// message, accumulates the full response body, and maps failures onto the
// generation error kinds (missing credential, transport, remote status).
// ExtractContent reads the assistant text out of the response envelope,
// accepting both plain-string content and arrays of text parts.
package openai
