// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, an optional YAML file). It
// provides type-safe access to the settings needed by the LLM providers, the
// logger and the flashcard viewer.
package config
