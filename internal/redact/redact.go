// Package redact provides utilities for redacting sensitive information from
// strings before they are logged. It keeps provider API keys and bearer
// tokens out of debug logs that include request or response details.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
)

// Precompiled regex patterns
var (
	// JWT token pattern - matches the standard three-part base64url-encoded JWT token format
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Authorization header values
	bearerRegex = regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9_\-.~+/=]{8,}`)

	// Provider keys: OpenAI (sk-...) and Google (AIza...)
	openAIKeyRegex = regexp.MustCompile(`\bsk-[A-Za-z0-9_\-]{8,}`)
	googleKeyRegex = regexp.MustCompile(`\bAIza[0-9A-Za-z_\-]{20,}`)

	// key=value and "key": "value" style assignments
	apiKeyParamRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret)['"]?\s*[:=]\s*['"]?[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Patterns in application order
	patterns = []*regexp.Regexp{
		jwtTokenRegex, bearerRegex, openAIKeyRegex, googleKeyRegex, apiKeyParamRegex,
	}

	patternPlaceholders = map[*regexp.Regexp]string{
		jwtTokenRegex:    RedactedJWTPlaceholder,
		bearerRegex:      "Bearer " + RedactedKeyPlaceholder,
		openAIKeyRegex:   RedactedKeyPlaceholder,
		googleKeyRegex:   RedactedKeyPlaceholder,
		apiKeyParamRegex: RedactedCredentialPlaceholder,
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pattern := range patterns {
		placeholder := RedactedKeyPlaceholder
		if ph, ok := patternPlaceholders[pattern]; ok {
			placeholder = ph
		}
		result = pattern.ReplaceAllLiteralString(result, placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Snippet redacts input and truncates it to at most max bytes, marking the cut.
func Snippet(input string, max int) string {
	result := String(input)
	if max <= 0 || len(result) <= max {
		return result
	}
	return result[:max] + "...(truncated)"
}
