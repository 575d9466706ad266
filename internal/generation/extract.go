package generation

import (
	"fmt"
	"strings"
)

// ExtractJSON returns the substring of s from the first '{' to the last '}'
// inclusive. Models often wrap their JSON in prose or code fences; taking the
// outermost braces drops both. The result is not validated as JSON.
func ExtractJSON(s string) (string, error) {
	first := strings.IndexByte(s, '{')
	last := strings.LastIndexByte(s, '}')

	if first == -1 || last == -1 || last <= first {
		return "", fmt.Errorf("%w: assistant response did not contain a JSON object", ErrMalformedResponse)
	}

	return s[first : last+1], nil
}
