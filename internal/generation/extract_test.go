package generation_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hkshrestha01-debug/aistudyapp/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare object",
			input:    `{"a":1}`,
			expected: `{"a":1}`,
		},
		{
			name:     "prose prefix and suffix",
			input:    "Sure, here is your JSON: {\"a\":1} Hope this helps!",
			expected: `{"a":1}`,
		},
		{
			name:     "code fence",
			input:    "```json\n{\"summary\":\"X\"}\n```",
			expected: `{"summary":"X"}`,
		},
		{
			name:     "nested objects keep outermost braces",
			input:    `x {"a":{"b":{"c":1}}} y`,
			expected: `{"a":{"b":{"c":1}}}`,
		},
		{
			name:     "braces inside strings are not special-cased",
			input:    `{"a":"}"} trailing }`,
			expected: `{"a":"}"} trailing }`,
		},
		{
			name:     "minimal pair",
			input:    "{}",
			expected: "{}",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := generation.ExtractJSON(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.True(t, strings.HasPrefix(got, "{"), "result should start with {")
			assert.True(t, strings.HasSuffix(got, "}"), "result should end with }")
		})
	}
}

func TestExtractJSONFailures(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"empty":                "",
		"no braces":            "no json here",
		"only opening brace":   "{ unterminated",
		"only closing brace":   "closing only }",
		"closing before open":  "} then {",
		"closing before open2": "}}{",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := generation.ExtractJSON(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrMalformedResponse)
			assert.Empty(t, got)
		})
	}
}

func TestExtractJSONIdempotentOnSerializedJSON(t *testing.T) {
	t.Parallel()

	noisy := []string{
		"Here you go:\n```json\n{\"summary\":\"X\",\"key_points\":[\"a\",\"b\"],\"definitions\":[]}\n```",
		`prefix {"flashcards":[{"question":"Q1","answer":"A1"}]} suffix`,
		`{"nested":{"deep":{"list":[1,2,{"x":"y"}]}}}`,
	}

	for _, input := range noisy {
		extracted, err := generation.ExtractJSON(input)
		require.NoError(t, err)

		var parsed any
		require.NoError(t, json.Unmarshal([]byte(extracted), &parsed))

		serialized, err := json.Marshal(parsed)
		require.NoError(t, err)

		again, err := generation.ExtractJSON(string(serialized))
		require.NoError(t, err)
		assert.Equal(t, string(serialized), again)
	}
}
