package openai_test

import (
	"testing"

	"github.com/hkshrestha01-debug/aistudyapp/internal/generation"
	"github.com/hkshrestha01-debug/aistudyapp/internal/platform/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "string content",
			body: `{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`,
			want: "hello",
		},
		{
			name: "escaped string content",
			body: `{"choices":[{"message":{"content":"{\"summary\":\"X\"}"}}]}`,
			want: `{"summary":"X"}`,
		},
		{
			name: "array content concatenated in order",
			body: `{"choices":[{"message":{"content":[{"type":"text","text":"ab"},{"type":"text","text":"cd"}]}}]}`,
			want: "abcd",
		},
		{
			name: "array parts without string text skipped",
			body: `{"choices":[{"message":{"content":[{"type":"image"},{"text":5},"loose",{"text":"ok"}]}}]}`,
			want: "ok",
		},
		{
			name: "empty array",
			body: `{"choices":[{"message":{"content":[]}}]}`,
			want: "",
		},
		{
			name: "only first choice used",
			body: `{"choices":[{"message":{"content":"first"}},{"message":{"content":"second"}}]}`,
			want: "first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := openai.ExtractContent(tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractContentMalformed(t *testing.T) {
	t.Parallel()

	bodies := map[string]string{
		"not json":        `upstream exploded`,
		"no choices":      `{"choices":[]}`,
		"missing choices": `{"id":"x"}`,
		"null content":    `{"choices":[{"message":{"content":null}}]}`,
		"object content":  `{"choices":[{"message":{"content":{"text":"x"}}}]}`,
		"number content":  `{"choices":[{"message":{"content":42}}]}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := openai.ExtractContent(body)
			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrMalformedResponse)
		})
	}
}
