package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "fenced block",
			text:   "Here you go:\n```json\n{\"riskLevel\":\"low\"}\n```\nThanks",
			want:   `{"riskLevel":"low"}`,
			wantOK: true,
		},
		{
			name:   "fence marker is case-insensitive",
			text:   "```JSON {\"a\":1} ```",
			want:   `{"a":1}`,
			wantOK: true,
		},
		{
			name:   "fence wins over surrounding braces",
			text:   "{noise} ```json\n{\"a\":1}\n``` {more}",
			want:   `{"a":1}`,
			wantOK: true,
		},
		{
			name:   "first fence only",
			text:   "```json\n{\"a\":1}\n```\n```json\n{\"b\":2}\n```",
			want:   `{"a":1}`,
			wantOK: true,
		},
		{
			name:   "brace span",
			text:   `The answer is {"a":{"b":1}} as requested.`,
			want:   `{"a":{"b":1}}`,
			wantOK: true,
		},
		{
			name:   "brace span is first to last",
			text:   `{"a":1} and {"b":2}`,
			want:   `{"a":1} and {"b":2}`,
			wantOK: true,
		},
		{
			name:   "closing brace before opening",
			text:   `} nothing {`,
			wantOK: false,
		},
		{
			name:   "plain text",
			text:   "no structured answer here",
			wantOK: false,
		},
		{
			name:   "empty",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONBlock(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
