package gemini

import (
	"errors"
	"testing"

	"interpill/gateway/pkg/providers"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
	}{
		{
			name: "single part",
			body: `{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`,
			want: "hello",
		},
		{
			name: "parts are concatenated",
			body: `{"candidates":[{"content":{"parts":[{"text":"{\"a\":"},{"text":"1}"}]}}]}`,
			want: `{"a":1}`,
		},
		{
			name: "only first candidate is read",
			body: `{"candidates":[{"content":{"parts":[{"text":"one"}]}},{"content":{"parts":[{"text":"two"}]}}]}`,
			want: "one",
		},
		{
			name:    "missing candidates",
			body:    `{}`,
			wantErr: errNoCandidates,
		},
		{
			name:    "missing content",
			body:    `{"candidates":[{"finishReason":"SAFETY"}]}`,
			wantErr: errNoContent,
		},
		{
			name:    "missing parts",
			body:    `{"candidates":[{"content":{"role":"model"}}]}`,
			wantErr: errNoParts,
		},
		{
			name:    "parts without text",
			body:    `{"candidates":[{"content":{"parts":[{"inlineData":{}}]}}]}`,
			wantErr: errNoText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText([]byte(tt.body))
			if tt.wantErr != nil {
				var parseErr *providers.ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected ParseError, got %v", err)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected cause %v, got %v", tt.wantErr, parseErr.Cause)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildRequest(t *testing.T) {
	req := BuildRequest(Prompt{User: "hi"}, 0.4, false)

	if req.SystemInstruction != nil {
		t.Error("empty system prompt should be omitted")
	}
	if req.GenerationConfig.ResponseMIMEType != "" {
		t.Error("mime type should be unset for plain output")
	}
	if *req.GenerationConfig.Temperature != 0.4 {
		t.Errorf("temperature = %v", *req.GenerationConfig.Temperature)
	}
}
