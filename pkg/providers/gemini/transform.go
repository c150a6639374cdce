package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"interpill/gateway/pkg/providers"
)

// Gemini API request/response types

// GenerateContentRequest is the generateContent request body.
type GenerateContentRequest struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content is a role-tagged list of parts.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is one text fragment.
type Part struct {
	Text string `json:"text"`
}

// GenerationConfig carries sampling settings.
type GenerationConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	ResponseMIMEType string   `json:"responseMimeType,omitempty"`
}

// GenerateContentResponse is the generateContent response envelope.
// Pointer and slice fields distinguish "absent" from "empty".
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one generated answer.
type Candidate struct {
	Content      *ResponseContent `json:"content"`
	FinishReason string           `json:"finishReason,omitempty"`
}

// ResponseContent is the candidate content as returned by the API.
type ResponseContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []ResponsePart `json:"parts"`
}

// ResponsePart is one returned fragment. Text is a pointer so that a part
// without a text field can be told apart from an empty string.
type ResponsePart struct {
	Text *string `json:"text"`
}

// Prompt is what a caller asks Gemini to do.
type Prompt struct {
	// System is sent as systemInstruction when non-empty.
	System string

	// User is the user turn.
	User string
}

// BuildRequest transforms a prompt into a generateContent body.
func BuildRequest(p Prompt, temperature float64, jsonOutput bool) *GenerateContentRequest {
	req := &GenerateContentRequest{
		Contents: []Content{
			{
				Role:  "user",
				Parts: []Part{{Text: p.User}},
			},
		},
	}

	if p.System != "" {
		req.SystemInstruction = &Content{
			Parts: []Part{{Text: p.System}},
		}
	}

	gc := &GenerationConfig{Temperature: &temperature}
	if jsonOutput {
		gc.ResponseMIMEType = "application/json"
	}
	req.GenerationConfig = gc

	return req
}

var (
	errNoCandidates = errors.New("response has no candidates")
	errNoContent    = errors.New("first candidate has no content")
	errNoParts      = errors.New("candidate content has no parts")
	errNoText       = errors.New("candidate parts carry no text")
)

// ExtractText locates the generated answer in a response body: the text of
// every part of the first candidate, concatenated. Absence of the structure
// at any level is a *providers.ParseError.
func ExtractText(body []byte) (string, error) {
	var resp GenerateContentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", parseError(body, fmt.Errorf("failed to unmarshal response: %w", err))
	}

	if len(resp.Candidates) == 0 {
		return "", parseError(body, errNoCandidates)
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return "", parseError(body, errNoContent)
	}
	if len(content.Parts) == 0 {
		return "", parseError(body, errNoParts)
	}

	var sb strings.Builder
	found := false
	for _, part := range content.Parts {
		if part.Text == nil {
			continue
		}
		found = true
		sb.WriteString(*part.Text)
	}
	if !found {
		return "", parseError(body, errNoText)
	}

	return sb.String(), nil
}

func parseError(body []byte, cause error) error {
	raw := string(body)
	if len(raw) > 512 {
		raw = raw[:512]
	}
	return &providers.ParseError{
		Provider:    providers.Gemini,
		RawResponse: raw,
		Cause:       cause,
	}
}
