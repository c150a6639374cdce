package providers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// MockServer is a mock HTTP server for testing provider clients.
// It serves scripted responses per path and records every request it
// receives so tests can assert on headers and payloads.
type MockServer struct {
	server    *httptest.Server
	responses map[string]MockResponse
	requests  []RecordedRequest
	mu        sync.Mutex
}

// MockResponse defines a mock response configuration.
type MockResponse struct {
	StatusCode int
	Body       interface{}
	Delay      time.Duration
	Headers    map[string]string
}

// RecordedRequest is a captured inbound request.
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// NewMockServer creates a new mock server.
func NewMockServer() *MockServer {
	ms := &MockServer{
		responses: make(map[string]MockResponse),
	}

	ms.server = httptest.NewServer(http.HandlerFunc(ms.handler))

	return ms
}

// URL returns the mock server's base URL.
func (ms *MockServer) URL() string {
	return ms.server.URL
}

// Close closes the mock server.
func (ms *MockServer) Close() {
	ms.server.Close()
}

// SetResponse sets a mock response for a specific endpoint.
func (ms *MockServer) SetResponse(path string, response MockResponse) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.responses[path] = response
}

// GetRequestCount returns the number of requests received.
func (ms *MockServer) GetRequestCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	return len(ms.requests)
}

// Requests returns a copy of the recorded requests.
func (ms *MockServer) Requests() []RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	out := make([]RecordedRequest, len(ms.requests))
	copy(out, ms.requests)
	return out
}

// LastRequest returns the most recent request, or false when none arrived.
func (ms *MockServer) LastRequest() (RecordedRequest, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if len(ms.requests) == 0 {
		return RecordedRequest{}, false
	}
	return ms.requests[len(ms.requests)-1], true
}

// handler handles incoming HTTP requests.
func (ms *MockServer) handler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	ms.mu.Lock()
	ms.requests = append(ms.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
		Body:   body,
	})
	response, ok := ms.responses[r.URL.Path]
	ms.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	// Delay, but give up as soon as the client goes away.
	if response.Delay > 0 {
		select {
		case <-time.After(response.Delay):
		case <-r.Context().Done():
			return
		}
	}

	for key, value := range response.Headers {
		w.Header().Set(key, value)
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}

	w.WriteHeader(response.StatusCode)

	if response.Body != nil {
		switch v := response.Body.(type) {
		case string:
			_, _ = w.Write([]byte(v))
		case []byte:
			_, _ = w.Write(v)
		default:
			_ = json.NewEncoder(w).Encode(response.Body)
		}
	}
}

// GeminiPath returns the generateContent path for model.
func GeminiPath(model string) string {
	return "/v1beta/models/" + model + ":generateContent"
}

// ResendPath is the email send endpoint.
const ResendPath = "/emails"

// MockGeminiResponse creates a 200 generateContent envelope whose single
// candidate carries text.
func MockGeminiResponse(text string) MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body: map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"role": "model",
						"parts": []map[string]interface{}{
							{"text": text},
						},
					},
					"finishReason": "STOP",
				},
			},
			"modelVersion": "gemini-1.5-flash",
		},
	}
}

// MockGeminiError creates a Google API style error body.
func MockGeminiError(statusCode int, message, status string) MockResponse {
	return MockResponse{
		StatusCode: statusCode,
		Body: map[string]interface{}{
			"error": map[string]interface{}{
				"code":    statusCode,
				"message": message,
				"status":  status,
			},
		},
	}
}

// MockResendAccepted creates a 200 Resend send response.
func MockResendAccepted(id string) MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       map[string]interface{}{"id": id},
	}
}

// MockResendError creates a Resend style error body.
func MockResendError(statusCode int, name, message string) MockResponse {
	return MockResponse{
		StatusCode: statusCode,
		Body: map[string]interface{}{
			"statusCode": statusCode,
			"name":       name,
			"message":    message,
		},
	}
}

// MockRateLimitError creates a 429 response with a Retry-After header.
func MockRateLimitError(retryAfter int) MockResponse {
	response := MockGeminiError(http.StatusTooManyRequests, "Resource has been exhausted", "RESOURCE_EXHAUSTED")
	response.Headers = map[string]string{
		"Retry-After": fmt.Sprintf("%d", retryAfter),
	}
	return response
}

// MockServerError creates a 500 internal server error response.
func MockServerError() MockResponse {
	return MockGeminiError(http.StatusInternalServerError, "Internal error encountered.", "INTERNAL")
}

// MockSlowResponse creates a successful response delivered after delay, to
// exercise client timeouts.
func MockSlowResponse(delay time.Duration) MockResponse {
	response := MockGeminiResponse("{}")
	response.Delay = delay
	return response
}
