package providers

import (
	"errors"
	"testing"
	"time"

	"interpill/gateway/pkg/config"
	"interpill/gateway/pkg/providers"
)

// TestUpstreamConfig returns upstream settings pointing at baseURL with
// short timeouts suitable for tests.
func TestUpstreamConfig(baseURL string) config.UpstreamConfig {
	return config.UpstreamConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		ConnectTimeout: time.Second,
		ReadTimeout:    2 * time.Second,
	}
}

// TestGeminiConfig returns a Gemini configuration pointing at baseURL.
func TestGeminiConfig(baseURL string) config.GeminiConfig {
	return config.GeminiConfig{
		UpstreamConfig: TestUpstreamConfig(baseURL),
		Model:          config.DefaultGeminiModel,
		Temperature:    config.DefaultGeminiTemperature,
	}
}

// TestResendConfig returns a Resend configuration pointing at baseURL.
func TestResendConfig(baseURL string) config.ResendConfig {
	return config.ResendConfig{UpstreamConfig: TestUpstreamConfig(baseURL)}
}

// TestClientConfig returns a provider client configuration pointing at baseURL.
func TestClientConfig(name, baseURL string) providers.ClientConfig {
	return providers.ClientConfig{
		Name:           name,
		BaseURL:        baseURL,
		ConnectTimeout: time.Second,
		ReadTimeout:    2 * time.Second,
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertErrorType fails the test if err does not wrap the expected provider
// error type.
func AssertErrorType(t *testing.T, err error, expectedType interface{}) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var ok bool
	switch expectedType.(type) {
	case *providers.AuthError:
		var target *providers.AuthError
		ok = errors.As(err, &target)
	case *providers.RateLimitError:
		var target *providers.RateLimitError
		ok = errors.As(err, &target)
	case *providers.UnavailableError:
		var target *providers.UnavailableError
		ok = errors.As(err, &target)
	case *providers.RejectedError:
		var target *providers.RejectedError
		ok = errors.As(err, &target)
	case *providers.ParseError:
		var target *providers.ParseError
		ok = errors.As(err, &target)
	default:
		t.Fatalf("unknown error type: %T", expectedType)
	}
	if !ok {
		t.Fatalf("expected %T, got %T: %v", expectedType, err, err)
	}
}

// RecordingObserver collects upstream observations for assertions.
type RecordingObserver struct {
	Outcomes []string
}

// ObserveUpstream implements providers.Observer.
func (o *RecordingObserver) ObserveUpstream(provider, outcome string, _ time.Duration) {
	o.Outcomes = append(o.Outcomes, provider+":"+outcome)
}
