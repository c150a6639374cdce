// Package logging configures log/slog for the gateway.
//
// New returns a *slog.Logger whose handler adds the request ID stored in
// the context (see WithRequestID) and, with RedactPII, masks secrets:
//
//   - Bearer tokens: Bearer abc123 → Bearer ***
//   - Gemini keys: AIzaSy... → AIza***
//   - Resend keys: re_123abc... → re_***
//   - Emails: user@example.com → u***@example.com
//   - Any string under a key containing "token", "secret", "api_key" etc.
//
// Install the result with slog.SetDefault; the rest of the gateway logs
// through the package-level slog functions.
package logging
