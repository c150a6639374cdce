package logging

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// Redactor masks credentials and email addresses in log attributes.
type Redactor struct {
	patterns []*redactPattern
}

type redactPattern struct {
	name    string
	regex   *regexp.Regexp
	replace func(string) string
}

// Pattern names.
const (
	PatternBearerToken = "bearer_token"
	PatternGeminiKey   = "gemini_key"
	PatternResendKey   = "resend_key"
	PatternEmail       = "email"
)

// NewRedactor creates a Redactor with the built-in patterns. Order matters:
// bearer tokens are masked before anything inside them can match.
func NewRedactor() *Redactor {
	return &Redactor{
		patterns: []*redactPattern{
			{
				name:    PatternBearerToken,
				regex:   regexp.MustCompile(`Bearer\s+[A-Za-z0-9\-._~+/]+=*`),
				replace: func(string) string { return "Bearer ***" },
			},
			{
				name:    PatternGeminiKey,
				regex:   regexp.MustCompile(`AIza[0-9A-Za-z\-_]{10,}`),
				replace: func(string) string { return "AIza***" },
			},
			{
				name:    PatternResendKey,
				regex:   regexp.MustCompile(`\bre_[0-9A-Za-z_]{8,}`),
				replace: func(string) string { return "re_***" },
			},
			{
				name:    PatternEmail,
				regex:   regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
				replace: RedactEmail,
			},
		},
	}
}

// RedactString applies every pattern to value.
func (r *Redactor) RedactString(value string) string {
	if value == "" {
		return value
	}
	for _, p := range r.patterns {
		value = p.regex.ReplaceAllStringFunc(value, p.replace)
	}
	return value
}

// RedactAttr redacts one attribute. Values under a sensitive key are masked
// whole; other string values are scanned for patterns. Groups are walked.
func (r *Redactor) RedactAttr(a slog.Attr) slog.Attr {
	v := a.Value.Resolve()

	switch v.Kind() {
	case slog.KindGroup:
		attrs := v.Group()
		out := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			out[i] = r.RedactAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}

	case slog.KindString:
		if isSensitiveKey(a.Key) {
			return slog.String(a.Key, maskValue(v.String()))
		}
		return slog.String(a.Key, r.RedactString(v.String()))

	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return slog.String(a.Key, r.RedactString(err.Error()))
		}
		if s, ok := v.Any().(fmt.Stringer); ok && isSensitiveKey(a.Key) {
			return slog.String(a.Key, maskValue(s.String()))
		}
		return slog.Attr{Key: a.Key, Value: v}

	default:
		return slog.Attr{Key: a.Key, Value: v}
	}
}

func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)

	sensitiveKeys := []string{
		"password", "secret", "token", "api_key", "apikey", "authorization",
	}
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(lowerKey, sensitive) {
			return true
		}
	}
	return false
}

func maskValue(v string) string {
	if v == "" {
		return ""
	}
	if len(v) <= 4 {
		return "***"
	}
	return v[:4] + "***"
}

// RedactEmail redacts an email address partially (shows first char and domain).
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	username := parts[0]
	domain := parts[1]

	if len(username) == 0 {
		return "***@" + domain
	}

	return string(username[0]) + "***@" + domain
}
