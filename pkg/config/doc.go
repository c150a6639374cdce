// Package config provides configuration management for the Interpill AI
// gateway.
//
// Configuration is built once at startup and handed to components by value
// or pointer; there is no global instance.
//
// # Configuration Loading
//
//	cfg, err := config.Load("gateway.yaml", false, os.LookupEnv)
//
// The file is optional unless required is true.
//
// # Environment Variables
//
// The deployment variables are read directly:
//
//   - AI_PROXY_TOKEN, then GATEWAY_API_KEY: the inbound bearer token
//   - GEMINI_API_KEY, GEMINI_MODEL, GEMINI_BASE_URL
//   - AI_MOCK: force canned summaries
//   - RESEND_API_KEY, RESEND_BASE_URL
//   - SUPPORT_EMAIL, SUPPORT_FROM
//   - PORT: listen on 0.0.0.0:$PORT
//
// Tuning knobs use the GATEWAY_ prefix, for example GATEWAY_LOG_LEVEL or
// GATEWAY_UPSTREAM_READ_TIMEOUT. Environment variables always take
// precedence over file-based configuration.
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Validation
//
// Validate collects every FieldError before returning, so an operator sees
// all problems in one run. Absent credentials are not errors; the gateway
// reports them per request instead.
package config
