// Package handlers provides the gateway's HTTP endpoint handlers.
//
// # Routes
//
//   - SummaryHandler: GET/POST /ai/summary, ?mock=1 serves the canned summary
//   - SupportHandler: POST /support/send, 202 on acceptance
//   - TextHandler: GET /, /health and /ping liveness bodies
//   - ReadyHandler: GET /ready, provider configuration without secrets
//
// Handlers only translate HTTP to service calls. Every failure is a
// *types.GatewayError by the time it is written, and the cause stays in the
// logs.
package handlers
