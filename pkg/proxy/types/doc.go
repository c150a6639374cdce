// Package types defines the wire shapes shared by the gateway's handlers.
//
// # Error Types
//
//   - GatewayError: the tagged error every service returns, with Kind,
//     Message, Note, Status and Cause
//   - ErrorResponse: its JSON form, {"error": ..., "note": ...}
//
// # Response Types
//
//   - StatusResponse: accepted support sends
//   - ReadyResponse: provider readiness without secrets
package types
