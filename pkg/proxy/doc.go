// Package proxy holds the pieces every gateway route shares: turning service
// and provider errors into client-facing responses, writing JSON bodies and
// reading bounded request bodies.
//
// # Error normalization
//
// Services return either a *types.GatewayError or one of the typed provider
// errors from package providers. MapUpstream resolves any of them to exactly
// one error kind, using a RoutePolicy for the few places where the routes
// differ:
//
//	if err != nil {
//	    proxy.WriteErrorResponse(w, proxy.MapUpstream(err, proxy.EmailRoute))
//	    return
//	}
//
// HandleError is MapUpstream with the AI route policy. Errors of unknown type
// become a 500 "internal error" whose cause is logged but never sent.
//
// # Wire format
//
// Every failure is written as
//
//	{"error": "<short message>", "note": "<optional detail>"}
//
// with the status of the error's kind (see types.ErrorKind.DefaultStatus).
//
// # Request bodies
//
// ReadBody reads at most a fixed number of bytes; larger bodies are
// rejected with 400 "request too large".
package proxy
