package types

// StatusResponse is the body of an accepted support send:
//
//	{"status": "queued"}
//	{"status": "ok", "note": "email provider not configured (mock)"}
type StatusResponse struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// ReadyResponse reports which providers are configured. It never carries
// secrets.
type ReadyResponse struct {
	Status    string                   `json:"status"`
	Providers map[string]ProviderState `json:"providers"`
}

// ProviderState describes one provider in a ReadyResponse.
type ProviderState struct {
	Configured bool   `json:"configured"`
	Mock       bool   `json:"mock"`
	Detail     string `json:"detail,omitempty"`
}
