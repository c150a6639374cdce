package handlers

import (
	"context"
	"net/http"

	"interpill/gateway/pkg/proxy"
	"interpill/gateway/pkg/proxy/types"
	"interpill/gateway/pkg/summary"
)

// MockQueryParam selects the canned answer when set to "1".
const MockQueryParam = "mock"

// Summarizer produces drug-interaction summaries. *summary.Service
// implements it.
type Summarizer interface {
	Summarize(ctx context.Context, rawBody []byte, mock bool) (*summary.Summary, error)
}

// SummaryHandler serves GET and POST /ai/summary.
//
// GET only serves the canned summary (?mock=1) and answers 501 otherwise.
// POST forwards the body to the summary service, which honours ?mock=1 too.
type SummaryHandler struct {
	service      Summarizer
	maxBodyBytes int64
}

// NewSummaryHandler creates the summary handler. maxBodyBytes <= 0 uses
// proxy.DefaultMaxBodyBytes.
func NewSummaryHandler(service Summarizer, maxBodyBytes int64) *SummaryHandler {
	return &SummaryHandler{service: service, maxBodyBytes: maxBodyBytes}
}

// ServeHTTP implements http.Handler.
func (h *SummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mock := isMock(r)

	var body []byte
	switch r.Method {
	case http.MethodGet:
		if !mock {
			writeError(w, r, types.NewNotImplemented(types.MsgUsePOST))
			return
		}
	case http.MethodPost:
		if !mock {
			var err error
			body, err = proxy.ReadBody(r, h.maxBodyBytes)
			if err != nil {
				writeError(w, r, err)
				return
			}
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, &types.GatewayError{
			Kind:    types.KindNotImplemented,
			Message: "method not allowed",
			Status:  http.StatusMethodNotAllowed,
		})
		return
	}

	result, err := h.service.Summarize(r.Context(), body, mock)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

func isMock(r *http.Request) bool {
	return r.URL.Query().Get(MockQueryParam) == "1"
}
