package handlers

import (
	"context"
	"net/http"

	"interpill/gateway/pkg/proxy"
	"interpill/gateway/pkg/proxy/types"
	"interpill/gateway/pkg/support"
)

// SupportSender accepts support form submissions. *support.Service
// implements it.
type SupportSender interface {
	Send(ctx context.Context, msg support.SupportMessage) (*support.Accepted, error)
}

// SupportHandler serves POST /support/send and answers 202 on acceptance.
type SupportHandler struct {
	service      SupportSender
	maxBodyBytes int64
}

// NewSupportHandler creates the support handler. maxBodyBytes <= 0 uses
// proxy.DefaultMaxBodyBytes.
func NewSupportHandler(service SupportSender, maxBodyBytes int64) *SupportHandler {
	return &SupportHandler{service: service, maxBodyBytes: maxBodyBytes}
}

// ServeHTTP implements http.Handler.
func (h *SupportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := proxy.ReadBody(r, h.maxBodyBytes)
	if err != nil {
		writeError(w, r, err)
		return
	}

	msg, err := support.DecodeMessage(body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	accepted, err := h.service.Send(r.Context(), msg)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusAccepted, types.StatusResponse{
		Status: accepted.Status,
		Note:   accepted.Note,
	})
}
