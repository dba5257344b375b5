package api

import (
	"encoding/json"
	"net/http"
)

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// PostChat serves POST /api/chat.
func (h *Handlers) PostChat(w http.ResponseWriter, r *http.Request) {
	if h.chat == nil {
		h.writeError(w, http.StatusServiceUnavailable, "chat assistant is not configured")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		h.writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	sessionID, reply, err := h.chat.Send(r.Context(), req.SessionID, req.Message)
	if err != nil {
		h.writeError(w, http.StatusBadGateway, "assistant is unavailable, try again")
		return
	}
	h.writeJSON(w, http.StatusOK, chatResponse{SessionID: sessionID, Reply: reply})
}
