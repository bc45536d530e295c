package handler

import (
	"fmt"
	"net/http"
)

type notifyRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
	Link    string `json:"link"`
}

// Notify broadcasts an announcement email to every subscriber
// (admin only)
func (h *Handler) Notify(w http.ResponseWriter, r *http.Request) {
	var req notifyRequest
	if err := readJSON(r, &req); err != nil {
		writeServerError(w, "Failed to send notification", err)
		return
	}

	if req.Subject == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "Subject and message are required")
		return
	}

	count, err := h.notifier.Broadcast(r.Context(), req.Subject, req.Message, req.Link)
	if err != nil {
		writeServerError(w, "Failed to send notification", err)
		return
	}
	if count == 0 {
		writeJSON(w, http.StatusOK, map[string]interface{}{"message": "No subscribers to notify"})
		return
	}

	h.log.AdminAction("notify.broadcast", "subscriber", count)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Notification sent to %d subscribers", count),
	})
}
