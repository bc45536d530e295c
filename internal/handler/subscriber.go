package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/foxuse/showcase/internal/model"
	"github.com/foxuse/showcase/internal/repository"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe adds an email to the mailing list. Subscribing an existing
// email is an idempotent no-op.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := readJSON(r, &req); err != nil {
		writeServerError(w, "Failed to subscribe", err)
		return
	}

	// Minimal shape check only, not full address validation
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	exists, err := h.subscribers.ExistsByEmail(r.Context(), req.Email)
	if err != nil {
		writeServerError(w, "Failed to subscribe", err)
		return
	}
	if exists {
		writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Already subscribed"})
		return
	}

	subscriber := model.Subscriber{Email: req.Email}
	err = h.subscribers.Create(r.Context(), &subscriber)
	if errors.Is(err, repository.ErrDuplicate) {
		// Lost a race with a concurrent subscribe of the same email
		writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Already subscribed"})
		return
	}
	if err != nil {
		writeServerError(w, "Failed to subscribe", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"message": "Subscribed successfully"})
}

// ListSubscribers returns all subscribers, newest first (admin only)
func (h *Handler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.subscribers.List(r.Context())
	if err != nil {
		writeServerError(w, "Failed to fetch subscribers", err)
		return
	}
	writeJSON(w, http.StatusOK, subscribers)
}
