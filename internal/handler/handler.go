package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foxuse/showcase/internal/auth"
	"github.com/foxuse/showcase/internal/logger"
	"github.com/foxuse/showcase/internal/repository"
	"github.com/foxuse/showcase/internal/service"
)

// HealthChecker reports whether a backing dependency is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler holds all HTTP handlers
type Handler struct {
	db            HealthChecker
	log           *logger.Logger
	authenticator auth.Authenticator
	products      repository.ProductStore
	activities    repository.ActivityStore
	subscribers   repository.SubscriberStore
	notifier      *service.Notifier
}

// New creates a new Handler instance
func New(db HealthChecker, log *logger.Logger, authenticator auth.Authenticator, products repository.ProductStore, activities repository.ActivityStore, subscribers repository.SubscriberStore, notifier *service.Notifier) *Handler {
	return &Handler{
		db:            db,
		log:           log,
		authenticator: authenticator,
		products:      products,
		activities:    activities,
		subscribers:   subscribers,
		notifier:      notifier,
	}
}

// JSON helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"error": message})
}

// writeServerError reports an unexpected failure. The raw error is
// echoed in a details field per the API contract; DESIGN.md flags this
// as an information leak to revisit.
func writeServerError(w http.ResponseWriter, message string, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"error":   message,
		"details": err.Error(),
	})
}

func readJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}
