package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foxuse/showcase/internal/auth"
	"github.com/foxuse/showcase/internal/config"
	"github.com/foxuse/showcase/internal/email"
	"github.com/foxuse/showcase/internal/handler"
	"github.com/foxuse/showcase/internal/logger"
	"github.com/foxuse/showcase/internal/middleware"
	"github.com/foxuse/showcase/internal/repository/memory"
	"github.com/foxuse/showcase/internal/router"
	"github.com/foxuse/showcase/internal/service"
)

// healthyDB satisfies handler.HealthChecker without a real database
type healthyDB struct{}

func (healthyDB) HealthCheck(ctx context.Context) error { return nil }

// fakeSender records every relay send request
type fakeSender struct {
	sent []email.Message
	err  error
}

func (f *fakeSender) Send(ctx context.Context, msg email.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

// testEnv wires the full router against in-memory stores
type testEnv struct {
	srv         http.Handler
	products    *memory.ProductStore
	activities  *memory.ActivityStore
	subscribers *memory.SubscriberStore
	sender      *fakeSender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.Mail.AppName = "FOXuse"
	log := logger.New("disabled", "json")

	env := &testEnv{
		products:    memory.NewProductStore(),
		activities:  memory.NewActivityStore(),
		subscribers: memory.NewSubscriberStore(),
		sender:      &fakeSender{},
	}

	notifier := service.NewNotifier(env.subscribers, env.sender, cfg.Mail.AppName, log)
	authenticator := auth.Credentials{Username: "admin", Password: "s3cret"}

	h := handler.New(healthyDB{}, log, authenticator, env.products, env.activities, env.subscribers, notifier)
	mw := middleware.New(log, cfg)
	env.srv = router.New(h, mw)

	return env
}

// do issues a request against the router. asAdmin attaches the session
// marker header.
func (e *testEnv) do(t *testing.T, method, path string, body any, asAdmin bool) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if asAdmin {
		req.Header.Set(middleware.AdminSessionHeader, middleware.AdminSessionValue)
	}

	rec := httptest.NewRecorder()
	e.srv.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a JSON response body into v
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health status = %d, want 200", rec.Code)
	}

	var body struct {
		Status string `json:"status"`
	}
	decodeBody(t, rec, &body)
	if body.Status != "healthy" {
		t.Errorf("status = %q, want %q", body.Status, "healthy")
	}
}
