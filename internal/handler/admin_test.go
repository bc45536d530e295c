package handler_test

import (
	"net/http"
	"testing"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		body        map[string]any
		wantCode    int
		wantSuccess bool
		wantUser    string
		wantMessage string
	}{
		{
			name:        "valid credentials",
			body:        map[string]any{"username": "admin", "password": "s3cret"},
			wantCode:    http.StatusOK,
			wantSuccess: true,
			wantUser:    "admin",
		},
		{
			name:        "wrong password",
			body:        map[string]any{"username": "admin", "password": "wrong"},
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Invalid username or password",
		},
		{
			name:        "wrong username",
			body:        map[string]any{"username": "root", "password": "s3cret"},
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Invalid username or password",
		},
		{
			name:        "empty body",
			body:        map[string]any{},
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Invalid username or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.do(t, http.MethodPost, "/admin/login", tt.body, false)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}

			var body struct {
				Success bool   `json:"success"`
				User    string `json:"user"`
				Message string `json:"message"`
			}
			decodeBody(t, rec, &body)

			if body.Success != tt.wantSuccess {
				t.Errorf("success = %v, want %v", body.Success, tt.wantSuccess)
			}
			if body.User != tt.wantUser {
				t.Errorf("user = %q, want %q", body.User, tt.wantUser)
			}
			if body.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", body.Message, tt.wantMessage)
			}
		})
	}
}
