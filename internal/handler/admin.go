package handler

import "net/http"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the submitted credential pair. The failure message does
// not distinguish a bad username from a bad password.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	// A malformed body is just a failed login attempt
	_ = readJSON(r, &req)

	user, ok := h.authenticator.Authenticate(req.Username, req.Password)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"success": false,
			"message": "Invalid username or password",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}
