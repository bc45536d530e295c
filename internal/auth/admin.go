// Package auth decides whether submitted admin credentials are valid.
package auth

import "github.com/foxuse/showcase/internal/config"

// Authenticator validates a submitted credential pair. On success it
// returns an opaque user identifier to echo back to the client.
type Authenticator interface {
	Authenticate(username, password string) (user string, ok bool)
}

// Credentials is an Authenticator backed by a fixed username/password
// pair. Production wiring sources the pair from configuration; tests
// construct one with literal values.
type Credentials struct {
	Username string
	Password string
}

// FromConfig builds the production Authenticator from the admin config
func FromConfig(cfg config.AdminConfig) Credentials {
	return Credentials{Username: cfg.Username, Password: cfg.Password}
}

// Authenticate compares the submitted pair against the reference pair.
// It does not distinguish a bad username from a bad password.
func (c Credentials) Authenticate(username, password string) (string, bool) {
	if username == c.Username && password == c.Password {
		return username, true
	}
	return "", false
}
