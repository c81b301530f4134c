// Package auth carries the signed-in user through the application as an
// explicit value. There is no ambient token store: whoever needs the
// current user receives a Session at construction time.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"movietix-cli/model"
)

// Session is an authenticated user plus the bearer token issued for them.
// The zero value means "not signed in".
type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Authenticated reports whether the session identifies a user.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User.Id > 0
}

// Expired reports whether the token's exp claim has passed. The client
// holds no signing key, so the token is inspected without verification;
// the services still verify it on every request. Tokens without an exp
// claim, or that fail to parse, are treated as expired so a stale blob on
// disk forces a fresh login instead of a wall of 401s.
func (s Session) Expired(now time.Time) bool {
	if s.Token == "" {
		return true
	}
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(s.Token, jwt.MapClaims{})
	if err != nil {
		return true
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return !now.Before(exp.Time)
}

// Valid reports whether the session can be used right now.
func (s Session) Valid(now time.Time) bool {
	return s.Authenticated() && !s.Expired(now)
}
