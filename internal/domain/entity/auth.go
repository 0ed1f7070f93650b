package entity

import "time"

// Session is the persisted auth slice: the signed-in user and its tokens.
type Session struct {
	User         *User     `json:"user"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt,omitempty"`
}

// IsAuthenticated reports whether the session carries an access token.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.AccessToken != ""
}

// TokenClaims are the claims the client reads from an access token.
type TokenClaims struct {
	Subject   string
	Roles     Roles
	ExpiresAt time.Time
}

// Expired reports whether the claims are past their expiry at now.
// Tokens without an exp claim never expire client-side.
func (c *TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
