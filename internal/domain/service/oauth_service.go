package service

// OAuthService drives the browser side of Google sign-in: it builds the
// authorization URL and guards the redirect with a one-time state value.
// The authorization code itself is exchanged by the backend.
type OAuthService interface {
	// NewState generates and remembers a state value for CSRF protection.
	NewState() string

	// BuildAuthorizationURL constructs the Google authorization URL for the given state.
	BuildAuthorizationURL(state string) string

	// ValidateState consumes a state value; it returns false for unknown or expired values.
	ValidateState(state string) bool
}
