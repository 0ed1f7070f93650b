package service

import "marketplace/internal/domain/entity"

// TokenInspector reads the claims of an access token issued by the backend.
// The client cannot verify the signature; it only uses the claims for
// display decisions (roles, expiry). The backend stays the authority.
type TokenInspector interface {
	Inspect(accessToken string) (*entity.TokenClaims, error)
}
