// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtInspector reads access-token claims without verifying the signature.
// The signing secret lives on the backend only.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{
		parser: jwt.NewParser(),
	}
}

// Inspect extracts subject, roles and expiry from the token.
func (s *jwtInspector) Inspect(accessToken string) (*entity.TokenClaims, error) {
	if accessToken == "" {
		return nil, errors.New("access token is empty")
	}

	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(accessToken, claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}

	result := &entity.TokenClaims{
		Roles: rolesFromClaims(claims),
	}

	if sub, err := claims.GetSubject(); err == nil {
		result.Subject = sub
	}
	// Some backends put the user id under "id" or "userId" instead of sub.
	if result.Subject == "" {
		for _, key := range []string{"id", "userId"} {
			if v, ok := claims[key].(string); ok && v != "" {
				result.Subject = v

				break
			}
		}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(err, "invalid exp claim")
	}
	if exp != nil {
		result.ExpiresAt = exp.Time
	}

	return result, nil
}

// rolesFromClaims accepts both a "roles" array and a single "role" string.
func rolesFromClaims(claims jwt.MapClaims) entity.Roles {
	var raw []string

	switch v := claims["roles"].(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	case string:
		raw = append(raw, v)
	}

	if role, ok := claims["role"].(string); ok {
		raw = append(raw, role)
	}

	return entity.RolesFromStrings(raw)
}
