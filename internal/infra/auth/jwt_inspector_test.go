package auth

import (
	"testing"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)

	return signed
}

func TestJWTInspector_Inspect(t *testing.T) {
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)

	tests := []struct {
		name        string
		claims      jwt.MapClaims
		wantSubject string
		wantRoles   entity.Roles
	}{
		{
			name:        "roles array",
			claims:      jwt.MapClaims{"sub": "user-1", "roles": []string{"admin", "customer"}, "exp": exp.Unix()},
			wantSubject: "user-1",
			wantRoles:   entity.Roles{entity.RoleAdmin, entity.RoleCustomer},
		},
		{
			name:        "single role claim",
			claims:      jwt.MapClaims{"id": "user-2", "role": "vendor", "exp": exp.Unix()},
			wantSubject: "user-2",
			wantRoles:   entity.Roles{entity.RoleVendor},
		},
		{
			name:        "unknown roles are dropped",
			claims:      jwt.MapClaims{"sub": "user-3", "roles": []string{"superuser"}, "exp": exp.Unix()},
			wantSubject: "user-3",
			wantRoles:   entity.Roles{},
		},
	}

	inspector := NewJWTInspector()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := inspector.Inspect(signToken(t, tt.claims))
			require.NoError(t, err)

			assert.Equal(t, tt.wantSubject, claims.Subject)
			assert.Equal(t, tt.wantRoles, claims.Roles)
			assert.True(t, exp.Equal(claims.ExpiresAt))
			assert.False(t, claims.Expired(time.Now()))
		})
	}
}

func TestJWTInspector_ExpiredTokenStillParses(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(-time.Hour).Unix()})

	claims, err := NewJWTInspector().Inspect(token)
	require.NoError(t, err)
	assert.True(t, claims.Expired(time.Now()))
}

func TestJWTInspector_Errors(t *testing.T) {
	inspector := NewJWTInspector()

	_, err := inspector.Inspect("")
	assert.Error(t, err)

	_, err = inspector.Inspect("not-a-jwt")
	assert.Error(t, err)
}
