package google

import (
	"net/url"
	"testing"
	"time"

	"marketplace/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(scopes string) *config.Config {
	return &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:    "test_client_id",
			RedirectURI: "http://localhost:3000/auth/callback",
			Scopes:      scopes,
		},
	}
}

func TestOAuthService_BuildAuthorizationURL(t *testing.T) {
	tests := []struct {
		name     string
		config   *config.Config
		state    string
		expected string
	}{
		{
			name:     "basic config",
			config:   testConfig("openid email"),
			state:    "abc",
			expected: "https://accounts.google.com/o/oauth2/v2/auth?client_id=test_client_id&redirect_uri=http%3A%2F%2Flocalhost%3A3000%2Fauth%2Fcallback&response_type=code&scope=openid+email&state=abc",
		},
		{
			name:     "default scopes without state",
			config:   testConfig(""),
			expected: "https://accounts.google.com/o/oauth2/v2/auth?client_id=test_client_id&redirect_uri=http%3A%2F%2Flocalhost%3A3000%2Fauth%2Fcallback&response_type=code&scope=openid+email+profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewOAuthService(tt.config)
			assert.Equal(t, tt.expected, service.BuildAuthorizationURL(tt.state))
		})
	}
}

func TestOAuthService_StateIsSingleUse(t *testing.T) {
	service := NewOAuthService(testConfig(""))

	state := service.NewState()
	require.Len(t, state, 64)

	authURL, err := url.Parse(service.BuildAuthorizationURL(state))
	require.NoError(t, err)
	assert.Equal(t, state, authURL.Query().Get("state"))

	assert.True(t, service.ValidateState(state))
	assert.False(t, service.ValidateState(state))
	assert.False(t, service.ValidateState("unknown"))
}

func TestOAuthService_StateExpires(t *testing.T) {
	svc := NewOAuthService(testConfig("")).(*OAuthService)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	state := svc.NewState()
	now = now.Add(stateTTL + time.Second)

	assert.False(t, svc.ValidateState(state))
}

func TestOAuthService_NilConfigSection(t *testing.T) {
	service := NewOAuthService(&config.Config{})
	assert.Contains(t, service.BuildAuthorizationURL(""), "scope=openid+email+profile")
}
