package google

import (
	"crypto/rand"
	"encoding/hex"
	"net/url"
	"sync"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"
)

const (
	googleOAuthURL = "https://accounts.google.com/o/oauth2/v2/auth"
	stateTTL       = 10 * time.Minute
	defaultScopes  = "openid email profile"
)

// OAuthService handles the browser side of Google sign-in
type OAuthService struct {
	clientID    string
	redirectURI string
	scopes      string
	now         func() time.Time

	// State storage for CSRF protection
	stateStore map[string]time.Time
	stateMutex sync.Mutex
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config) service.OAuthService {
	s := &OAuthService{
		scopes:     defaultScopes,
		now:        time.Now,
		stateStore: make(map[string]time.Time),
	}

	if cfg.GoogleOAuth != nil {
		s.clientID = cfg.GoogleOAuth.ClientID
		s.redirectURI = cfg.GoogleOAuth.RedirectURI
		if cfg.GoogleOAuth.Scopes != "" {
			s.scopes = cfg.GoogleOAuth.Scopes
		}
	}

	return s
}

// NewState generates a cryptographically secure random state and stores it
func (s *OAuthService) NewState() string {
	bytes := make([]byte, 32)
	_, _ = rand.Read(bytes)
	state := hex.EncodeToString(bytes)

	s.storeState(state)

	return state
}

// storeState stores a state parameter with expiration time
func (s *OAuthService) storeState(state string) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	now := s.now()
	s.stateStore[state] = now.Add(stateTTL)

	// Clean up expired states
	for st, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, st)
		}
	}
}

// BuildAuthorizationURL constructs the Google OAuth authorization URL for a state from NewState
func (s *OAuthService) BuildAuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", s.scopes)
	params.Set("response_type", "code")
	if state != "" {
		params.Set("state", state)
	}

	return googleOAuthURL + "?" + params.Encode()
}

// ValidateState consumes the state so it cannot be replayed
func (s *OAuthService) ValidateState(state string) bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}
	delete(s.stateStore, state)

	return !s.now().After(expiry)
}
