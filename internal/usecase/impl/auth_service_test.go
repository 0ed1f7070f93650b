package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"
	"marketplace/internal/store"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service   usecase.AuthUsecase
	authRepo  *mockRepo.MockAuthRepository
	inspector *mockService.MockTokenInspector
	oauth     *mockService.MockOAuthService
	state     *store.Store
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	authRepo := mockRepo.NewMockAuthRepository(t)
	inspector := mockService.NewMockTokenInspector(t)
	oauth := mockService.NewMockOAuthService(t)
	state := newTestStore(t)

	return authServiceFixtures{
		service:   NewAuthService(authRepo, inspector, oauth, state, newTestLogger()),
		authRepo:  authRepo,
		inspector: inspector,
		oauth:     oauth,
		state:     state,
	}
}

func testSession() *entity.Session {
	return &entity.Session{
		User:        &entity.User{ID: "u1", Email: "ana@example.com", Role: entity.RoleCustomer},
		AccessToken: "token-1",
	}
}

func TestAuthService_Login(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().Login(ctx, "ana@example.com", "secret").Return(testSession(), nil)

	session, err := fx.service.Login(ctx, usecase.LoginInput{Email: " ana@example.com ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "token-1", session.AccessToken)
	assert.Equal(t, "token-1", fx.state.AccessToken())
	assert.Equal(t, "u1", fx.state.CurrentUser().ID)
}

func TestAuthService_Login_Failure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.authRepo.EXPECT().Login(ctx, "ana@example.com", "bad").
		Return(nil, domainerrors.NewAPIError(401, "", "Invalid credentials", "/api/v1/auth/login"))

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "bad"})
	require.Error(t, err)
	assert.Empty(t, fx.state.AccessToken())
	assert.Equal(t, "Invalid credentials", fx.state.Auth.Snapshot().Error)
}

func TestAuthService_GoogleSignIn_InvalidState(t *testing.T) {
	fx := createTestAuthService(t)

	fx.oauth.EXPECT().ValidateState("forged").Return(false)

	_, err := fx.service.GoogleSignIn(context.Background(), usecase.GoogleSignInInput{State: "forged", Credential: "cred"})
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
	fx.authRepo.AssertNotCalled(t, "GoogleLogin", mock.Anything, mock.Anything)
}

func TestAuthService_GoogleSignIn_CancelledDoesNotStoreSession(t *testing.T) {
	fx := createTestAuthService(t)
	ctx, cancel := context.WithCancel(context.Background())

	fx.oauth.EXPECT().ValidateState("state-1").Return(true)
	fx.authRepo.EXPECT().GoogleLogin(ctx, "cred").
		RunAndReturn(func(context.Context, string) (*entity.Session, error) {
			cancel()

			return testSession(), nil
		})

	_, err := fx.service.GoogleSignIn(ctx, usecase.GoogleSignInInput{State: "state-1", Credential: "cred"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fx.state.AccessToken())
}

func TestAuthService_GoogleSignIn(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.oauth.EXPECT().NewState().Return("state-1")
	fx.oauth.EXPECT().BuildAuthorizationURL("state-1").Return("https://accounts.google.com/o/oauth2/v2/auth?state=state-1")

	authURL, state := fx.service.BeginGoogleSignIn()
	assert.Equal(t, "state-1", state)
	assert.Contains(t, authURL, "state=state-1")

	fx.oauth.EXPECT().ValidateState("state-1").Return(true)
	fx.authRepo.EXPECT().GoogleLogin(ctx, "cred").Return(testSession(), nil)

	_, err := fx.service.GoogleSignIn(ctx, usecase.GoogleSignInInput{State: state, Credential: "cred"})
	require.NoError(t, err)
	assert.Equal(t, "token-1", fx.state.AccessToken())
}

func TestAuthService_Logout_ClearsStateEvenWhenBackendFails(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.state.Auth.Set(testSession())
	fx.state.Cart.SetItems([]entity.CartItem{{ID: "c1", Quantity: 1}}, nil)
	fx.state.Wishlist.SetItems([]entity.WishlistItem{{ID: "w1", ProductID: "p1"}}, nil)

	fx.authRepo.EXPECT().Logout(ctx).Return(errors.New("offline"))

	require.NoError(t, fx.service.Logout(ctx))
	assert.Nil(t, fx.state.Auth.Get())
	assert.Empty(t, fx.state.Cart.Items())
	assert.Empty(t, fx.state.Wishlist.Items())
}

func TestAuthService_Me_RequiresSession(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Me(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestAuthService_Me_RefreshesUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.state.Auth.Set(testSession())
	fx.authRepo.EXPECT().Me(ctx).Return(&entity.User{ID: "u1", FirstName: "Ana", Role: entity.RoleVendor}, nil)

	user, err := fx.service.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.FirstName)
	assert.Equal(t, entity.RoleVendor, fx.state.CurrentUser().Role)
	assert.Equal(t, "token-1", fx.state.AccessToken())
}

func TestAuthService_Roles(t *testing.T) {
	tests := []struct {
		name   string
		claims *entity.TokenClaims
		err    error
		want   entity.Roles
	}{
		{
			name:   "token roles plus user role",
			claims: &entity.TokenClaims{Roles: entity.Roles{entity.RoleAdmin}},
			want:   entity.Roles{entity.RoleAdmin, entity.RoleCustomer},
		},
		{
			name:   "expired token",
			claims: &entity.TokenClaims{Roles: entity.Roles{entity.RoleAdmin}, ExpiresAt: time.Now().Add(-time.Minute)},
			want:   nil,
		},
		{
			name: "unreadable token falls back to user role",
			err:  errors.New("malformed"),
			want: entity.Roles{entity.RoleCustomer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			fx.state.Auth.Set(testSession())
			fx.inspector.EXPECT().Inspect("token-1").Return(tt.claims, tt.err)

			assert.Equal(t, tt.want, fx.service.Roles())
		})
	}
}

func TestAuthService_Roles_SignedOut(t *testing.T) {
	fx := createTestAuthService(t)

	assert.Nil(t, fx.service.Roles())
}
