package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/store"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	authRepo  repository.AuthRepository
	inspector service.TokenInspector
	oauth     service.OAuthService
	state     *store.Store
	logger    *slog.Logger
	now       func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	authRepo repository.AuthRepository,
	inspector service.TokenInspector,
	oauth service.OAuthService,
	state *store.Store,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		authRepo:  authRepo,
		inspector: inspector,
		oauth:     oauth,
		state:     state,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login signs in with email and password and stores the session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*entity.Session, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	srv.state.Auth.Begin()

	session, err := srv.authRepo.Login(ctx, email, input.Password)
	if err != nil {
		srv.state.Auth.Fail(err)

		return nil, fmt.Errorf("failed to login: %w", err)
	}

	srv.state.Auth.Set(session)
	srv.log(ctx).Info("signed in", slog.String("method", "password"))

	return session, nil
}

// BeginGoogleSignIn creates a one-time state and the matching authorization URL.
func (srv *authService) BeginGoogleSignIn() (string, string) {
	state := srv.oauth.NewState()

	return srv.oauth.BuildAuthorizationURL(state), state
}

// GoogleSignIn exchanges the Google credential for a session. A context cancelled
// at any point leaves the stored session untouched.
func (srv *authService) GoogleSignIn(ctx context.Context, input usecase.GoogleSignInInput) (*entity.Session, error) {
	if !srv.oauth.ValidateState(input.State) {
		return nil, domainerrors.ErrOAuthStateInvalid
	}
	if strings.TrimSpace(input.Credential) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("credential is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "google sign-in cancelled")
	}

	srv.state.Auth.Begin()

	session, err := srv.authRepo.GoogleLogin(ctx, input.Credential)
	if err != nil {
		srv.state.Auth.Fail(err)

		return nil, fmt.Errorf("failed to sign in with google: %w", err)
	}

	if err := ctx.Err(); err != nil {
		srv.state.Auth.Fail(err)

		return nil, errors.Wrap(err, "google sign-in cancelled")
	}

	srv.state.Auth.Set(session)
	srv.log(ctx).Info("signed in", slog.String("method", "google"))

	return session, nil
}

// Logout ends the backend session and clears every user slice. Local state is
// cleared even when the backend call fails.
func (srv *authService) Logout(ctx context.Context) error {
	if srv.state.AccessToken() != "" {
		if err := srv.authRepo.Logout(ctx); err != nil {
			srv.log(ctx).Warn("backend logout failed", slog.Any("error", err))
		}
	}

	srv.state.ResetUserState()
	srv.log(ctx).Info("signed out")

	return nil
}

// Me refreshes the signed-in user.
func (srv *authService) Me(ctx context.Context) (*entity.User, error) {
	session := srv.state.Auth.Get()
	if !session.IsAuthenticated() {
		return nil, domainerrors.ErrNotAuthenticated
	}

	srv.state.Auth.Begin()

	user, err := srv.authRepo.Me(ctx)
	if err != nil {
		srv.state.Auth.Fail(err)

		return nil, fmt.Errorf("failed to load current user: %w", err)
	}

	session.User = user
	srv.state.Auth.Set(session)

	return user, nil
}

// Roles merges the token's role claims with the stored user's role.
// An expired token yields no roles.
func (srv *authService) Roles() entity.Roles {
	session := srv.state.Auth.Get()
	if !session.IsAuthenticated() {
		return nil
	}

	var roles entity.Roles
	claims, err := srv.inspector.Inspect(session.AccessToken)
	switch {
	case err != nil:
		srv.logger.Debug("access token unreadable", slog.Any("error", err))
	case claims.Expired(srv.now()):
		return nil
	default:
		roles = append(roles, claims.Roles...)
	}

	if session.User != nil && session.User.Role.IsValid() && !roles.Contains(session.User.Role) {
		roles = append(roles, session.User.Role)
	}

	return roles
}
