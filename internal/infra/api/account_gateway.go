package api

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
)

type authGateway struct {
	client *Client
}

// NewAuthRepository returns the /auth gateway.
func NewAuthRepository(client *Client) repository.AuthRepository {
	return &authGateway{client: client}
}

// sessionPayload covers the token field names used across auth endpoints.
type sessionPayload struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int64        `json:"expiresIn"`
}

func (p *sessionPayload) session(now time.Time) (*entity.Session, error) {
	token := p.AccessToken
	if token == "" {
		token = p.Token
	}
	if token == "" {
		return nil, errors.New("auth response has no access token")
	}

	session := &entity.Session{
		User:         p.User,
		AccessToken:  token,
		RefreshToken: p.RefreshToken,
	}
	if p.ExpiresIn > 0 {
		session.ExpiresAt = now.Add(time.Duration(p.ExpiresIn) * time.Second)
	}

	return session, nil
}

func (g *authGateway) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	raw, err := g.client.Post(ctx, "/auth/login", map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	payload, err := DecodeOne[sessionPayload](raw)
	if err != nil {
		return nil, err
	}

	return payload.session(time.Now())
}

func (g *authGateway) GoogleLogin(ctx context.Context, credential string) (*entity.Session, error) {
	raw, err := g.client.Post(ctx, "/auth/google", map[string]string{"credential": credential})
	if err != nil {
		return nil, err
	}

	payload, err := DecodeOne[sessionPayload](raw)
	if err != nil {
		return nil, err
	}

	return payload.session(time.Now())
}

func (g *authGateway) Logout(ctx context.Context) error {
	_, err := g.client.Post(ctx, "/auth/logout", nil)

	return err
}

func (g *authGateway) Me(ctx context.Context) (*entity.User, error) {
	raw, err := g.client.Get(ctx, "/auth/me", nil)
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.User](raw, "user")
}

type deviceSessionGateway struct {
	client *Client
}

// NewDeviceSessionRepository returns the /device-sessions gateway.
func NewDeviceSessionRepository(client *Client) repository.DeviceSessionRepository {
	return &deviceSessionGateway{client: client}
}

func (g *deviceSessionGateway) List(ctx context.Context) ([]entity.DeviceSession, error) {
	return listAll[entity.DeviceSession](ctx, g.client, "/device-sessions")
}

func (g *deviceSessionGateway) Revoke(ctx context.Context, id string) error {
	_, err := g.client.Delete(ctx, resource("/device-sessions", id))

	return err
}

func (g *deviceSessionGateway) RevokeOthers(ctx context.Context) error {
	_, err := g.client.Delete(ctx, "/device-sessions")

	return err
}

type addressGateway struct {
	client *Client
}

// NewAddressRepository returns the /addresses gateway.
func NewAddressRepository(client *Client) repository.AddressRepository {
	return &addressGateway{client: client}
}

func (g *addressGateway) List(ctx context.Context) ([]entity.Address, error) {
	return listAll[entity.Address](ctx, g.client, "/addresses")
}

func (g *addressGateway) Create(ctx context.Context, address entity.Address) (*entity.Address, error) {
	raw, err := g.client.Post(ctx, "/addresses", address)
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.Address](raw, "address")
}

func (g *addressGateway) Update(ctx context.Context, id string, address entity.Address) (*entity.Address, error) {
	raw, err := g.client.Put(ctx, resource("/addresses", id), address)
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.Address](raw, "address")
}

func (g *addressGateway) Delete(ctx context.Context, id string) error {
	_, err := g.client.Delete(ctx, resource("/addresses", id))

	return err
}

func (g *addressGateway) SetDefault(ctx context.Context, id string) (*entity.Address, error) {
	raw, err := g.client.Patch(ctx, resource("/addresses", id, "default"), nil)
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.Address](raw, "address")
}

type inboxGateway struct {
	client *Client
}

// NewInboxRepository returns the /inbox gateway.
func NewInboxRepository(client *Client) repository.InboxRepository {
	return &inboxGateway{client: client}
}

func (g *inboxGateway) List(ctx context.Context) ([]entity.InboxMessage, error) {
	return listAll[entity.InboxMessage](ctx, g.client, "/inbox")
}

func (g *inboxGateway) MarkRead(ctx context.Context, id string) error {
	_, err := g.client.Patch(ctx, resource("/inbox", id, "read"), nil)

	return err
}

func (g *inboxGateway) Delete(ctx context.Context, id string) error {
	_, err := g.client.Delete(ctx, resource("/inbox", id))

	return err
}

type notificationGateway struct {
	client *Client
}

// NewNotificationRepository returns the /notifications gateway.
func NewNotificationRepository(client *Client) repository.NotificationRepository {
	return &notificationGateway{client: client}
}

func (g *notificationGateway) List(ctx context.Context) ([]entity.Notification, error) {
	return listAll[entity.Notification](ctx, g.client, "/notifications")
}

func (g *notificationGateway) MarkRead(ctx context.Context, id string) error {
	_, err := g.client.Patch(ctx, resource("/notifications", id, "read"), nil)

	return err
}

func (g *notificationGateway) MarkAllRead(ctx context.Context) error {
	_, err := g.client.Patch(ctx, "/notifications/read-all", nil)

	return err
}

type kycGateway struct {
	client *Client
}

// NewKYCRepository returns the /kyc gateway.
func NewKYCRepository(client *Client) repository.KYCRepository {
	return &kycGateway{client: client}
}

func (g *kycGateway) SendEmailCode(ctx context.Context, email string) error {
	_, err := g.client.Post(ctx, "/kyc/email/send-code", map[string]string{"email": email})

	return err
}

func (g *kycGateway) VerifyEmail(ctx context.Context, email, code string) error {
	_, err := g.client.Post(ctx, "/kyc/email/verify", map[string]string{"email": email, "code": code})

	return err
}

func (g *kycGateway) Submit(ctx context.Context, submission entity.KYCSubmission) (*entity.KYCApplication, error) {
	raw, err := g.client.Post(ctx, "/kyc/submit", submission)
	if err != nil {
		return nil, err
	}

	if isEmpty(raw) {
		return &entity.KYCApplication{Status: string(entity.KYCStatusSubmitted)}, nil
	}

	return DecodeOne[entity.KYCApplication](raw, "application", "kyc")
}
