package api

import (
	"context"
	"net/url"
	"strings"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
)

type userGateway struct {
	client *Client
}

// NewUserRepository returns the /users gateway.
func NewUserRepository(client *Client) repository.UserRepository {
	return &userGateway{client: client}
}

func (g *userGateway) List(ctx context.Context, filter entity.UserFilter) ([]entity.User, *entity.Pagination, error) {
	q := pageQuery(url.Values{}, filter.Page, filter.Limit)
	setIfNotEmpty(q, "role", string(filter.Role))
	setIfNotEmpty(q, "status", string(filter.Status))
	setIfNotEmpty(q, "search", filter.Search)

	raw, err := g.client.Get(ctx, "/users", q)
	if err != nil {
		return nil, nil, err
	}

	return DecodeList[entity.User](raw)
}

func (g *userGateway) FindByID(ctx context.Context, id string) (*entity.User, error) {
	raw, err := g.client.Get(ctx, resource("/users", id), nil)
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.User](raw, "user")
}

func (g *userGateway) UpdateStatus(ctx context.Context, id string, status entity.AccountStatus, reason string) (*entity.User, error) {
	body := map[string]string{"status": string(status)}
	if reason != "" {
		body["reason"] = reason
	}

	raw, err := g.client.Patch(ctx, resource("/admin/users", id, "status"), body)
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.User](raw, "user")
}

type vendorGateway struct {
	client *Client
}

// NewVendorRepository returns the /vendors gateway.
func NewVendorRepository(client *Client) repository.VendorRepository {
	return &vendorGateway{client: client}
}

// FindByIDs fetches the profiles of exactly the given user ids in one call.
func (g *vendorGateway) FindByIDs(ctx context.Context, ids []string) ([]entity.VendorProfile, error) {
	if len(ids) == 0 {
		return []entity.VendorProfile{}, nil
	}

	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("limit", "0")

	raw, err := g.client.Get(ctx, "/vendors", q)
	if err != nil {
		return nil, errors.Wrap(err, "batch vendor lookup")
	}

	profiles, _, err := DecodeList[entity.VendorProfile](raw)

	return profiles, err
}

func (g *vendorGateway) FindByID(ctx context.Context, id string) (*entity.VendorProfile, error) {
	raw, err := g.client.Get(ctx, resource("/vendors", id), nil)
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.VendorProfile](raw, "vendor")
}

func (g *vendorGateway) UpdateStatus(ctx context.Context, id string, status entity.VendorStatus, reason string) (*entity.VendorProfile, error) {
	body := map[string]string{"status": string(status)}
	if reason != "" {
		body["reason"] = reason
	}

	raw, err := g.client.Patch(ctx, resource("/admin/vendors", id, "status"), body)
	if err != nil {
		return nil, err
	}

	return DecodeOne[entity.VendorProfile](raw, "vendor")
}
