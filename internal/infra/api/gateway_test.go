package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserGateway_ListVendorsWithFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users", r.URL.Path)
		assert.Equal(t, "vendor", r.URL.Query().Get("role"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "ali", r.URL.Query().Get("search"))
		_, _ = w.Write([]byte(`{"data":{"users":[{"id":"u1","firstName":"Alice","role":"vendor"}],"pagination":{"page":2,"limit":20,"total":21,"totalPages":2}}}`))
	}, "t")

	users, pagination, err := NewUserRepository(client).List(context.Background(), entity.UserFilter{
		Role: entity.RoleVendor, Search: "ali", Page: 2, Limit: 20,
	})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].FirstName)
	assert.False(t, pagination.HasNext())
}

func TestVendorGateway_FindByIDs(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "u1,u2", r.URL.Query().Get("ids"))
		_, _ = w.Write([]byte(`{"data":[{"id":"u1","businessName":"Shop","totalRevenue":"12.50"}]}`))
	}, "")

	repo := NewVendorRepository(client)

	profiles, err := repo.FindByIDs(context.Background(), []string{"u1", "u2"})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.True(t, decimal.RequireFromString("12.5").Equal(profiles[0].TotalRevenue))

	empty, err := repo.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, 1, calls)
}

func TestCartGateway_GetShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "cart object", body: `{"data":{"id":"c1","items":[{"id":"i1","quantity":2,"price":"5"}]}}`, want: 1},
		{name: "bare items", body: `[{"id":"i1","quantity":1,"price":"5"},{"id":"i2","quantity":1,"price":"5"}]`, want: 2},
		{name: "null data", body: `{"data":{"cart":{"items":null}}}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}, "")

			cart, err := NewCartRepository(client).Get(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, cart.Items)
			assert.Len(t, cart.Items, tt.want)
		})
	}
}

func TestCartGateway_UpdateItem(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/cart/items/i1", r.URL.Path)

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 3, body["quantity"])

		_, _ = w.Write([]byte(`{"data":{"item":{"id":"i1","quantity":3,"price":"2"}}}`))
	}, "")

	item, err := NewCartRepository(client).UpdateItem(context.Background(), "i1", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
}

func TestWishlistGateway_CheckAndRemove(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/wishlist/check/p1":
			_, _ = w.Write([]byte(`{"data":{"inWishlist":true}}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/wishlist/p1":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}, "")

	repo := NewWishlistRepository(client)

	check, err := repo.Check(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, check.InWishlist)

	assert.NoError(t, repo.Remove(context.Background(), "p1"))
}

func TestAuthGateway_LoginTokenAliases(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "accessToken", body: `{"data":{"user":{"id":"u1"},"accessToken":"abc","expiresIn":3600}}`},
		{name: "token", body: `{"user":{"id":"u1"},"token":"abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			}, "")

			session, err := NewAuthRepository(client).Login(context.Background(), "a@b.c", "pw")
			require.NoError(t, err)
			assert.Equal(t, "abc", session.AccessToken)
			assert.Equal(t, "u1", session.User.ID)
		})
	}
}

func TestAuthGateway_LoginWithoutToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"user":{"id":"u1"}}}`))
	}, "")

	_, err := NewAuthRepository(client).Login(context.Background(), "a@b.c", "pw")
	assert.Error(t, err)
}

func TestKYCGateway_SubmitSnakeCase(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/api/v1/kyc/submit", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ada", body["first_name"])
		assert.Equal(t, "Ada's Shop", body["store_name"])

		_, _ = w.Write([]byte(`{"data":{"id":"k1","status":"submitted"}}`))
	}, "")

	app, err := NewKYCRepository(client).Submit(context.Background(), entity.KYCSubmission{
		FirstName: "Ada",
		StoreName: "Ada's Shop",
	})
	require.NoError(t, err)
	assert.Equal(t, "k1", app.ID)
	assert.Equal(t, 1, calls)
}

func TestCategoryGateway_ProductTypes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/product-types", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"productTypes":[{"id":"pt1","subcategoryId":"s1","name":"Tee"}]}}`))
	}, "")

	types, err := NewCategoryRepository(client).ListProductTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "s1", types[0].SubcategoryID)
}
