package view

import (
	"testing"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)

	return &d
}

func TestSubtotal_UsesSalePriceWhenPresent(t *testing.T) {
	items := []entity.CartItem{
		{ID: "1", Quantity: 2, Price: dec("10.00")},
		{ID: "2", Quantity: 3, Price: dec("8.00"), SalePrice: decPtr("5.50")},
		{ID: "3", Quantity: 1, Price: dec("0.10"), SalePrice: decPtr("0.20")},
	}

	assert.True(t, dec("36.70").Equal(Subtotal(items)), Subtotal(items).String())
	assert.Equal(t, 6, ItemCount(items))
}

func TestSubtotal_RecomputedAfterEveryMutation(t *testing.T) {
	items := []entity.CartItem{{ID: "1", Quantity: 1, Price: dec("3.33")}}
	assert.True(t, dec("3.33").Equal(Subtotal(items)))

	items = append(items, entity.CartItem{ID: "2", Quantity: 2, Price: dec("1.00"), SalePrice: decPtr("0.50")})
	assert.True(t, dec("4.33").Equal(Subtotal(items)))

	items[0].Quantity = 3
	assert.True(t, dec("10.99").Equal(Subtotal(items)))

	items = items[1:]
	assert.True(t, dec("1.00").Equal(Subtotal(items)))

	assert.True(t, decimal.Zero.Equal(Subtotal(nil)))
	assert.Equal(t, 0, ItemCount(nil))
}

func TestSummarizeCart(t *testing.T) {
	summary := SummarizeCart(nil)
	assert.NotNil(t, summary.Items)
	assert.Equal(t, 0, summary.ItemCount)
}

func TestUnreadCounts(t *testing.T) {
	assert.Equal(t, 1, UnreadMessages([]entity.InboxMessage{{IsRead: true}, {IsRead: false}}))
	assert.Equal(t, 2, UnreadNotifications([]entity.Notification{{}, {}, {IsRead: true}}))
}

func vendorUsers() []entity.User {
	joined := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	return []entity.User{
		{ID: "u1", FirstName: "Alice", LastName: "Lin", Email: "alice@example.com", Role: entity.RoleVendor, AccountStatus: entity.AccountStatusActive, CreatedAt: joined},
		{ID: "u2", FirstName: "Bob", LastName: "Chen", Email: "bob@example.com", Role: entity.RoleVendor, AccountStatus: entity.AccountStatusSuspended, Country: "Japan"},
		{ID: "u3", FirstName: "Cara", LastName: "Wu", Email: "cara@example.com", Role: entity.RoleVendor, VendorStatus: entity.VendorApplicationApproved},
	}
}

func vendorProfiles() []entity.VendorProfile {
	return []entity.VendorProfile{
		{
			ID: "u1", BusinessName: "Alice Ceramics", BusinessEmail: "shop@alice.example",
			Address: entity.BusinessAddress{Country: "Taiwan", City: "Tainan"},
			Status:  entity.VendorStatusActive, Rating: 4.5, TotalProducts: 12, TotalSales: 30,
			TotalRevenue: dec("1200.50"),
		},
		{ID: "unrelated", BusinessName: "Ghost", Status: entity.VendorStatusActive},
	}
}

func TestCombineVendors_JoinAndPlaceholders(t *testing.T) {
	combined := CombineVendors(vendorUsers(), vendorProfiles())
	require.Len(t, combined, 3)

	alice := combined[0]
	assert.True(t, alice.HasVendorProfile)
	assert.Equal(t, "Alice Ceramics", alice.BusinessName)
	assert.Equal(t, "Alice Lin", alice.FullName)
	assert.Equal(t, "alice@example.com", alice.Email)
	assert.Equal(t, "Taiwan", alice.Country)
	assert.Equal(t, 12, alice.TotalProducts)

	bob := combined[1]
	assert.False(t, bob.HasVendorProfile)
	assert.Equal(t, "Bob's Store", bob.BusinessName)
	assert.Equal(t, 0, bob.TotalProducts)
	assert.True(t, decimal.Zero.Equal(bob.TotalRevenue))
	assert.Equal(t, entity.VendorStatusSuspended, bob.Status)
	assert.Equal(t, "Japan", bob.Country)

	assert.Equal(t, entity.VendorStatusActive, combined[2].Status)
}

func TestCombineVendors_Empty(t *testing.T) {
	assert.Empty(t, CombineVendors(nil, vendorProfiles()))
}

func TestPlaceholderStatus(t *testing.T) {
	tests := []struct {
		name string
		user entity.User
		want entity.VendorStatus
	}{
		{name: "pending application", user: entity.User{VendorStatus: entity.VendorApplicationPending, AccountStatus: entity.AccountStatusSuspended}, want: entity.VendorStatusPending},
		{name: "approved application", user: entity.User{VendorStatus: entity.VendorApplicationApproved}, want: entity.VendorStatusActive},
		{name: "suspended account", user: entity.User{AccountStatus: entity.AccountStatusSuspended}, want: entity.VendorStatusSuspended},
		{name: "inactive account", user: entity.User{AccountStatus: entity.AccountStatusInactive}, want: entity.VendorStatusDeactivated},
		{name: "deleted account", user: entity.User{AccountStatus: entity.AccountStatusDeleted}, want: entity.VendorStatusDeleted},
		{name: "rejected application defaults to pending", user: entity.User{VendorStatus: entity.VendorApplicationRejected, AccountStatus: entity.AccountStatusActive}, want: entity.VendorStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlaceholderStatus(&tt.user))
		})
	}
}

func TestCalculateCombinedStats(t *testing.T) {
	vendors := []entity.CombinedVendor{
		{Status: entity.VendorStatusActive, Rating: 4.5, TotalProducts: 10, TotalSales: 3, TotalRevenue: dec("100.10"), HasVendorProfile: true},
		{Status: entity.VendorStatusActive, Rating: 4.0, TotalProducts: 5, TotalRevenue: dec("50.05"), HasVendorProfile: true},
		{Status: entity.VendorStatusPending, Rating: 3.333, TotalRevenue: decimal.Zero},
	}

	stats := CalculateCombinedStats(vendors)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[entity.VendorStatusActive])
	assert.Equal(t, 1, stats.ByStatus[entity.VendorStatusPending])
	assert.Equal(t, 0, stats.ByStatus[entity.VendorStatusDeleted])
	assert.Equal(t, 2, stats.WithProfile)
	assert.Equal(t, 15, stats.TotalProducts)
	assert.Equal(t, 3, stats.TotalSales)
	assert.True(t, dec("150.15").Equal(stats.TotalRevenue))
	assert.InDelta(t, 3.94, stats.AverageRating, 1e-9)
}

func TestCalculateCombinedStats_Empty(t *testing.T) {
	stats := CalculateCombinedStats(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Zero(t, stats.AverageRating)
	assert.Len(t, stats.ByStatus, len(entity.VendorStatuses))
}

func TestFilterCombinedVendors_NoFilterReturnsInput(t *testing.T) {
	combined := CombineVendors(vendorUsers(), vendorProfiles())

	assert.Equal(t, combined, FilterCombinedVendors(combined, "", nil, entity.VendorTabAll))
	assert.Equal(t, combined, FilterCombinedVendors(combined, "  ", []entity.VendorStatus{}, ""))
}

func TestFilterCombinedVendors_Predicates(t *testing.T) {
	combined := CombineVendors(vendorUsers(), vendorProfiles())

	tests := []struct {
		name     string
		search   string
		statuses []entity.VendorStatus
		tab      string
		wantIDs  []string
	}{
		{name: "tab exact status", tab: "active", wantIDs: []string{"u1", "u3"}},
		{name: "search business name case-insensitive", search: "CERAMICS", tab: "all", wantIDs: []string{"u1"}},
		{name: "search business email", search: "shop@alice", wantIDs: []string{"u1"}},
		{name: "search city", search: "tainan", wantIDs: []string{"u1"}},
		{name: "search country", search: "japan", wantIDs: []string{"u2"}},
		{name: "search full name", search: "cara wu", wantIDs: []string{"u3"}},
		{name: "status multi-select", statuses: []entity.VendorStatus{entity.VendorStatusSuspended, entity.VendorStatusPending}, wantIDs: []string{"u2"}},
		{name: "predicates are ANDed", search: "alice", tab: "suspended", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCombinedVendors(combined, tt.search, tt.statuses, tt.tab)

			ids := make([]string, 0, len(got))
			for _, v := range got {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestBuildTaxonomy(t *testing.T) {
	categories := []entity.Category{{ID: "c1", Name: "Clothing"}, {ID: "c2", Name: "Home"}}
	subcategories := []entity.Subcategory{
		{ID: "s1", CategoryID: "c1", Name: "Shirts"},
		{ID: "s2", CategoryID: "missing", Name: "Lost"},
	}
	attributes := []entity.Attribute{
		{ID: "a1", CategoryID: "c1", Name: "Material"},
		{ID: "a2", SubcategoryID: "s1", Name: "Sleeve"},
		{ID: "a3", SubcategoryID: "s2", Name: "Orphan"},
	}
	productTypes := []entity.ProductType{
		{ID: "p1", SubcategoryID: "s1", Name: "T-shirt"},
		{ID: "p2", SubcategoryID: "nope", Name: "Lost type"},
	}

	tree := BuildTaxonomy(categories, subcategories, attributes, productTypes)

	require.Len(t, tree.Categories, 2)
	clothing := tree.Categories[0]
	require.Len(t, clothing.Subcategories, 1)
	assert.Equal(t, "Material", clothing.Attributes[0].Name)
	assert.Equal(t, "Sleeve", clothing.Subcategories[0].Attributes[0].Name)
	assert.Equal(t, "T-shirt", clothing.Subcategories[0].ProductTypes[0].Name)
	assert.Empty(t, tree.Categories[1].Subcategories)

	assert.Equal(t, []entity.Subcategory{subcategories[1]}, tree.OrphanSubcategories)
	assert.Equal(t, []entity.Attribute{attributes[2]}, tree.OrphanAttributes)
	assert.Equal(t, []entity.ProductType{productTypes[1]}, tree.OrphanProductTypes)
}
