package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendorStatus is the moderation state of a vendor business profile.
type VendorStatus string

const (
	VendorStatusPending     VendorStatus = "pending"
	VendorStatusActive      VendorStatus = "active"
	VendorStatusSuspended   VendorStatus = "suspended"
	VendorStatusDeactivated VendorStatus = "deactivated"
	VendorStatusDeleted     VendorStatus = "deleted"
)

// VendorStatuses lists every moderation status in display order.
var VendorStatuses = []VendorStatus{
	VendorStatusPending,
	VendorStatusActive,
	VendorStatusSuspended,
	VendorStatusDeactivated,
	VendorStatusDeleted,
}

// IsValid checks if the VendorStatus is a known value.
func (s VendorStatus) IsValid() bool {
	switch s {
	case VendorStatusPending, VendorStatusActive, VendorStatusSuspended,
		VendorStatusDeactivated, VendorStatusDeleted:
		return true
	default:
		return false
	}
}

// BusinessAddress is the postal address of a vendor business.
type BusinessAddress struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// VendorProfile holds the business information of a vendor account.
// ID equals the owning user's ID.
type VendorProfile struct {
	ID            string          `json:"id"`
	BusinessName  string          `json:"businessName"`
	BusinessEmail string          `json:"businessEmail,omitempty"`
	BusinessPhone string          `json:"businessPhone,omitempty"`
	Description   string          `json:"description,omitempty"`
	Logo          string          `json:"logo,omitempty"`
	Address       BusinessAddress `json:"address"`
	Status        VendorStatus    `json:"status"`
	IsVerified    bool            `json:"isVerified"`
	Rating        float64         `json:"rating"`
	FollowerCount int             `json:"followerCount"`
	TotalProducts int             `json:"totalProducts"`
	TotalSales    int             `json:"totalSales"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CombinedVendor is the admin-facing merge of a vendor-role user and its
// vendor profile. It is derived on demand and never persisted.
type CombinedVendor struct {
	ID               string                  `json:"id"`
	FirstName        string                  `json:"firstName"`
	LastName         string                  `json:"lastName"`
	FullName         string                  `json:"fullName"`
	Email            string                  `json:"email"`
	Phone            string                  `json:"phone,omitempty"`
	Avatar           string                  `json:"avatar,omitempty"`
	AccountStatus    AccountStatus           `json:"accountStatus"`
	VendorStatus     VendorApplicationStatus `json:"vendorStatus,omitempty"`
	EmailVerified    bool                    `json:"emailVerified"`
	LastLoginAt      *time.Time              `json:"lastLoginAt,omitempty"`
	JoinedAt         time.Time               `json:"joinedAt"`
	BusinessName     string                  `json:"businessName"`
	BusinessEmail    string                  `json:"businessEmail,omitempty"`
	BusinessPhone    string                  `json:"businessPhone,omitempty"`
	Description      string                  `json:"description,omitempty"`
	Logo             string                  `json:"logo,omitempty"`
	Country          string                  `json:"country,omitempty"`
	City             string                  `json:"city,omitempty"`
	Status           VendorStatus            `json:"status"`
	IsVerified       bool                    `json:"isVerified"`
	Rating           float64                 `json:"rating"`
	FollowerCount    int                     `json:"followerCount"`
	TotalProducts    int                     `json:"totalProducts"`
	TotalSales       int                     `json:"totalSales"`
	TotalRevenue     decimal.Decimal         `json:"totalRevenue"`
	HasVendorProfile bool                    `json:"hasVendorProfile"`
}

// CombinedVendorStats aggregates a combined vendor list for the admin dashboard.
type CombinedVendorStats struct {
	Total         int                  `json:"total"`
	ByStatus      map[VendorStatus]int `json:"byStatus"`
	WithProfile   int                  `json:"withProfile"`
	TotalProducts int                  `json:"totalProducts"`
	TotalSales    int                  `json:"totalSales"`
	TotalRevenue  decimal.Decimal      `json:"totalRevenue"`
	AverageRating float64              `json:"averageRating"`
}

// VendorTabAll selects every status in the admin vendor tabs.
const VendorTabAll = "all"
