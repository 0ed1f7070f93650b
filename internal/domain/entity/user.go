package entity

import "time"

// AccountStatus is the lifecycle state of an account as reported by the backend.
type AccountStatus string

const (
	AccountStatusActive          AccountStatus = "active"
	AccountStatusInactive        AccountStatus = "inactive"
	AccountStatusSuspended       AccountStatus = "suspended"
	AccountStatusPendingDeletion AccountStatus = "pending_deletion"
	AccountStatusDeleted         AccountStatus = "deleted"
)

// IsValid checks if the AccountStatus is a known value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusActive, AccountStatusInactive, AccountStatusSuspended,
		AccountStatusPendingDeletion, AccountStatusDeleted:
		return true
	default:
		return false
	}
}

// VendorApplicationStatus is the KYC review outcome stored on the user record.
type VendorApplicationStatus string

const (
	VendorApplicationNone     VendorApplicationStatus = ""
	VendorApplicationPending  VendorApplicationStatus = "pending"
	VendorApplicationApproved VendorApplicationStatus = "approved"
	VendorApplicationRejected VendorApplicationStatus = "rejected"
)

// User is the identity and account-status record of a marketplace account.
// The backend owns it; the client keeps a read cache for listing pages.
type User struct {
	ID            string                  `json:"id"`
	FirstName     string                  `json:"firstName"`
	LastName      string                  `json:"lastName"`
	Email         string                  `json:"email"`
	Phone         string                  `json:"phone,omitempty"`
	Role          Role                    `json:"role"`
	AccountStatus AccountStatus           `json:"accountStatus"`
	VendorStatus  VendorApplicationStatus `json:"vendorStatus,omitempty"`
	EmailVerified bool                    `json:"emailVerified"`
	Avatar        string                  `json:"avatar,omitempty"`
	Country       string                  `json:"country,omitempty"`
	City          string                  `json:"city,omitempty"`
	LastLoginAt   *time.Time              `json:"lastLoginAt,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

// FullName joins first and last name, skipping empty parts.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// UserFilter narrows an admin user listing.
type UserFilter struct {
	Role   Role
	Status AccountStatus
	Search string
	Page   int
	Limit  int
}
