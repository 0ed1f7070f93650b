package view

import (
	"math"
	"slices"
	"strings"

	"marketplace/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CombineVendors joins vendor-role users with their profiles by id.
// Users without a profile get a placeholder record with zeroed counters.
// The output follows the order of users.
func CombineVendors(users []entity.User, profiles []entity.VendorProfile) []entity.CombinedVendor {
	byID := make(map[string]*entity.VendorProfile, len(profiles))
	for i := range profiles {
		byID[profiles[i].ID] = &profiles[i]
	}

	combined := make([]entity.CombinedVendor, 0, len(users))
	for i := range users {
		user := &users[i]
		if profile, ok := byID[user.ID]; ok {
			combined = append(combined, mergeVendor(user, profile))
		} else {
			combined = append(combined, placeholderVendor(user))
		}
	}

	return combined
}

func identity(user *entity.User) entity.CombinedVendor {
	return entity.CombinedVendor{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		FullName:      user.FullName(),
		Email:         user.Email,
		Phone:         user.Phone,
		Avatar:        user.Avatar,
		AccountStatus: user.AccountStatus,
		VendorStatus:  user.VendorStatus,
		EmailVerified: user.EmailVerified,
		LastLoginAt:   user.LastLoginAt,
		JoinedAt:      user.CreatedAt,
		Country:       user.Country,
		City:          user.City,
		TotalRevenue:  decimal.Zero,
	}
}

// mergeVendor takes identity fields from the user and business fields from the profile.
func mergeVendor(user *entity.User, profile *entity.VendorProfile) entity.CombinedVendor {
	v := identity(user)
	ApplyProfile(&v, profile)

	return v
}

// ApplyProfile overwrites the business fields of v with those of profile.
// Location falls back to the user's when the profile has none.
func ApplyProfile(v *entity.CombinedVendor, profile *entity.VendorProfile) {
	v.BusinessName = profile.BusinessName
	v.BusinessEmail = profile.BusinessEmail
	v.BusinessPhone = profile.BusinessPhone
	v.Description = profile.Description
	v.Logo = profile.Logo
	if profile.Address.Country != "" {
		v.Country = profile.Address.Country
	}
	if profile.Address.City != "" {
		v.City = profile.Address.City
	}
	v.Status = profile.Status
	v.IsVerified = profile.IsVerified
	v.Rating = profile.Rating
	v.FollowerCount = profile.FollowerCount
	v.TotalProducts = profile.TotalProducts
	v.TotalSales = profile.TotalSales
	v.TotalRevenue = profile.TotalRevenue
	v.HasVendorProfile = true
}

func placeholderVendor(user *entity.User) entity.CombinedVendor {
	v := identity(user)

	v.BusinessName = user.FirstName + "'s Store"
	v.BusinessEmail = user.Email
	v.BusinessPhone = user.Phone
	v.Status = PlaceholderStatus(user)
	v.HasVendorProfile = false

	return v
}

// PlaceholderStatus derives a moderation status for a vendor user without a profile.
func PlaceholderStatus(user *entity.User) entity.VendorStatus {
	switch {
	case user.VendorStatus == entity.VendorApplicationPending:
		return entity.VendorStatusPending
	case user.VendorStatus == entity.VendorApplicationApproved:
		return entity.VendorStatusActive
	case user.AccountStatus == entity.AccountStatusSuspended:
		return entity.VendorStatusSuspended
	case user.AccountStatus == entity.AccountStatusInactive:
		return entity.VendorStatusDeactivated
	case user.AccountStatus == entity.AccountStatusDeleted:
		return entity.VendorStatusDeleted
	default:
		return entity.VendorStatusPending
	}
}

// CalculateCombinedStats aggregates the list. AverageRating is rounded to 2 decimals
// and is 0 for an empty list.
func CalculateCombinedStats(vendors []entity.CombinedVendor) entity.CombinedVendorStats {
	stats := entity.CombinedVendorStats{
		Total:        len(vendors),
		ByStatus:     make(map[entity.VendorStatus]int, len(entity.VendorStatuses)),
		TotalRevenue: decimal.Zero,
	}
	for _, status := range entity.VendorStatuses {
		stats.ByStatus[status] = 0
	}

	ratingSum := 0.0
	for i := range vendors {
		v := &vendors[i]
		stats.ByStatus[v.Status]++
		if v.HasVendorProfile {
			stats.WithProfile++
		}
		stats.TotalProducts += v.TotalProducts
		stats.TotalSales += v.TotalSales
		stats.TotalRevenue = stats.TotalRevenue.Add(v.TotalRevenue)
		ratingSum += v.Rating
	}

	if len(vendors) > 0 {
		stats.AverageRating = math.Round(ratingSum/float64(len(vendors))*100) / 100
	}

	return stats
}

// FilterCombinedVendors keeps the vendors matching tab, search and status filter.
// An empty search, an empty status filter and the "all" tab return the input unchanged.
func FilterCombinedVendors(vendors []entity.CombinedVendor, search string, statuses []entity.VendorStatus, tab string) []entity.CombinedVendor {
	search = strings.ToLower(strings.TrimSpace(search))
	tab = strings.TrimSpace(tab)

	out := make([]entity.CombinedVendor, 0, len(vendors))
	for i := range vendors {
		v := &vendors[i]

		if tab != "" && tab != entity.VendorTabAll && string(v.Status) != tab {
			continue
		}
		if len(statuses) > 0 && !slices.Contains(statuses, v.Status) {
			continue
		}
		if search != "" && !matchesSearch(v, search) {
			continue
		}

		out = append(out, *v)
	}

	return out
}

func matchesSearch(v *entity.CombinedVendor, needle string) bool {
	for _, field := range []string{v.BusinessName, v.FullName, v.Email, v.BusinessEmail, v.Country, v.City} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}
