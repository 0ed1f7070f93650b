package entity

import "github.com/shopspring/decimal"

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalCustomers int             `json:"totalCustomers"`
	TotalVendors   int             `json:"totalVendors"`
	PendingVendors int             `json:"pendingVendors"`
	TotalOrders    int             `json:"totalOrders"`
	PendingOrders  int             `json:"pendingOrders"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
}
