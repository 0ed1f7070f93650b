package entity

import "time"

// DeviceSession is a signed-in device of the current account.
type DeviceSession struct {
	ID           string    `json:"id"`
	DeviceName   string    `json:"deviceName"`
	Platform     string    `json:"platform"`
	Browser      string    `json:"browser,omitempty"`
	IPAddress    string    `json:"ipAddress,omitempty"`
	Location     string    `json:"location,omitempty"`
	IsCurrent    bool      `json:"isCurrent"`
	LastActiveAt time.Time `json:"lastActiveAt"`
	CreatedAt    time.Time `json:"createdAt"`
}
