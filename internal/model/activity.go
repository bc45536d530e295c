package model

import "time"

// DefaultAdminUser is recorded when an activity omits the acting admin.
const DefaultAdminUser = "Admin"

// RecentActivityLimit caps how many activities the feed returns.
const RecentActivityLimit = 20

// Activity represents one entry in the append-only activity feed
type Activity struct {
	ID          int64     `json:"id"`
	Action      string    `json:"action"`
	ProductName string    `json:"productName"`
	Category    string    `json:"category"`
	AdminUser   string    `json:"adminUser"`
	CreatedAt   time.Time `json:"createdAt"`
}
