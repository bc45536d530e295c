package model

import "time"

// Product status values shown on the public showcase
const (
	ProductStatusPlanning   = "Planning"
	ProductStatusInProgress = "In Progress"
	ProductStatusLaunched   = "Launched"
)

// Product represents a showcased product
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	Link        *string   `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
}
