package model

import "time"

// Subscriber represents one entry in the mailing list.
// Email is unique across the store.
type Subscriber struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
