package repository

import (
	"context"

	"github.com/foxuse/showcase/internal/model"
)

// ProductStore handles product persistence. Implementations return
// ErrNotFound when the referenced id does not exist.
type ProductStore interface {
	// List returns products newest first. An empty category returns
	// all products; otherwise only exact category matches.
	List(ctx context.Context, category string) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error
}

// ActivityStore handles the append-only activity feed
type ActivityStore interface {
	// ListRecent returns at most limit activities, newest first
	ListRecent(ctx context.Context, limit int) ([]model.Activity, error)
	Create(ctx context.Context, activity *model.Activity) error
}

// SubscriberStore handles the mailing list. Create returns
// ErrDuplicate when the email is already subscribed.
type SubscriberStore interface {
	List(ctx context.Context) ([]model.Subscriber, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, subscriber *model.Subscriber) error
}
