// Package memory provides in-memory implementations of the repository
// store interfaces, backed by a mutex and a map. They are used as test
// doubles for the HTTP handlers and the notification service.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/foxuse/showcase/internal/model"
	"github.com/foxuse/showcase/internal/repository"
)

// ProductStore is an in-memory repository.ProductStore
type ProductStore struct {
	mu       sync.RWMutex
	nextID   int64
	products map[int64]model.Product
}

// NewProductStore creates an empty in-memory product store
func NewProductStore() *ProductStore {
	return &ProductStore{nextID: 1, products: make(map[int64]model.Product)}
}

// List returns products newest first, optionally filtered by exact category
func (s *ProductStore) List(ctx context.Context, category string) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := []model.Product{}
	for _, p := range s.products {
		if category == "" || p.Category == category {
			products = append(products, p)
		}
	}
	sortNewestFirst(products, func(p model.Product) (time.Time, int64) { return p.CreatedAt, p.ID })
	return products, nil
}

// GetByID retrieves a product by id
func (s *ProductStore) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

// Create inserts a new product and fills in its id and creation time
func (s *ProductStore) Create(ctx context.Context, product *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = s.nextID
	s.nextID++
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	s.products[product.ID] = *product
	return nil
}

// Update replaces the mutable fields of a product
func (s *ProductStore) Update(ctx context.Context, product *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.products[product.ID]
	if !ok {
		return repository.ErrNotFound
	}
	product.CreatedAt = existing.CreatedAt
	s.products[product.ID] = *product
	return nil
}

// Delete removes a product
func (s *ProductStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

// Len reports how many products are stored
func (s *ProductStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// ActivityStore is an in-memory repository.ActivityStore
type ActivityStore struct {
	mu         sync.RWMutex
	nextID     int64
	activities []model.Activity
}

// NewActivityStore creates an empty in-memory activity store
func NewActivityStore() *ActivityStore {
	return &ActivityStore{nextID: 1}
}

// ListRecent returns at most limit activities, newest first
func (s *ActivityStore) ListRecent(ctx context.Context, limit int) ([]model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := append([]model.Activity{}, s.activities...)
	sortNewestFirst(activities, func(a model.Activity) (time.Time, int64) { return a.CreatedAt, a.ID })
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

// Create appends a new activity and fills in its id and creation time
func (s *ActivityStore) Create(ctx context.Context, activity *model.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity.ID = s.nextID
	s.nextID++
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	s.activities = append(s.activities, *activity)
	return nil
}

// Len reports how many activities are stored
func (s *ActivityStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}

// SubscriberStore is an in-memory repository.SubscriberStore
type SubscriberStore struct {
	mu          sync.RWMutex
	nextID      int64
	subscribers []model.Subscriber
}

// NewSubscriberStore creates an empty in-memory subscriber store
func NewSubscriberStore() *SubscriberStore {
	return &SubscriberStore{nextID: 1}
}

// List returns all subscribers, newest first
func (s *SubscriberStore) List(ctx context.Context) ([]model.Subscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subscribers := append([]model.Subscriber{}, s.subscribers...)
	sortNewestFirst(subscribers, func(sub model.Subscriber) (time.Time, int64) { return sub.CreatedAt, sub.ID })
	return subscribers, nil
}

// ExistsByEmail checks if a subscriber with the given email exists
func (s *SubscriberStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sub := range s.subscribers {
		if sub.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Create inserts a new subscriber, enforcing email uniqueness
func (s *SubscriberStore) Create(ctx context.Context, subscriber *model.Subscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.subscribers {
		if sub.Email == subscriber.Email {
			return repository.ErrDuplicate
		}
	}
	subscriber.ID = s.nextID
	s.nextID++
	if subscriber.CreatedAt.IsZero() {
		subscriber.CreatedAt = time.Now()
	}
	s.subscribers = append(s.subscribers, *subscriber)
	return nil
}

// Len reports how many subscribers are stored
func (s *SubscriberStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

// sortNewestFirst orders records by creation time descending, breaking
// ties by id descending so insertion order is preserved
func sortNewestFirst[T any](items []T, key func(T) (time.Time, int64)) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return idi > idj
	})
}
