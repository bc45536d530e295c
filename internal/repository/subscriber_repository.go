package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/foxuse/showcase/internal/database"
	"github.com/foxuse/showcase/internal/model"
	"github.com/lib/pq"
)

// SubscriberRepository handles mailing list persistence in PostgreSQL
type SubscriberRepository struct {
	db *database.Postgres
}

// NewSubscriberRepository creates a new SubscriberRepository
func NewSubscriberRepository(db *database.Postgres) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// List returns all subscribers, newest first
func (r *SubscriberRepository) List(ctx context.Context) ([]model.Subscriber, error) {
	query := `
		SELECT id, email, created_at
		FROM subscribers
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := []model.Subscriber{}
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subscribers: %w", err)
	}
	return subscribers, nil
}

// ExistsByEmail checks if a subscriber with the given email exists
func (r *SubscriberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM subscribers WHERE email = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new subscriber and fills in its id and creation time.
// A concurrent subscribe of the same email surfaces as ErrDuplicate via
// the unique constraint rather than a generic failure.
func (r *SubscriberRepository) Create(ctx context.Context, subscriber *model.Subscriber) error {
	query := `
		INSERT INTO subscribers (email)
		VALUES ($1)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, subscriber.Email).
		Scan(&subscriber.ID, &subscriber.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create subscriber: %w", err)
	}
	return nil
}
