package repository

import (
	"context"
	"fmt"

	"github.com/foxuse/showcase/internal/database"
	"github.com/foxuse/showcase/internal/model"
)

// ActivityRepository handles activity feed persistence in PostgreSQL
type ActivityRepository struct {
	db *database.Postgres
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *database.Postgres) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// ListRecent returns at most limit activities, newest first
func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]model.Activity, error) {
	query := `
		SELECT id, action, product_name, category, admin_user, created_at
		FROM activities
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	activities := []model.Activity{}
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.Action, &a.ProductName, &a.Category, &a.AdminUser, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activities: %w", err)
	}
	return activities, nil
}

// Create appends a new activity and fills in its id and creation time
func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	query := `
		INSERT INTO activities (action, product_name, category, admin_user)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		activity.Action,
		activity.ProductName,
		activity.Category,
		activity.AdminUser,
	).Scan(&activity.ID, &activity.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}
