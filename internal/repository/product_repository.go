package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/foxuse/showcase/internal/database"
	"github.com/foxuse/showcase/internal/model"
)

// ProductRepository handles product persistence in PostgreSQL
type ProductRepository struct {
	db *database.Postgres
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *database.Postgres) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns products newest first, optionally filtered by exact category
func (r *ProductRepository) List(ctx context.Context, category string) ([]model.Product, error) {
	query := `
		SELECT id, name, description, status, category, link, created_at
		FROM products
		WHERE ($1 = '' OR category = $1)
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.Category, &p.Link, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a product by id
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT id, name, description, status, category, link, created_at
		FROM products
		WHERE id = $1
	`
	var p model.Product
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.Category, &p.Link, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

// Create inserts a new product and fills in its id and creation time
func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (name, description, status, category, link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		product.Name,
		product.Description,
		product.Status,
		product.Category,
		product.Link,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of a product
func (r *ProductRepository) Update(ctx context.Context, product *model.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, status = $3, category = $4, link = $5
		WHERE id = $6
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		product.Name,
		product.Description,
		product.Status,
		product.Category,
		product.Link,
		product.ID,
	).Scan(&product.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete removes a product
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
