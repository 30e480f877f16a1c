package domain

import "context"

// CategoryRepository defines the interface for category-related operations
type CategoryRepository interface {
	// List retrieves all categories in id order
	List(ctx context.Context) ([]Category, error)
}

// Category represents a question category. Categories are seed data and
// read-only through the API surface.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}
