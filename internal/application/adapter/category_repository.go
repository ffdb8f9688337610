// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for care category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.CareCategory) error

	// FindByID retrieves a category by its ID, subcategories included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CareCategory, error)

	// FindByClientID retrieves all categories for a client ordered by display order.
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.CareCategory, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.CareCategory) error

	// Delete soft-deletes a category and its subcategories.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateSubcategory creates a new subcategory under a category.
	CreateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error

	// FindSubcategoryByID retrieves a subcategory by its ID.
	FindSubcategoryByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error)

	// UpdateSubcategory updates an existing subcategory.
	UpdateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error

	// DeleteSubcategory removes a subcategory.
	DeleteSubcategory(ctx context.Context, id uuid.UUID) error
}
