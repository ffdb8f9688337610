// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// CareTaskFilter narrows care task listings.
type CareTaskFilter struct {
	ClientID      uuid.UUID
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	ActiveOnly    bool
}

// CareTaskRepository defines the interface for care task persistence operations.
type CareTaskRepository interface {
	// Create creates a new care task in the database.
	Create(ctx context.Context, task *entity.CareTask) error

	// FindByID retrieves a care task by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CareTask, error)

	// List retrieves care tasks matching the filter, ordered by start date.
	List(ctx context.Context, filter CareTaskFilter) ([]*entity.CareTask, error)

	// FindActiveRecurring retrieves all active recurring tasks across clients.
	// Used by the background sweep that materializes upcoming executions.
	FindActiveRecurring(ctx context.Context) ([]*entity.CareTask, error)

	// Update updates an existing care task in the database.
	Update(ctx context.Context, task *entity.CareTask) error

	// Delete soft-deletes a care task.
	Delete(ctx context.Context, id uuid.UUID) error
}
