// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// ClientRepository defines the interface for care recipient persistence operations.
type ClientRepository interface {
	// Create creates a new client in the database.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a client by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// FindByUserID retrieves all clients belonging to a caregiver.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Client, error)

	// Update updates an existing client in the database.
	Update(ctx context.Context, client *entity.Client) error

	// Delete soft-deletes a client.
	Delete(ctx context.Context, id uuid.UUID) error
}
