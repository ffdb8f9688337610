// Package client contains care recipient profile use cases.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

// UpdateClientInput represents the input for client updates.
// Nil pointer fields are left unchanged.
type UpdateClientInput struct {
	UserID            uuid.UUID
	ClientID          uuid.UUID
	Name              *string
	DateOfBirth       *time.Time
	Notes             *string
	MedicalConditions []string
	IsActive          *bool
}

// UpdateClientOutput represents the output of client updates.
type UpdateClientOutput struct {
	Client *entity.Client
}

// UpdateClientUseCase handles care recipient update logic.
type UpdateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewUpdateClientUseCase creates a new UpdateClientUseCase instance.
func NewUpdateClientUseCase(clientRepo adapter.ClientRepository) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client update after checking ownership.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, input UpdateClientInput) (*UpdateClientOutput, error) {
	client, err := uc.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}

	if client.UserID != input.UserID {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeNotAuthorizedClient,
			"not authorized to access this client",
			domainerror.ErrNotAuthorizedForClient,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeClientNameRequired,
				"client name is required",
				domainerror.ErrClientNameRequired,
			)
		}
		client.Name = name
	}
	if input.DateOfBirth != nil {
		client.DateOfBirth = input.DateOfBirth
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}
	if input.MedicalConditions != nil {
		client.MedicalConditions = input.MedicalConditions
	}
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}
	client.UpdatedAt = time.Now().UTC()

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return &UpdateClientOutput{Client: client}, nil
}
