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

// MaxClientNameLength is the maximum allowed length for client names.
const MaxClientNameLength = 100

// CreateClientInput represents the input for client creation.
type CreateClientInput struct {
	UserID            uuid.UUID
	Name              string
	DateOfBirth       *time.Time
	Notes             string
	MedicalConditions []string
}

// CreateClientOutput represents the output of client creation.
type CreateClientOutput struct {
	Client *entity.Client
}

// CreateClientUseCase handles care recipient creation logic.
type CreateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewCreateClientUseCase creates a new CreateClientUseCase instance.
func NewCreateClientUseCase(clientRepo adapter.ClientRepository) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client creation.
func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeClientNameRequired,
			"client name is required",
			domainerror.ErrClientNameRequired,
		)
	}
	if len(name) > MaxClientNameLength {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeInvalidClientPayload,
			fmt.Sprintf("client name must not exceed %d characters", MaxClientNameLength),
			domainerror.ErrClientNameRequired,
		)
	}

	client := entity.NewClient(input.UserID, name, input.DateOfBirth, input.Notes, input.MedicalConditions)

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &CreateClientOutput{Client: client}, nil
}
