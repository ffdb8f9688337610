// Package category contains care category and subcategory use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing a client's categories.
type ListCategoriesInput struct {
	UserID   uuid.UUID
	ClientID uuid.UUID
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.CareCategory
}

// ListCategoriesUseCase handles listing categories with their subcategories.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	clientRepo   adapter.ClientRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository, clientRepo adapter.ClientRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		clientRepo:   clientRepo,
	}
}

// Execute lists all categories for the client, ordered by display order.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if _, err := authorizeClient(ctx, uc.clientRepo, input.UserID, input.ClientID); err != nil {
		return nil, err
	}

	categories, err := uc.categoryRepo.FindByClientID(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{Categories: categories}, nil
}
