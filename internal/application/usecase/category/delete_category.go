// Package category contains care category and subcategory use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Message string
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	clientRepo   adapter.ClientRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, clientRepo adapter.ClientRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		clientRepo:   clientRepo,
	}
}

// Execute soft-deletes the category and its subcategories.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	if _, err := loadOwnedCategory(ctx, uc.categoryRepo, uc.clientRepo, input.UserID, input.CategoryID); err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{Message: "Category deleted successfully"}, nil
}
