// Package category contains care category and subcategory use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

// DeleteSubcategoryInput represents the input for subcategory deletion.
type DeleteSubcategoryInput struct {
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	SubcategoryID uuid.UUID
}

// DeleteSubcategoryOutput represents the output of subcategory deletion.
type DeleteSubcategoryOutput struct {
	Message string
}

// DeleteSubcategoryUseCase handles subcategory deletion logic.
type DeleteSubcategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	clientRepo   adapter.ClientRepository
}

// NewDeleteSubcategoryUseCase creates a new DeleteSubcategoryUseCase instance.
func NewDeleteSubcategoryUseCase(categoryRepo adapter.CategoryRepository, clientRepo adapter.ClientRepository) *DeleteSubcategoryUseCase {
	return &DeleteSubcategoryUseCase{
		categoryRepo: categoryRepo,
		clientRepo:   clientRepo,
	}
}

// Execute deletes the subcategory.
func (uc *DeleteSubcategoryUseCase) Execute(ctx context.Context, input DeleteSubcategoryInput) (*DeleteSubcategoryOutput, error) {
	if _, err := loadOwnedCategory(ctx, uc.categoryRepo, uc.clientRepo, input.UserID, input.CategoryID); err != nil {
		return nil, err
	}

	subcategory, err := uc.categoryRepo.FindSubcategoryByID(ctx, input.SubcategoryID)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeSubcategoryNotFound,
			"subcategory not found",
			domainerror.ErrSubcategoryNotFound,
		)
	}
	if subcategory.CategoryID != input.CategoryID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeSubcategoryWrongParent,
			"subcategory does not belong to this category",
			domainerror.ErrSubcategoryWrongCategory,
		)
	}

	if err := uc.categoryRepo.DeleteSubcategory(ctx, input.SubcategoryID); err != nil {
		return nil, fmt.Errorf("failed to delete subcategory: %w", err)
	}

	return &DeleteSubcategoryOutput{Message: "Subcategory deleted successfully"}, nil
}
