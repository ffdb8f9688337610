// Package category contains care category and subcategory use cases.
package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

// UpdateSubcategoryInput represents the input for subcategory updates.
// Nil pointer fields are left unchanged.
type UpdateSubcategoryInput struct {
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	SubcategoryID uuid.UUID
	Name          *string
	AnnualBudget  *decimal.Decimal
	DisplayOrder  *int
}

// UpdateSubcategoryOutput represents the output of subcategory updates.
type UpdateSubcategoryOutput struct {
	Subcategory *entity.Subcategory
}

// UpdateSubcategoryUseCase handles subcategory update logic.
type UpdateSubcategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	clientRepo   adapter.ClientRepository
}

// NewUpdateSubcategoryUseCase creates a new UpdateSubcategoryUseCase instance.
func NewUpdateSubcategoryUseCase(categoryRepo adapter.CategoryRepository, clientRepo adapter.ClientRepository) *UpdateSubcategoryUseCase {
	return &UpdateSubcategoryUseCase{
		categoryRepo: categoryRepo,
		clientRepo:   clientRepo,
	}
}

// Execute performs the subcategory update.
func (uc *UpdateSubcategoryUseCase) Execute(ctx context.Context, input UpdateSubcategoryInput) (*UpdateSubcategoryOutput, error) {
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

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeMissingCategoryFields,
				"subcategory name is required",
				domainerror.ErrSubcategoryNotFound,
			)
		}
		subcategory.Name = name
	}
	if input.AnnualBudget != nil {
		if input.AnnualBudget.IsNegative() {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeNegativeBudget,
				"annual budget must not be negative",
				domainerror.ErrNegativeBudget,
			)
		}
		subcategory.AnnualBudget = *input.AnnualBudget
	}
	if input.DisplayOrder != nil {
		subcategory.DisplayOrder = *input.DisplayOrder
	}
	subcategory.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.UpdateSubcategory(ctx, subcategory); err != nil {
		return nil, fmt.Errorf("failed to update subcategory: %w", err)
	}

	return &UpdateSubcategoryOutput{Subcategory: subcategory}, nil
}
