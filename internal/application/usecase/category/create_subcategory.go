// Package category contains care category and subcategory use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

// CreateSubcategoryInput represents the input for subcategory creation.
type CreateSubcategoryInput struct {
	UserID       uuid.UUID
	CategoryID   uuid.UUID
	Name         string
	AnnualBudget decimal.Decimal
	DisplayOrder int
}

// CreateSubcategoryOutput represents the output of subcategory creation.
type CreateSubcategoryOutput struct {
	Subcategory *entity.Subcategory
}

// CreateSubcategoryUseCase handles subcategory creation logic.
type CreateSubcategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	clientRepo   adapter.ClientRepository
}

// NewCreateSubcategoryUseCase creates a new CreateSubcategoryUseCase instance.
func NewCreateSubcategoryUseCase(categoryRepo adapter.CategoryRepository, clientRepo adapter.ClientRepository) *CreateSubcategoryUseCase {
	return &CreateSubcategoryUseCase{
		categoryRepo: categoryRepo,
		clientRepo:   clientRepo,
	}
}

// Execute performs the subcategory creation.
func (uc *CreateSubcategoryUseCase) Execute(ctx context.Context, input CreateSubcategoryInput) (*CreateSubcategoryOutput, error) {
	if _, err := loadOwnedCategory(ctx, uc.categoryRepo, uc.clientRepo, input.UserID, input.CategoryID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"subcategory name is required",
			domainerror.ErrSubcategoryNotFound,
		)
	}
	if len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("subcategory name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	if input.AnnualBudget.IsNegative() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNegativeBudget,
			"annual budget must not be negative",
			domainerror.ErrNegativeBudget,
		)
	}

	subcategory := entity.NewSubcategory(input.CategoryID, name, input.AnnualBudget, input.DisplayOrder)

	if err := uc.categoryRepo.CreateSubcategory(ctx, subcategory); err != nil {
		return nil, fmt.Errorf("failed to create subcategory: %w", err)
	}

	return &CreateSubcategoryOutput{Subcategory: subcategory}, nil
}
