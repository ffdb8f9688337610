// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
	"github.com/scheduling-of-care/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.CareCategory) error {
	categoryModel := model.CareCategoryModelFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	return result.Error
}

// FindByID retrieves a category by its ID, subcategories included.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CareCategory, error) {
	var categoryModel model.CareCategoryModel
	result := r.db.WithContext(ctx).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Where("id = ?", id).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByClientID retrieves all categories for a client ordered by display order.
func (r *categoryRepository) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.CareCategory, error) {
	var categoryModels []model.CareCategoryModel
	result := r.db.WithContext(ctx).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Where("client_id = ?", clientID).
		Order("display_order ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.CareCategory, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, categoryModels[i].ToEntity())
	}
	return categories, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.CareCategory) error {
	categoryModel := model.CareCategoryModelFromEntity(category)
	result := r.db.WithContext(ctx).
		Model(&model.CareCategoryModel{}).
		Where("id = ?", categoryModel.ID).
		Updates(map[string]interface{}{
			"name":          categoryModel.Name,
			"color":         categoryModel.Color,
			"annual_budget": categoryModel.AnnualBudget,
			"display_order": categoryModel.DisplayOrder,
			"updated_at":    categoryModel.UpdatedAt,
		})
	return result.Error
}

// Delete soft-deletes a category and removes its subcategories.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.SubcategoryModel{}, "category_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.CareCategoryModel{}, "id = ?", id).Error
	})
}

// CreateSubcategory creates a new subcategory under a category.
func (r *categoryRepository) CreateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error {
	subcategoryModel := model.SubcategoryModelFromEntity(subcategory)
	result := r.db.WithContext(ctx).Create(subcategoryModel)
	return result.Error
}

// FindSubcategoryByID retrieves a subcategory by its ID.
func (r *categoryRepository) FindSubcategoryByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error) {
	var subcategoryModel model.SubcategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&subcategoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSubcategoryNotFound
		}
		return nil, result.Error
	}
	return subcategoryModel.ToEntity(), nil
}

// UpdateSubcategory updates an existing subcategory.
func (r *categoryRepository) UpdateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error {
	subcategoryModel := model.SubcategoryModelFromEntity(subcategory)
	result := r.db.WithContext(ctx).
		Model(&model.SubcategoryModel{}).
		Where("id = ?", subcategoryModel.ID).
		Updates(map[string]interface{}{
			"name":          subcategoryModel.Name,
			"annual_budget": subcategoryModel.AnnualBudget,
			"display_order": subcategoryModel.DisplayOrder,
			"updated_at":    subcategoryModel.UpdatedAt,
		})
	return result.Error
}

// DeleteSubcategory removes a subcategory.
func (r *categoryRepository) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SubcategoryModel{}, "id = ?", id)
	return result.Error
}
