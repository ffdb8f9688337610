// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/scheduling-of-care/backend/internal/application/usecase/budget"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	"github.com/scheduling-of-care/backend/internal/integration/persistence/model"
)

// budgetRepository implements the budget.Repository interface with
// aggregate queries over executions joined to their care tasks.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) budget.Repository {
	return &budgetRepository{
		db: db,
	}
}

// spendRow is the scan target for the spend join queries.
type spendRow struct {
	CategoryID    uuid.UUID       `gorm:"column:category_id"`
	SubcategoryID *uuid.UUID      `gorm:"column:subcategory_id"`
	Amount        decimal.Decimal `gorm:"column:amount"`
}

// FindCategoriesByClientID retrieves the client's categories with
// subcategories, ordered by display order.
func (r *budgetRepository) FindCategoriesByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.CareCategory, error) {
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

// FindSpendByClientID retrieves one SpendRecord per DONE execution with a
// recorded cost, across all of the client's care tasks.
func (r *budgetRepository) FindSpendByClientID(ctx context.Context, clientID uuid.UUID) ([]budget.SpendRecord, error) {
	var rows []spendRow
	result := r.db.WithContext(ctx).
		Table("executions").
		Select("care_tasks.category_id AS category_id, care_tasks.subcategory_id AS subcategory_id, executions.actual_cost AS amount").
		Joins("JOIN care_tasks ON care_tasks.id = executions.care_task_id").
		Where("care_tasks.client_id = ?", clientID).
		Where("executions.status = ?", string(entity.ExecutionStatusDone)).
		Where("executions.actual_cost IS NOT NULL").
		Where("care_tasks.deleted_at IS NULL").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSpendRecords(rows), nil
}

// FindSpendByCategoryID retrieves spend records scoped to one category.
func (r *budgetRepository) FindSpendByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]budget.SpendRecord, error) {
	var rows []spendRow
	result := r.db.WithContext(ctx).
		Table("executions").
		Select("care_tasks.category_id AS category_id, care_tasks.subcategory_id AS subcategory_id, executions.actual_cost AS amount").
		Joins("JOIN care_tasks ON care_tasks.id = executions.care_task_id").
		Where("care_tasks.category_id = ?", categoryID).
		Where("executions.status = ?", string(entity.ExecutionStatusDone)).
		Where("executions.actual_cost IS NOT NULL").
		Where("care_tasks.deleted_at IS NULL").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSpendRecords(rows), nil
}

func toSpendRecords(rows []spendRow) []budget.SpendRecord {
	records := make([]budget.SpendRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, budget.SpendRecord{
			CategoryID:    row.CategoryID,
			SubcategoryID: row.SubcategoryID,
			Amount:        row.Amount,
		})
	}
	return records
}
