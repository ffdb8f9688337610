// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
	"github.com/scheduling-of-care/backend/internal/integration/persistence/model"
)

// executionRepository implements the adapter.ExecutionRepository interface.
type executionRepository struct {
	db *gorm.DB
}

// NewExecutionRepository creates a new execution repository instance.
func NewExecutionRepository(db *gorm.DB) adapter.ExecutionRepository {
	return &executionRepository{
		db: db,
	}
}

// Create creates a new execution in the database.
func (r *executionRepository) Create(ctx context.Context, execution *entity.Execution) error {
	executionModel := model.ExecutionModelFromEntity(execution)
	result := r.db.WithContext(ctx).Create(executionModel)
	return result.Error
}

// CreateBatch inserts a batch of executions in one transaction.
func (r *executionRepository) CreateBatch(ctx context.Context, executions []*entity.Execution) error {
	if len(executions) == 0 {
		return nil
	}
	executionModels := make([]*model.ExecutionModel, 0, len(executions))
	for _, execution := range executions {
		executionModels = append(executionModels, model.ExecutionModelFromEntity(execution))
	}
	result := r.db.WithContext(ctx).CreateInBatches(executionModels, 100)
	return result.Error
}

// FindByID retrieves an execution by its ID.
func (r *executionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Execution, error) {
	var executionModel model.ExecutionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&executionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExecutionNotFound
		}
		return nil, result.Error
	}
	return executionModel.ToEntity(), nil
}

// List retrieves executions matching the filter, ordered by scheduled date.
func (r *executionRepository) List(ctx context.Context, filter adapter.ExecutionFilter) ([]*entity.Execution, error) {
	query := r.db.WithContext(ctx).Model(&model.ExecutionModel{})

	if filter.CareTaskID != nil {
		query = query.Where("care_task_id = ?", *filter.CareTaskID)
	}
	if filter.ClientID != nil {
		query = query.Where(
			"care_task_id IN (?)",
			r.db.Model(&model.CareTaskModel{}).Select("id").Where("client_id = ?", *filter.ClientID),
		)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.From != nil {
		query = query.Where("scheduled_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("scheduled_date <= ?", *filter.To)
	}

	var executionModels []model.ExecutionModel
	result := query.Order("scheduled_date ASC").Find(&executionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	executions := make([]*entity.Execution, 0, len(executionModels))
	for i := range executionModels {
		executions = append(executions, executionModels[i].ToEntity())
	}
	return executions, nil
}

// ExistsForTaskOnDate checks whether the task already has an execution
// scheduled on the given date.
func (r *executionRepository) ExistsForTaskOnDate(ctx context.Context, taskID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ExecutionModel{}).
		Where("care_task_id = ? AND scheduled_date = ?", taskID, date).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing execution in the database.
func (r *executionRepository) Update(ctx context.Context, execution *entity.Execution) error {
	executionModel := model.ExecutionModelFromEntity(execution)
	result := r.db.WithContext(ctx).
		Model(&model.ExecutionModel{}).
		Where("id = ?", executionModel.ID).
		Updates(map[string]interface{}{
			"scheduled_date":      executionModel.ScheduledDate,
			"execution_date":      executionModel.ExecutionDate,
			"status":              executionModel.Status,
			"quantity_purchased":  executionModel.QuantityPurchased,
			"quantity_unit":       executionModel.QuantityUnit,
			"actual_cost":         executionModel.ActualCost,
			"notes":               executionModel.Notes,
			"refund_amount":       executionModel.RefundAmount,
			"refund_date":         executionModel.RefundDate,
			"refund_reason":       executionModel.RefundReason,
			"refund_evidence_url": executionModel.RefundEvidenceURL,
			"updated_at":          executionModel.UpdatedAt,
		})
	return result.Error
}

// Delete removes an execution.
func (r *executionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExecutionModel{}, "id = ?", id)
	return result.Error
}
