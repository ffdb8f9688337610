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

// careTaskRepository implements the adapter.CareTaskRepository interface.
type careTaskRepository struct {
	db *gorm.DB
}

// NewCareTaskRepository creates a new care task repository instance.
func NewCareTaskRepository(db *gorm.DB) adapter.CareTaskRepository {
	return &careTaskRepository{
		db: db,
	}
}

// Create creates a new care task in the database.
func (r *careTaskRepository) Create(ctx context.Context, task *entity.CareTask) error {
	taskModel := model.CareTaskModelFromEntity(task)
	result := r.db.WithContext(ctx).Create(taskModel)
	return result.Error
}

// FindByID retrieves a care task by its ID.
func (r *careTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CareTask, error) {
	var taskModel model.CareTaskModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&taskModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTaskNotFound
		}
		return nil, result.Error
	}
	return taskModel.ToEntity(), nil
}

// List retrieves care tasks matching the filter, ordered by start date.
func (r *careTaskRepository) List(ctx context.Context, filter adapter.CareTaskFilter) ([]*entity.CareTask, error) {
	query := r.db.WithContext(ctx).Where("client_id = ?", filter.ClientID)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SubcategoryID != nil {
		query = query.Where("subcategory_id = ?", *filter.SubcategoryID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var taskModels []model.CareTaskModel
	result := query.Order("start_date ASC").Find(&taskModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tasks := make([]*entity.CareTask, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, taskModels[i].ToEntity())
	}
	return tasks, nil
}

// FindActiveRecurring retrieves all active recurring tasks across clients.
func (r *careTaskRepository) FindActiveRecurring(ctx context.Context) ([]*entity.CareTask, error) {
	var taskModels []model.CareTaskModel
	result := r.db.WithContext(ctx).
		Where("is_active = ? AND recurrence_interval_days > 0", true).
		Order("start_date ASC").
		Find(&taskModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tasks := make([]*entity.CareTask, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, taskModels[i].ToEntity())
	}
	return tasks, nil
}

// Update updates an existing care task in the database.
func (r *careTaskRepository) Update(ctx context.Context, task *entity.CareTask) error {
	taskModel := model.CareTaskModelFromEntity(task)
	result := r.db.WithContext(ctx).
		Model(&model.CareTaskModel{}).
		Where("id = ?", taskModel.ID).
		Updates(map[string]interface{}{
			"category_id":              taskModel.CategoryID,
			"subcategory_id":           taskModel.SubcategoryID,
			"name":                     taskModel.Name,
			"description":              taskModel.Description,
			"task_type":                taskModel.TaskType,
			"recurrence_interval_days": taskModel.RecurrenceIntervalDays,
			"start_date":               taskModel.StartDate,
			"end_date":                 taskModel.EndDate,
			"yearly_budget":            taskModel.YearlyBudget,
			"is_active":                taskModel.IsActive,
			"updated_at":               taskModel.UpdatedAt,
		})
	return result.Error
}

// Delete soft-deletes a care task.
func (r *careTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CareTaskModel{}, "id = ?", id)
	return result.Error
}
