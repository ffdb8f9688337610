// Package caretask contains care task scheduling use cases.
package caretask

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	"github.com/scheduling-of-care/backend/internal/domain/valueobject"
)

// ListCareTasksInput represents the input for listing care tasks.
type ListCareTasksInput struct {
	UserID        uuid.UUID
	ClientID      uuid.UUID
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	ActiveOnly    bool
}

// CareTaskListing pairs a task with its human-readable recurrence.
type CareTaskListing struct {
	Task       *entity.CareTask
	Recurrence string
}

// ListCareTasksOutput represents the output of listing care tasks.
type ListCareTasksOutput struct {
	Tasks []CareTaskListing
}

// ListCareTasksUseCase handles listing care tasks for a client.
type ListCareTasksUseCase struct {
	taskRepo   adapter.CareTaskRepository
	clientRepo adapter.ClientRepository
}

// NewListCareTasksUseCase creates a new ListCareTasksUseCase instance.
func NewListCareTasksUseCase(taskRepo adapter.CareTaskRepository, clientRepo adapter.ClientRepository) *ListCareTasksUseCase {
	return &ListCareTasksUseCase{
		taskRepo:   taskRepo,
		clientRepo: clientRepo,
	}
}

// Execute lists care tasks matching the filter.
func (uc *ListCareTasksUseCase) Execute(ctx context.Context, input ListCareTasksInput) (*ListCareTasksOutput, error) {
	if _, err := authorizeClient(ctx, uc.clientRepo, input.UserID, input.ClientID); err != nil {
		return nil, err
	}

	tasks, err := uc.taskRepo.List(ctx, adapter.CareTaskFilter{
		ClientID:      input.ClientID,
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
		ActiveOnly:    input.ActiveOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list care tasks: %w", err)
	}

	listings := make([]CareTaskListing, 0, len(tasks))
	for _, task := range tasks {
		recurrence := valueobject.Recurrence{IntervalDays: task.RecurrenceIntervalDays}
		listings = append(listings, CareTaskListing{
			Task:       task,
			Recurrence: recurrence.Describe(),
		})
	}

	return &ListCareTasksOutput{Tasks: listings}, nil
}
