// Package caretask contains care task scheduling use cases.
package caretask

import (
	"context"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

// authorizeClient loads the client and verifies that the user owns it.
func authorizeClient(ctx context.Context, clientRepo adapter.ClientRepository, userID, clientID uuid.UUID) (*entity.Client, error) {
	client, err := clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}
	if client.UserID != userID {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeNotAuthorizedClient,
			"not authorized to access this client",
			domainerror.ErrNotAuthorizedForClient,
		)
	}
	return client, nil
}

// loadOwnedTask loads a care task and verifies the user owns its client.
func loadOwnedTask(
	ctx context.Context,
	taskRepo adapter.CareTaskRepository,
	clientRepo adapter.ClientRepository,
	userID, taskID uuid.UUID,
) (*entity.CareTask, error) {
	task, err := taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeTaskNotFound,
			"care task not found",
			domainerror.ErrTaskNotFound,
		)
	}
	if _, err := authorizeClient(ctx, clientRepo, userID, task.ClientID); err != nil {
		return nil, domainerror.NewCareTaskError(
			domainerror.ErrCodeNotAuthorizedTask,
			"not authorized to access this care task",
			domainerror.ErrNotAuthorizedForTask,
		)
	}
	return task, nil
}
