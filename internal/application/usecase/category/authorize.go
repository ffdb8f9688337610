// Package category contains care category and subcategory use cases.
package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

// authorizeClient loads the client and verifies that the user owns it.
// Categories are reached only through clients, so every operation in this
// package funnels through this check.
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

// loadOwnedCategory loads a category and verifies the user owns its client.
func loadOwnedCategory(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	clientRepo adapter.ClientRepository,
	userID, categoryID uuid.UUID,
) (*entity.CareCategory, error) {
	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}
	if _, err := authorizeClient(ctx, clientRepo, userID, category.ClientID); err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategory,
			"not authorized to access this category",
			domainerror.ErrNotAuthorizedToModifyCategory,
		)
	}
	return category, nil
}
