// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/usecase/budget"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
	"github.com/scheduling-of-care/backend/internal/integration/entrypoint/dto"
	"github.com/scheduling-of-care/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget reporting endpoints.
type BudgetController struct {
	breakdownUseCase  *budget.GetBreakdownUseCase
	projectionUseCase *budget.GetProjectionUseCase
	alertsUseCase     *budget.GetAlertsUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	breakdownUseCase *budget.GetBreakdownUseCase,
	projectionUseCase *budget.GetProjectionUseCase,
	alertsUseCase *budget.GetAlertsUseCase,
) *BudgetController {
	return &BudgetController{
		breakdownUseCase:  breakdownUseCase,
		projectionUseCase: projectionUseCase,
		alertsUseCase:     alertsUseCase,
	}
}

// Breakdown handles GET /clients/:id/budget/breakdown requests.
func (c *BudgetController) Breakdown(ctx *gin.Context) {
	userID, clientID, ok := c.parseBudgetPath(ctx)
	if !ok {
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), budget.GetBreakdownInput{
		UserID:   userID,
		ClientID: clientID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BreakdownResponse{
		Breakdown: output.Breakdown,
		FromCache: output.FromCache,
	})
}

// Projection handles GET /clients/:id/budget/projection requests.
func (c *BudgetController) Projection(ctx *gin.Context) {
	userID, clientID, ok := c.parseBudgetPath(ctx)
	if !ok {
		return
	}

	output, err := c.projectionUseCase.Execute(ctx.Request.Context(), budget.GetProjectionInput{
		UserID:   userID,
		ClientID: clientID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProjectionResponse{
		Projection:  output.Projection,
		TotalSpend:  output.TotalSpend,
		TotalBudget: output.TotalBudget,
	})
}

// Alerts handles GET /clients/:id/budget/alerts requests.
func (c *BudgetController) Alerts(ctx *gin.Context) {
	userID, clientID, ok := c.parseBudgetPath(ctx)
	if !ok {
		return
	}

	output, err := c.alertsUseCase.Execute(ctx.Request.Context(), budget.GetAlertsInput{
		UserID:   userID,
		ClientID: clientID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AlertsResponse{
		Alerts: output.Alerts,
	})
}

// parseBudgetPath extracts the authenticated user and client ID from the request.
func (c *BudgetController) parseBudgetPath(ctx *gin.Context) (userID, clientID uuid.UUID, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return uuid.Nil, uuid.Nil, false
	}

	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, clientID, true
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	var clientErr *domainerror.ClientError
	if errors.As(err, &clientErr) {
		statusCode := http.StatusInternalServerError
		switch clientErr.Code {
		case domainerror.ErrCodeClientNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeNotAuthorizedClient:
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: clientErr.Message,
			Code:  string(clientErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
