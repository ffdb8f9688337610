// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/usecase/execution"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
	"github.com/scheduling-of-care/backend/internal/integration/entrypoint/dto"
	"github.com/scheduling-of-care/backend/internal/integration/entrypoint/middleware"
)

// ExecutionController handles execution endpoints.
type ExecutionController struct {
	createUseCase *execution.CreateExecutionUseCase
	getUseCase    *execution.GetExecutionUseCase
	listUseCase   *execution.ListExecutionsUseCase
	updateUseCase *execution.UpdateExecutionUseCase
	markDone      *execution.MarkDoneUseCase
	cancelUseCase *execution.CancelExecutionUseCase
	refundUseCase *execution.RefundExecutionUseCase
}

// NewExecutionController creates a new execution controller instance.
func NewExecutionController(
	createUseCase *execution.CreateExecutionUseCase,
	getUseCase *execution.GetExecutionUseCase,
	listUseCase *execution.ListExecutionsUseCase,
	updateUseCase *execution.UpdateExecutionUseCase,
	markDone *execution.MarkDoneUseCase,
	cancelUseCase *execution.CancelExecutionUseCase,
	refundUseCase *execution.RefundExecutionUseCase,
) *ExecutionController {
	return &ExecutionController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		markDone:      markDone,
		cancelUseCase: cancelUseCase,
		refundUseCase: refundUseCase,
	}
}

// Create handles POST /executions requests.
func (c *ExecutionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateExecutionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingExecutionFields),
		})
		return
	}

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	scheduledDate, err := time.Parse(dto.DateFormat, req.ScheduledDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid scheduled date format. Use YYYY-MM-DD",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), execution.CreateExecutionInput{
		UserID:        userID,
		TaskID:        taskID,
		ScheduledDate: scheduledDate,
		Notes:         req.Notes,
	})
	if err != nil {
		c.handleExecutionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExecutionResponse(output.Execution))
}

// Get handles GET /executions/:id requests.
func (c *ExecutionController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	executionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid execution ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), execution.GetExecutionInput{
		UserID:      userID,
		ExecutionID: executionID,
	})
	if err != nil {
		c.handleExecutionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExecutionDetailResponse{
		Execution:   dto.ToExecutionResponse(output.Execution),
		FieldConfig: dto.ToFieldConfigResponse(output.FieldConfig),
	})
}

// List handles GET /executions requests. Requires a task_id or client_id
// query parameter.
func (c *ExecutionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := execution.ListExecutionsInput{UserID: userID}

	if taskIDStr := ctx.Query("task_id"); taskIDStr != "" {
		taskID, err := uuid.Parse(taskIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid task ID format",
			})
			return
		}
		input.TaskID = &taskID
	}
	if clientIDStr := ctx.Query("client_id"); clientIDStr != "" {
		clientID, err := uuid.Parse(clientIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid client ID format",
			})
			return
		}
		input.ClientID = &clientID
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.ExecutionStatus(statusStr)
		input.Status = &status
	}
	if fromStr := ctx.Query("from"); fromStr != "" {
		from, err := time.Parse(dto.DateFormat, fromStr)
		if err == nil {
			input.From = &from
		}
	}
	if toStr := ctx.Query("to"); toStr != "" {
		to, err := time.Parse(dto.DateFormat, toStr)
		if err == nil {
			input.To = &to
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExecutionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExecutionListResponse(output.Executions))
}

// Update handles PATCH /executions/:id requests.
func (c *ExecutionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	executionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid execution ID format",
		})
		return
	}

	var req dto.UpdateExecutionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	var scheduledDate *time.Time
	if req.ScheduledDate != nil {
		parsed, err := time.Parse(dto.DateFormat, *req.ScheduledDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid scheduled date format. Use YYYY-MM-DD",
			})
			return
		}
		scheduledDate = &parsed
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), execution.UpdateExecutionInput{
		UserID:        userID,
		ExecutionID:   executionID,
		ScheduledDate: scheduledDate,
		ActualCost:    req.ActualCost,
		Notes:         req.Notes,
		RefundAmount:  req.RefundAmount,
	})
	if err != nil {
		c.handleExecutionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExecutionResponse(output.Execution))
}

// MarkDone handles POST /executions/:id/done requests.
func (c *ExecutionController) MarkDone(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	executionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid execution ID format",
		})
		return
	}

	var req dto.MarkDoneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	var executionDate *time.Time
	if req.ExecutionDate != nil {
		parsed, err := time.Parse(dto.DateFormat, *req.ExecutionDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid execution date format. Use YYYY-MM-DD",
			})
			return
		}
		executionDate = &parsed
	}

	output, err := c.markDone.Execute(ctx.Request.Context(), execution.MarkDoneInput{
		UserID:            userID,
		ExecutionID:       executionID,
		ExecutionDate:     executionDate,
		ActualCost:        req.ActualCost,
		QuantityPurchased: req.QuantityPurchased,
		QuantityUnit:      req.QuantityUnit,
		Notes:             req.Notes,
	})
	if err != nil {
		c.handleExecutionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExecutionResponse(output.Execution))
}

// Cancel handles POST /executions/:id/cancel requests.
func (c *ExecutionController) Cancel(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	executionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid execution ID format",
		})
		return
	}

	// Body is optional for cancellation
	var req dto.CancelExecutionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		req = dto.CancelExecutionRequest{}
	}

	output, err := c.cancelUseCase.Execute(ctx.Request.Context(), execution.CancelExecutionInput{
		UserID:      userID,
		ExecutionID: executionID,
		Notes:       req.Notes,
	})
	if err != nil {
		c.handleExecutionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExecutionResponse(output.Execution))
}

// Refund handles POST /executions/:id/refund requests.
func (c *ExecutionController) Refund(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	executionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid execution ID format",
		})
		return
	}

	var req dto.RefundExecutionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingExecutionFields),
		})
		return
	}

	var refundDate *time.Time
	if req.Date != nil {
		parsed, err := time.Parse(dto.DateFormat, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid refund date format. Use YYYY-MM-DD",
			})
			return
		}
		refundDate = &parsed
	}

	output, err := c.refundUseCase.Execute(ctx.Request.Context(), execution.RefundExecutionInput{
		UserID:      userID,
		ExecutionID: executionID,
		Status:      entity.ExecutionStatus(req.Status),
		Amount:      req.Amount,
		Date:        refundDate,
		Reason:      req.Reason,
		EvidenceURL: req.EvidenceURL,
	})
	if err != nil {
		c.handleExecutionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExecutionResponse(output.Execution))
}

// handleExecutionError handles execution errors and returns appropriate HTTP responses.
func (c *ExecutionController) handleExecutionError(ctx *gin.Context, err error) {
	var execErr *domainerror.ExecutionError
	if errors.As(err, &execErr) {
		statusCode := c.getStatusCodeForExecutionError(execErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: execErr.Message,
			Code:  string(execErr.Code),
		})
		return
	}

	var taskErr *domainerror.CareTaskError
	if errors.As(err, &taskErr) {
		statusCode := http.StatusBadRequest
		switch taskErr.Code {
		case domainerror.ErrCodeTaskNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeNotAuthorizedTask:
			statusCode = http.StatusForbidden
		case domainerror.ErrCodeTaskInactive:
			statusCode = http.StatusConflict
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: taskErr.Message,
			Code:  string(taskErr.Code),
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

// getStatusCodeForExecutionError maps execution error codes to HTTP status codes.
func (c *ExecutionController) getStatusCodeForExecutionError(code domainerror.ExecutionErrorCode) int {
	switch code {
	case domainerror.ErrCodeExecutionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidStatusTransition:
		return http.StatusConflict
	case domainerror.ErrCodeNegativeCost,
		domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeMissingRefundAmount,
		domainerror.ErrCodeNegativeRefundAmount,
		domainerror.ErrCodeRefundExceedsCost,
		domainerror.ErrCodeFieldNotEditable,
		domainerror.ErrCodeMissingExecutionFields,
		domainerror.ErrCodeInvalidStatus,
		domainerror.ErrCodeScheduledBeforeTaskStart:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
