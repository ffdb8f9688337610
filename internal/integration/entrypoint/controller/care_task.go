// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/usecase/caretask"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
	"github.com/scheduling-of-care/backend/internal/domain/valueobject"
	"github.com/scheduling-of-care/backend/internal/integration/entrypoint/dto"
	"github.com/scheduling-of-care/backend/internal/integration/entrypoint/middleware"
)

// CareTaskController handles care task endpoints.
type CareTaskController struct {
	createUseCase    *caretask.CreateCareTaskUseCase
	getUseCase       *caretask.GetCareTaskUseCase
	listUseCase      *caretask.ListCareTasksUseCase
	updateUseCase    *caretask.UpdateCareTaskUseCase
	setActiveUseCase *caretask.SetCareTaskActiveUseCase
	deleteUseCase    *caretask.DeleteCareTaskUseCase
	generateUseCase  *caretask.GenerateExecutionsUseCase
}

// NewCareTaskController creates a new care task controller instance.
func NewCareTaskController(
	createUseCase *caretask.CreateCareTaskUseCase,
	getUseCase *caretask.GetCareTaskUseCase,
	listUseCase *caretask.ListCareTasksUseCase,
	updateUseCase *caretask.UpdateCareTaskUseCase,
	setActiveUseCase *caretask.SetCareTaskActiveUseCase,
	deleteUseCase *caretask.DeleteCareTaskUseCase,
	generateUseCase *caretask.GenerateExecutionsUseCase,
) *CareTaskController {
	return &CareTaskController{
		createUseCase:    createUseCase,
		getUseCase:       getUseCase,
		listUseCase:      listUseCase,
		updateUseCase:    updateUseCase,
		setActiveUseCase: setActiveUseCase,
		deleteUseCase:    deleteUseCase,
		generateUseCase:  generateUseCase,
	}
}

// Create handles POST /tasks requests.
func (c *CareTaskController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCareTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTaskFields),
		})
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID format",
		})
		return
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	var subcategoryID *uuid.UUID
	if req.SubcategoryID != nil {
		id, err := uuid.Parse(*req.SubcategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid subcategory ID format",
			})
			return
		}
		subcategoryID = &id
	}

	startDate, err := time.Parse(dto.DateFormat, req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format. Use YYYY-MM-DD",
		})
		return
	}
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse(dto.DateFormat, *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format. Use YYYY-MM-DD",
			})
			return
		}
		endDate = &parsed
	}

	input := caretask.CreateCareTaskInput{
		UserID:                 userID,
		ClientID:               clientID,
		CategoryID:             categoryID,
		SubcategoryID:          subcategoryID,
		Name:                   req.Name,
		Description:            req.Description,
		TaskType:               entity.TaskType(req.TaskType),
		RecurrenceIntervalDays: req.RecurrenceIntervalDays,
		StartDate:              startDate,
		EndDate:                endDate,
		YearlyBudget:           req.YearlyBudget,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCareTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCareTaskResponse(output.Task, output.Recurrence))
}

// Get handles GET /tasks/:id requests.
func (c *CareTaskController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), caretask.GetCareTaskInput{
		UserID: userID,
		TaskID: taskID,
	})
	if err != nil {
		c.handleCareTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCareTaskResponse(output.Task, output.Recurrence))
}

// List handles GET /clients/:id/tasks requests.
func (c *CareTaskController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID format",
		})
		return
	}

	input := caretask.ListCareTasksInput{
		UserID:     userID,
		ClientID:   clientID,
		ActiveOnly: ctx.Query("active") == "true",
	}

	if categoryIDStr := ctx.Query("category_id"); categoryIDStr != "" {
		categoryID, err := uuid.Parse(categoryIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
	}
	if subcategoryIDStr := ctx.Query("subcategory_id"); subcategoryIDStr != "" {
		subcategoryID, err := uuid.Parse(subcategoryIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid subcategory ID format",
			})
			return
		}
		input.SubcategoryID = &subcategoryID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCareTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCareTaskListResponse(output.Tasks))
}

// Update handles PATCH /tasks/:id requests.
func (c *CareTaskController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	var req dto.UpdateCareTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	var subcategoryID *uuid.UUID
	if req.SubcategoryID != nil {
		id, err := uuid.Parse(*req.SubcategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid subcategory ID format",
			})
			return
		}
		subcategoryID = &id
	}

	var startDate *time.Time
	if req.StartDate != nil {
		parsed, err := time.Parse(dto.DateFormat, *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format. Use YYYY-MM-DD",
			})
			return
		}
		startDate = &parsed
	}
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse(dto.DateFormat, *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format. Use YYYY-MM-DD",
			})
			return
		}
		endDate = &parsed
	}

	input := caretask.UpdateCareTaskInput{
		UserID:                 userID,
		TaskID:                 taskID,
		Name:                   req.Name,
		Description:            req.Description,
		RecurrenceIntervalDays: req.RecurrenceIntervalDays,
		StartDate:              startDate,
		EndDate:                endDate,
		ClearEndDate:           req.ClearEndDate,
		YearlyBudget:           req.YearlyBudget,
		SubcategoryID:          subcategoryID,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCareTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCareTaskResponse(output.Task, output.Recurrence))
}

// SetActive handles PATCH /tasks/:id/active requests.
func (c *CareTaskController) SetActive(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	var req dto.SetCareTaskActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Active == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTaskFields),
		})
		return
	}

	output, err := c.setActiveUseCase.Execute(ctx.Request.Context(), caretask.SetCareTaskActiveInput{
		UserID: userID,
		TaskID: taskID,
		Active: *req.Active,
	})
	if err != nil {
		c.handleCareTaskError(ctx, err)
		return
	}

	recurrence := ""
	if r, err := valueobject.NewRecurrence(output.Task.RecurrenceIntervalDays); err == nil {
		recurrence = r.Describe()
	}
	ctx.JSON(http.StatusOK, dto.ToCareTaskResponse(output.Task, recurrence))
}

// Delete handles DELETE /tasks/:id requests.
func (c *CareTaskController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), caretask.DeleteCareTaskInput{
		UserID: userID,
		TaskID: taskID,
	})
	if err != nil {
		c.handleCareTaskError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GenerateExecutions handles POST /tasks/:id/generate requests.
func (c *CareTaskController) GenerateExecutions(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), caretask.GenerateExecutionsInput{
		UserID: userID,
		TaskID: taskID,
	})
	if err != nil {
		c.handleCareTaskError(ctx, err)
		return
	}

	created := make([]dto.ExecutionResponse, len(output.Created))
	for i, execution := range output.Created {
		created[i] = dto.ToExecutionResponse(execution)
	}
	ctx.JSON(http.StatusCreated, dto.GenerateExecutionsResponse{
		Created: created,
		Skipped: output.Skipped,
	})
}

// handleCareTaskError handles care task errors and returns appropriate HTTP responses.
func (c *CareTaskController) handleCareTaskError(ctx *gin.Context, err error) {
	var taskErr *domainerror.CareTaskError
	if errors.As(err, &taskErr) {
		statusCode := c.getStatusCodeForCareTaskError(taskErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: taskErr.Message,
			Code:  string(taskErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := http.StatusBadRequest
		switch catErr.Code {
		case domainerror.ErrCodeCategoryNotFound, domainerror.ErrCodeSubcategoryNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeNotAuthorizedCategory:
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
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

// getStatusCodeForCareTaskError maps care task error codes to HTTP status codes.
func (c *CareTaskController) getStatusCodeForCareTaskError(code domainerror.CareTaskErrorCode) int {
	switch code {
	case domainerror.ErrCodeTaskNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTask:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidRecurrence,
		domainerror.ErrCodeEndDateRequired,
		domainerror.ErrCodeOneOffEndDate,
		domainerror.ErrCodeInvalidTaskType,
		domainerror.ErrCodeBudgetOnGeneralTask,
		domainerror.ErrCodeMissingTaskFields,
		domainerror.ErrCodeDateOutOfYear,
		domainerror.ErrCodeEndBeforeStart:
		return http.StatusBadRequest
	case domainerror.ErrCodeTaskInactive:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
