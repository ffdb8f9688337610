// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/scheduling-of-care/backend/config"
	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/application/usecase/auth"
	"github.com/scheduling-of-care/backend/internal/application/usecase/budget"
	"github.com/scheduling-of-care/backend/internal/application/usecase/caretask"
	"github.com/scheduling-of-care/backend/internal/application/usecase/category"
	"github.com/scheduling-of-care/backend/internal/application/usecase/client"
	"github.com/scheduling-of-care/backend/internal/application/usecase/execution"
	"github.com/scheduling-of-care/backend/internal/domain/valueobject"
	"github.com/scheduling-of-care/backend/internal/infra/server/router"
	"github.com/scheduling-of-care/backend/internal/integration/adapters"
	"github.com/scheduling-of-care/backend/internal/integration/entrypoint/controller"
	"github.com/scheduling-of-care/backend/internal/integration/entrypoint/middleware"
	"github.com/scheduling-of-care/backend/internal/integration/notification"
	"github.com/scheduling-of-care/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	// Exposed for the background workers wired up in main.
	CareTaskRepo        adapter.CareTaskRepository
	ExecutionRepo       adapter.ExecutionRepository
	NotificationQueue   adapter.NotificationQueueRepository
	NotificationService adapter.NotificationService
}

// NewInjector creates a new dependency injector with all dependencies wired.
// breakdownCache may be nil when Redis is unavailable; budget reads then
// recompute on every request.
func NewInjector(cfg *config.Config, db *gorm.DB, breakdownCache budget.BreakdownCache) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	clientRepo := persistence.NewClientRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	careTaskRepo := persistence.NewCareTaskRepository(db)
	executionRepo := persistence.NewExecutionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	queueRepo := persistence.NewNotificationQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	notificationService := notification.NewService(queueRepo, cfg.Email.AppBaseURL)

	thresholds := valueobject.DefaultAlertThresholds()

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, notificationService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)

	// Create client use cases
	createClientUseCase := client.NewCreateClientUseCase(clientRepo)
	getClientUseCase := client.NewGetClientUseCase(clientRepo)
	listClientsUseCase := client.NewListClientsUseCase(clientRepo)
	updateClientUseCase := client.NewUpdateClientUseCase(clientRepo)
	deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, clientRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, clientRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, clientRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, clientRepo)
	createSubcategoryUseCase := category.NewCreateSubcategoryUseCase(categoryRepo, clientRepo)
	updateSubcategoryUseCase := category.NewUpdateSubcategoryUseCase(categoryRepo, clientRepo)
	deleteSubcategoryUseCase := category.NewDeleteSubcategoryUseCase(categoryRepo, clientRepo)

	// Create care task use cases
	createCareTaskUseCase := caretask.NewCreateCareTaskUseCase(careTaskRepo, categoryRepo, clientRepo)
	getCareTaskUseCase := caretask.NewGetCareTaskUseCase(careTaskRepo, clientRepo)
	listCareTasksUseCase := caretask.NewListCareTasksUseCase(careTaskRepo, clientRepo)
	updateCareTaskUseCase := caretask.NewUpdateCareTaskUseCase(careTaskRepo, categoryRepo, clientRepo)
	setCareTaskActiveUseCase := caretask.NewSetCareTaskActiveUseCase(careTaskRepo, clientRepo)
	deleteCareTaskUseCase := caretask.NewDeleteCareTaskUseCase(careTaskRepo, clientRepo)
	generateExecutionsUseCase := caretask.NewGenerateExecutionsUseCase(careTaskRepo, executionRepo, clientRepo)

	// Create budget use cases
	alertCheckService := budget.NewAlertCheckService(
		budgetRepo,
		categoryRepo,
		clientRepo,
		userRepo,
		notificationService,
		breakdownCache,
		thresholds,
	)
	getBreakdownUseCase := budget.NewGetBreakdownUseCase(budgetRepo, breakdownCache, clientRepo)
	getProjectionUseCase := budget.NewGetProjectionUseCase(budgetRepo, clientRepo)
	getAlertsUseCase, err := budget.NewGetAlertsUseCase(budgetRepo, clientRepo, thresholds)
	if err != nil {
		return nil, err
	}

	// Create execution use cases
	createExecutionUseCase := execution.NewCreateExecutionUseCase(executionRepo, careTaskRepo, clientRepo)
	getExecutionUseCase := execution.NewGetExecutionUseCase(executionRepo, careTaskRepo, clientRepo)
	listExecutionsUseCase := execution.NewListExecutionsUseCase(executionRepo, careTaskRepo, clientRepo)
	updateExecutionUseCase := execution.NewUpdateExecutionUseCase(executionRepo, careTaskRepo, clientRepo, alertCheckService)
	markDoneUseCase := execution.NewMarkDoneUseCase(executionRepo, careTaskRepo, clientRepo, alertCheckService)
	cancelExecutionUseCase := execution.NewCancelExecutionUseCase(executionRepo, careTaskRepo, clientRepo)
	refundExecutionUseCase := execution.NewRefundExecutionUseCase(executionRepo, careTaskRepo, clientRepo, alertCheckService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	clientController := controller.NewClientController(
		createClientUseCase,
		getClientUseCase,
		listClientsUseCase,
		updateClientUseCase,
		deleteClientUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		createSubcategoryUseCase,
		updateSubcategoryUseCase,
		deleteSubcategoryUseCase,
	)

	careTaskController := controller.NewCareTaskController(
		createCareTaskUseCase,
		getCareTaskUseCase,
		listCareTasksUseCase,
		updateCareTaskUseCase,
		setCareTaskActiveUseCase,
		deleteCareTaskUseCase,
		generateExecutionsUseCase,
	)

	executionController := controller.NewExecutionController(
		createExecutionUseCase,
		getExecutionUseCase,
		listExecutionsUseCase,
		updateExecutionUseCase,
		markDoneUseCase,
		cancelExecutionUseCase,
		refundExecutionUseCase,
	)

	budgetController := controller.NewBudgetController(
		getBreakdownUseCase,
		getProjectionUseCase,
		getAlertsUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		clientController,
		categoryController,
		careTaskController,
		executionController,
		budgetController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:              cfg,
		DB:                  db,
		Router:              r,
		CareTaskRepo:        careTaskRepo,
		ExecutionRepo:       executionRepo,
		NotificationQueue:   queueRepo,
		NotificationService: notificationService,
	}, nil
}
