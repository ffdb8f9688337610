// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/scheduling-of-care/backend/internal/integration/entrypoint/controller"
	"github.com/scheduling-of-care/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	clientController    *controller.ClientController
	categoryController  *controller.CategoryController
	careTaskController  *controller.CareTaskController
	executionController *controller.ExecutionController
	budgetController    *controller.BudgetController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	clientController *controller.ClientController,
	categoryController *controller.CategoryController,
	careTaskController *controller.CareTaskController,
	executionController *controller.ExecutionController,
	budgetController *controller.BudgetController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		clientController:    clientController,
		categoryController:  categoryController,
		careTaskController:  careTaskController,
		executionController: executionController,
		budgetController:    budgetController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.loginRateLimiter.Middleware(), r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// Client routes (require authentication)
		if r.clientController != nil && r.authMiddleware != nil {
			clients := v1.Group("/clients")
			clients.Use(r.authMiddleware.Authenticate())
			{
				clients.POST("", r.clientController.Create)
				clients.GET("", r.clientController.List)
				clients.GET("/:id", r.clientController.Get)
				clients.PATCH("/:id", r.clientController.Update)
				clients.DELETE("/:id", r.clientController.Delete)

				// Category routes nested under the owning client
				if r.categoryController != nil {
					clients.GET("/:id/categories", r.categoryController.List)
					clients.POST("/:id/categories", r.categoryController.Create)
				}

				// Care task listing scoped to a client
				if r.careTaskController != nil {
					clients.GET("/:id/tasks", r.careTaskController.List)
				}

				// Budget report routes (nested under the client)
				if r.budgetController != nil {
					budget := clients.Group("/:id/budget")
					{
						budget.GET("/breakdown", r.budgetController.Breakdown)
						budget.GET("/projection", r.budgetController.Projection)
						budget.GET("/alerts", r.budgetController.Alerts)
					}
				}
			}
		}

		// Category item routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
				categories.POST("/:id/subcategories", r.categoryController.CreateSubcategory)
				categories.PATCH("/:id/subcategories/:subId", r.categoryController.UpdateSubcategory)
				categories.DELETE("/:id/subcategories/:subId", r.categoryController.DeleteSubcategory)
			}
		}

		// Care task item routes (require authentication)
		if r.careTaskController != nil && r.authMiddleware != nil {
			tasks := v1.Group("/tasks")
			tasks.Use(r.authMiddleware.Authenticate())
			{
				tasks.POST("", r.careTaskController.Create)
				tasks.GET("/:id", r.careTaskController.Get)
				tasks.PATCH("/:id", r.careTaskController.Update)
				tasks.DELETE("/:id", r.careTaskController.Delete)
				tasks.PATCH("/:id/active", r.careTaskController.SetActive)
				tasks.POST("/:id/generate", r.careTaskController.GenerateExecutions)
			}
		}

		// Execution routes (require authentication)
		if r.executionController != nil && r.authMiddleware != nil {
			executions := v1.Group("/executions")
			executions.Use(r.authMiddleware.Authenticate())
			{
				executions.POST("", r.executionController.Create)
				executions.GET("", r.executionController.List)
				executions.GET("/:id", r.executionController.Get)
				executions.PATCH("/:id", r.executionController.Update)
				executions.POST("/:id/done", r.executionController.MarkDone)
				executions.POST("/:id/cancel", r.executionController.Cancel)
				executions.POST("/:id/refund", r.executionController.Refund)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
