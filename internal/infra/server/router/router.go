// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/marketing-manager/backend/internal/integration/entrypoint/controller"
	"github.com/marketing-manager/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	productController   *controller.ProductController
	campaignController  *controller.CampaignController
	expenseController   *controller.ExpenseController
	saleController      *controller.SaleController
	dashboardController *controller.DashboardController
	platformController  *controller.PlatformController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	productController *controller.ProductController,
	campaignController *controller.CampaignController,
	expenseController *controller.ExpenseController,
	saleController *controller.SaleController,
	dashboardController *controller.DashboardController,
	platformController *controller.PlatformController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		productController:   productController,
		campaignController:  campaignController,
		expenseController:   expenseController,
		saleController:      saleController,
		dashboardController: dashboardController,
		platformController:  platformController,
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

	// Setup routes
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
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Product routes (require authentication)
		if r.productController != nil && r.authMiddleware != nil {
			products := v1.Group("/products")
			products.Use(r.authMiddleware.Authenticate())
			{
				products.GET("", r.productController.List)
				products.POST("", r.productController.Create)
				products.PATCH("/:id", r.productController.Update)
				products.DELETE("/:id", r.productController.Delete)
			}
		}

		// Campaign routes (require authentication)
		if r.campaignController != nil && r.authMiddleware != nil {
			campaigns := v1.Group("/campaigns")
			campaigns.Use(r.authMiddleware.Authenticate())
			{
				campaigns.GET("", r.campaignController.List)
				campaigns.POST("", r.campaignController.Create)
				campaigns.DELETE("/:id", r.campaignController.Delete)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Sale routes (require authentication)
		if r.saleController != nil && r.authMiddleware != nil {
			sales := v1.Group("/sales")
			sales.Use(r.authMiddleware.Authenticate())
			{
				sales.GET("", r.saleController.List)
				sales.POST("", r.saleController.Record)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/roi", r.dashboardController.BasicROI)
				dashboard.GET("/roi/detailed", r.dashboardController.DetailedROI)
				dashboard.GET("/sales-profit", r.dashboardController.SalesProfit)
			}
		}

		// Platform routes (require authentication)
		if r.platformController != nil && r.authMiddleware != nil {
			platforms := v1.Group("/platforms")
			platforms.Use(r.authMiddleware.Authenticate())
			{
				platforms.POST("/test-connection", r.platformController.TestConnection)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
