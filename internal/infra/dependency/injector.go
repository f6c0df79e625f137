// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/marketing-manager/backend/config"
	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/application/usecase/auth"
	"github.com/marketing-manager/backend/internal/application/usecase/campaign"
	"github.com/marketing-manager/backend/internal/application/usecase/expense"
	"github.com/marketing-manager/backend/internal/application/usecase/platform"
	"github.com/marketing-manager/backend/internal/application/usecase/product"
	"github.com/marketing-manager/backend/internal/application/usecase/roi"
	"github.com/marketing-manager/backend/internal/application/usecase/sale"
	"github.com/marketing-manager/backend/internal/domain/entity"
	"github.com/marketing-manager/backend/internal/infra/server/router"
	"github.com/marketing-manager/backend/internal/integration/adapters"
	"github.com/marketing-manager/backend/internal/integration/entrypoint/controller"
	"github.com/marketing-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/marketing-manager/backend/internal/integration/persistence"
	"github.com/marketing-manager/backend/internal/integration/platforms"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, logger *slog.Logger) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	productRepo := persistence.NewProductRepository(db)
	campaignRepo := persistence.NewCampaignRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	saleRepo := persistence.NewSaleRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	connectorFactory := newConnectorFactory(cfg.Platforms, logger)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create product use cases
	createProductUseCase := product.NewCreateProductUseCase(productRepo)
	listProductsUseCase := product.NewListProductsUseCase(productRepo)
	updateProductUseCase := product.NewUpdateProductUseCase(productRepo)
	deleteProductUseCase := product.NewDeleteProductUseCase(productRepo, saleRepo)

	// Create campaign use cases
	createCampaignUseCase := campaign.NewCreateCampaignUseCase(campaignRepo)
	listCampaignsUseCase := campaign.NewListCampaignsUseCase(campaignRepo)
	deleteCampaignUseCase := campaign.NewDeleteCampaignUseCase(campaignRepo, expenseRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, campaignRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo, campaignRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, campaignRepo)

	// Create sale use cases
	recordSaleUseCase := sale.NewRecordSaleUseCase(saleRepo, productRepo)
	listSalesUseCase := sale.NewListSalesUseCase(saleRepo)

	// Create aggregation use cases
	basicROIUseCase := roi.NewGetBasicROIUseCase(expenseRepo, saleRepo)
	detailedROIUseCase := roi.NewGetDetailedROIUseCase(campaignRepo, expenseRepo, saleRepo)
	salesProfitUseCase := roi.NewGetSalesProfitUseCase(
		saleRepo,
		productRepo,
		roi.CostResolution(cfg.Metrics.CostResolution),
	)

	// Create platform use cases
	testConnectionUseCase := platform.NewTestConnectionUseCase(connectorFactory)

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
	)

	productController := controller.NewProductController(
		createProductUseCase,
		listProductsUseCase,
		updateProductUseCase,
		deleteProductUseCase,
	)

	campaignController := controller.NewCampaignController(
		createCampaignUseCase,
		listCampaignsUseCase,
		deleteCampaignUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		deleteExpenseUseCase,
	)

	saleController := controller.NewSaleController(
		recordSaleUseCase,
		listSalesUseCase,
	)

	dashboardController := controller.NewDashboardController(
		basicROIUseCase,
		detailedROIUseCase,
		salesProfitUseCase,
	)

	platformController := controller.NewPlatformController(testConnectionUseCase)

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
		productController,
		campaignController,
		expenseController,
		saleController,
		dashboardController,
		platformController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}

// newConnectorFactory binds the configured credentials to the connector
// constructor so use cases only have to name a platform.
func newConnectorFactory(cfg config.PlatformsConfig, logger *slog.Logger) platform.ConnectorFactory {
	return func(p entity.Platform) (adapter.PlatformConnector, error) {
		var creds platforms.Credentials
		switch p {
		case entity.PlatformEduzz:
			creds = platforms.Credentials{
				APIKey:       cfg.Eduzz.APIKey,
				APISecret:    cfg.Eduzz.APISecret,
				AccessToken:  cfg.Eduzz.AccessToken,
				RefreshToken: cfg.Eduzz.RefreshToken,
			}
		case entity.PlatformHotmart:
			creds = platforms.Credentials{
				APIKey:       cfg.Hotmart.APIKey,
				APISecret:    cfg.Hotmart.APISecret,
				AccessToken:  cfg.Hotmart.AccessToken,
				RefreshToken: cfg.Hotmart.RefreshToken,
			}
		case entity.PlatformKiwify:
			creds = platforms.Credentials{
				APIKey: cfg.Kiwify.APIKey,
			}
		case entity.PlatformMonetizze:
			creds = platforms.Credentials{
				Email:    cfg.Monetizze.Email,
				APIToken: cfg.Monetizze.APIToken,
			}
		}
		return platforms.NewConnector(p, creds, logger)
	}
}
