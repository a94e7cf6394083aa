package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/salonsync/salon_management_app/cmd/docs"
	"github.com/salonsync/salon_management_app/internal/core/domain"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/middleware"
	"github.com/salonsync/salon_management_app/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	anyRole := middleware.RequireRole(domain.RoleAdmin, domain.RoleManager, domain.RoleReception)
	managerUp := middleware.RequireRole(domain.RoleAdmin, domain.RoleManager)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, services.User, adminOnly)
	registerProfessionalRoutes(v1, services.Professional, anyRole, managerUp)
	registerCatalogRoutes(v1, services.Catalog, anyRole, managerUp)
	registerSaleRoutes(v1, services.Sale, anyRole)
	registerTransactionRoutes(v1, services.Transaction, anyRole)
	registerCashFlowRoutes(v1, services.CashFlow, anyRole)
	RegisterPayrollRoutes(v1, services.Payroll, managerUp)
	registerVaultRoutes(v1, services.Vault, managerUp)
	registerDashboardRoutes(v1, services.Sale, services.Client, managerUp)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
