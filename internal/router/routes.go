package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/marketing-ops/api/internal/auth"
	"github.com/octobees/marketing-ops/api/internal/config"
	"github.com/octobees/marketing-ops/api/internal/entity"
	"github.com/octobees/marketing-ops/api/internal/handler"
	middlewarepkg "github.com/octobees/marketing-ops/api/internal/middleware"
)

// AssetSearchRoute is rate limited per operator.
const AssetSearchRoute = "/assets/search"

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth        *handler.AuthHandler
	Enrichment  *handler.EnrichmentHandler
	Assets      *handler.AssetsHandler
	Accounts    *handler.AccountsHandler
	AdGenerator *handler.AdGeneratorHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/auth/login", handlers.Auth.Login)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	admin := secured.Group("/admin", middlewarepkg.RequireRole(entity.RoleAdmin))
	admin.POST("/operators", handlers.Auth.CreateOperator)

	secured.POST("/enrichment/company", handlers.Enrichment.EnrichCompany)
	secured.POST("/enrichment/prospects", handlers.Enrichment.FindProspects)

	assetLimiter := middlewarepkg.RateLimiter(cfg.RateLimitAssets, "asset search rate limit exceeded", AssetSearchRoute)
	secured.GET(AssetSearchRoute, handlers.Assets.Search, assetLimiter)
	secured.GET("/assets/:id/download", handlers.Assets.Download)

	accounts := secured.Group("/accounts")
	accounts.GET("", handlers.Accounts.List)
	accounts.POST("", handlers.Accounts.Create)
	accounts.GET("/:id", handlers.Accounts.Get)
	accounts.GET("/:id/enrichment", handlers.Accounts.Enrichment)
	accounts.POST("/:id/prospects", handlers.Accounts.Prospects)
	accounts.GET("/:id/journey", handlers.Accounts.Journey)

	secured.GET("/ad-generator/steps", handlers.AdGenerator.Steps)
	secured.POST("/ad-generator/transition", handlers.AdGenerator.Transition)
}
