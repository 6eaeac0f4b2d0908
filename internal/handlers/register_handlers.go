package handlers

import (
	"net/http"

	"github.com/SscSPs/invest_gateway/cmd/docs"
	portssvc "github.com/SscSPs/invest_gateway/internal/core/ports/services"
	"github.com/SscSPs/invest_gateway/internal/middleware"
	"github.com/SscSPs/invest_gateway/internal/platform/config"
	"github.com/SscSPs/invest_gateway/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	RegisterValidators()

	r.GET("/", getHome)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	setupBrokerRoutes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupBrokerRoutes configures the routes that proxy the upstream broker.
// Callers must present a broker token, and an X-Token when a gateway secret is configured.
func setupBrokerRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("",
		middleware.GatewayTokenMiddleware(cfg.GatewayJWTSecret),
		middleware.BrokerCredentials(),
	)

	registerInstrumentRoutes(api, services.Instrument, services.User)
	registerOperationRoutes(api, services.Operation, services.MarketData)
	registerOrderRoutes(api, services.Order)
	registerMarketRoutes(api, services)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
