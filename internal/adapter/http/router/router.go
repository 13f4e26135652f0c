package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cienciascontic/textlabx/internal/adapter/http/handler"
	"github.com/cienciascontic/textlabx/internal/adapter/http/middleware"
	"github.com/cienciascontic/textlabx/internal/domain/service"
	"github.com/cienciascontic/textlabx/internal/usecase"
)

// Dependencies are the collaborators the gateway routes are served by.
// Classifier, Redis and Gatherer may be nil.
type Dependencies struct {
	Sessions   usecase.SessionUsecase
	Models     usecase.ModelUsecase
	Classifier service.HealthChecker
	Redis      *redis.Client
	Gatherer   prometheus.Gatherer
	Logger     *zap.Logger
}

// Setup creates and configures the Gin router
func Setup(deps Dependencies) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(deps.Classifier, deps.Redis)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	} else {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(deps.Sessions, deps.Logger)
	extensionHandler := handler.NewExtensionHandler(deps.Sessions)
	modelHandler := handler.NewModelHandler(deps.Models, deps.Logger)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/extension", extensionHandler.GetInfo)

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", sessionHandler.OpenSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.DELETE("/:id", sessionHandler.CloseSession)
			sessions.PUT("/:id/model", sessionHandler.SelectModel)
			sessions.POST("/:id/classify", sessionHandler.Classify)
			sessions.POST("/:id/blocks/:opcode", extensionHandler.InvokeBlock)
		}

		v1.POST("/models", modelHandler.TrainModel)
	}

	return router
}
