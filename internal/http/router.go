// README: HTTP router registration (gin engine, middleware chain, routes).
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tripfit/internal/config"
	"tripfit/internal/http/handlers"
	"tripfit/internal/http/middleware"
	"tripfit/internal/logger"
	"tripfit/internal/modules/catalog"
	"tripfit/internal/modules/suggest"
)

type RouterDeps struct {
	Catalog   *catalog.Service
	Suggest   *suggest.Service
	RateLimit config.RateLimitConfig
	Log       *logger.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	log := deps.Log
	if log == nil {
		log = logger.Discard()
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(log),
		middleware.Recovery(log),
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
			ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
			MaxAge:          12 * time.Hour,
		}),
		middleware.RateLimit(deps.RateLimit, log),
	)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")

	destinationHandler := handlers.NewDestinationHandler(deps.Catalog)
	api.GET("/cities", destinationHandler.Cities)
	api.GET("/destinations", destinationHandler.List)

	suggestHandler := handlers.NewSuggestHandler(deps.Suggest)
	api.POST("/suggestions", suggestHandler.Create)

	breakdownHandler := handlers.NewBreakdownHandler()
	api.POST("/breakdowns", breakdownHandler.Compute)
	api.POST("/breakdowns/adjust", breakdownHandler.Adjust)

	return r
}
