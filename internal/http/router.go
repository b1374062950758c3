// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gavinpai/trip-planner-ai/internal/http/handlers"
	"github.com/gavinpai/trip-planner-ai/internal/http/middleware"
	"github.com/gavinpai/trip-planner-ai/internal/modules/usage"
	"github.com/gavinpai/trip-planner-ai/internal/planner"
)

type RouterDeps struct {
	Planner    *planner.Planner
	Usage      *usage.Service
	Redis      *redis.Client
	RatePerMin int
	Log        *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.Logging(deps.Log))
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.RateLimit(deps.Redis, deps.RatePerMin))

	recommendHandler := handlers.NewRecommendHandler(deps.Planner, deps.Usage)
	r.POST("/api/recommendations", recommendHandler.Recommend)
	r.POST("/api/recommendations/stream", recommendHandler.RecommendStream)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
