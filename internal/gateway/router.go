package gateway

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with CORS, recovery and request logging,
// and mounts the handler's routes.
func NewRouter(h *Handler, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))

	// The rendering collaborator is a browser app served from another
	// origin, so the gateway answers preflight for everyone.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	h.RegisterRoutes(r)
	return r
}

// requestLogger tags every request with a generated id and logs method, path,
// status and latency on completion.
func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	reqLog := log.Named("http")
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		reqLog.Infow("request",
			"id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
