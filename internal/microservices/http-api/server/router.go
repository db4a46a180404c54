package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"moviesapi/internal/logging"
	"moviesapi/internal/microservices/http-api/handler"
	"moviesapi/internal/microservices/http-api/middleware"
	"moviesapi/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// Deps is everything the router needs. A nil RateLimiter disables rate limiting.
type Deps struct {
	Logger      *slog.Logger
	Genres      service.GenreService
	Movies      service.MovieService
	HealthCheck func(ctx context.Context) error
	CORSOrigins []string
	RateLimiter *middleware.RateLimiter
}

func NewRouter(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.MaxMultipartMemory = 8 << 20
	r.Use(
		gin.Recovery(),
		middleware.RequestID(logger),
		middleware.RequestLogger(logger),
		middleware.CORS(d.CORSOrigins),
		d.RateLimiter.Middleware(),
	)

	r.GET("/check-conn", checkConn(d.HealthCheck))

	api := r.Group("/api")
	handler.NewGenreHandler(d.Genres).RegisterRoutes(api.Group("/genres"))
	handler.NewMovieHandler(d.Movies).RegisterRoutes(api.Group("/movies"))

	return r
}

func checkConn(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				logging.FromContext(c.Request.Context(), nil).Warn("health_check_failed", "error", err.Error())
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	}
}
