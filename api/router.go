// api/router.go
package api

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Annany2002/servo-panel/api/handlers"
	"github.com/Annany2002/servo-panel/api/middleware"
	"github.com/Annany2002/servo-panel/config"
	"github.com/Annany2002/servo-panel/internal/auth"
	"github.com/Annany2002/servo-panel/internal/logger"
	"github.com/Annany2002/servo-panel/internal/metrics"
	"github.com/Annany2002/servo-panel/internal/render"
	"github.com/Annany2002/servo-panel/web"
)

var customLog = logger.NewLogger()

// SetupRouter initializes the Gin router and sets up all routes.
// httpMetrics may be nil.
func SetupRouter(cfg *config.Config, httpMetrics *metrics.HTTPMetrics) (*gin.Engine, error) {
	renderer, err := newRenderer(cfg)
	if err != nil {
		return nil, err
	}
	return setupRouter(cfg, httpMetrics, renderer), nil
}

// newRenderer uses the embedded templates unless TEMPLATE_DIR points at a
// directory on disk, which is re-read per request in debug mode.
func newRenderer(cfg *config.Config) (*render.Renderer, error) {
	if cfg.TemplateDir == "" {
		return render.New(web.Templates(), "*.html", false)
	}

	info, err := os.Stat(cfg.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %q is not a directory", cfg.TemplateDir)
	}
	customLog.Printf("Router: loading templates from %s (reload: %v)", cfg.TemplateDir, cfg.Debug)
	return render.New(os.DirFS(cfg.TemplateDir), "*.html", cfg.Debug)
}

func setupRouter(cfg *config.Config, httpMetrics *metrics.HTTPMetrics, renderer handlers.PageRenderer) *gin.Engine {
	router := gin.Default() // Includes Logger and Recovery

	router.Use(middleware.RequestID())
	if httpMetrics != nil {
		router.Use(httpMetrics.Middleware())
	}
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	if cfg.RateLimitPerMinute > 0 {
		router.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)))
	}
	// Runs after Logger/Recovery, wrapping the handlers.
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Sessions(auth.NewSessionStore(cfg.SessionSecret, cfg.IsProduction())))

	pageHandler := handlers.NewPageHandler(renderer)

	router.GET("/", pageHandler.Index)
	router.HEAD("/", pageHandler.Index)
	router.StaticFS("/static", web.StaticFileSystem())

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodHead},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}
