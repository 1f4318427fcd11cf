// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Annany2002/servo-panel/api"
	"github.com/Annany2002/servo-panel/config"
	"github.com/Annany2002/servo-panel/internal/logger"
	"github.com/Annany2002/servo-panel/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

var (
	customLog = logger.NewLogger()
)

func main() {
	customLog.Println("Starting servo panel server...")

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		customLog.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.Debug); err != nil {
		customLog.Fatalf("Failed to configure logging: %v", err)
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
		customLog.Warnln("WARNING: debug mode is on, do not expose this server to untrusted networks!")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Metrics
	registry := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	// 3. Setup Router
	router, err := api.SetupRouter(cfg, httpMetrics)
	if err != nil {
		customLog.Fatalf("Failed to set up router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	servers := []*http.Server{{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}}
	if cfg.MetricsAddr != "" {
		servers = append(servers, &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           metrics.Handler(registry),
			ReadHeaderTimeout: 10 * time.Second,
		})
	}

	// 4. Start Servers
	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func(srv *http.Server) {
			customLog.Printf("Server listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(srv)
	}

	exitCode := 0
	select {
	case <-ctx.Done():
		customLog.Println("Shutdown signal received")
	case err := <-errCh:
		customLog.Errorf("Server failed: %v", err)
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			customLog.Warnf("Error shutting down %s: %v", srv.Addr, err)
		}
	}
	customLog.Println("Server stopped")

	if exitCode != 0 {
		cancel()
		stop()
		os.Exit(exitCode)
	}
}
