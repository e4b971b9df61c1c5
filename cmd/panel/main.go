// @title        WiFi IO panel API
// @version      0.0.1
// @description  Control panel for a Wi-Fi GPIO board: device status and GPIO push commands.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wifi_io_panel/internal/config"
	"wifi_io_panel/internal/handlers"
	"wifi_io_panel/internal/logger"
	"wifi_io_panel/internal/metrics"
	"wifi_io_panel/internal/repository"
	"wifi_io_panel/internal/server"
	"wifi_io_panel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.Log.Level)
	if cfg.Log.Level != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.Register(prometheus.DefaultRegisterer)
	metrics.SetBuildInfo(handlers.PanelVersion)

	// wire dependencies
	repos := repository.NewRepository(repository.Options{
		DeviceBaseURL:        cfg.Device.BaseURL,
		DeviceTimeout:        cfg.Device.Timeout,
		NotificationCapacity: cfg.Panel.Notifications.Capacity,
	})
	services := service.NewService(repos, service.Options{Locale: cfg.Panel.Locale}, log)
	apiHandler := handlers.NewHandler(services, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// one status fetch at startup; the page shows placeholders until it lands
	services.Panel.Initialize(ctx)

	srv := server.New(server.DefaultOptions())
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("panel started", "port", cfg.Port, "device", cfg.Device.BaseURL)

	waitForShutdown(cancel, srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
	_ = log.Sync()
}
