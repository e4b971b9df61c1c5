package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wifi_io_panel/internal/config"
	"wifi_io_panel/internal/devicesim"
	"wifi_io_panel/internal/logger"
	"wifi_io_panel/internal/server"

	"github.com/gin-gonic/gin"
)

const (
	releaseTick     = 50 * time.Millisecond
	shutdownTimeout = 5 * time.Second

	// reported as the firmware's build info
	simEspIDF = "v3.3-sim"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.Log.Level).Named("devicesim")
	gin.SetMode(gin.ReleaseMode)

	started := time.Now()
	board := devicesim.NewBoard(devicesim.Identity{
		Name:        cfg.DeviceSim.Name,
		Version:     cfg.DeviceSim.Version,
		EspIDF:      simEspIDF,
		CompileDate: started.Format("Jan _2 2006"),
		CompileTime: started.Format("15:04:05"),
	}, cfg.DeviceSim.DrivePeriod, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go board.Run(ctx, releaseTick)

	srv := server.New(server.DefaultOptions())
	go func() {
		if err := srv.Run(cfg.DeviceSim.Port, board.Routes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
	log.Infow("device simulator started", "port", cfg.DeviceSim.Port, "drive_period", cfg.DeviceSim.DrivePeriod)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
