package service

import (
	"context"
	"sync"
	"time"

	"wifi_io_panel/internal/logger"
	"wifi_io_panel/internal/metrics"
	"wifi_io_panel/internal/models"
	"wifi_io_panel/internal/repository"
)

// gpioList is the fixed set of pins the panel offers buttons for.
var gpioList = [...]int{32, 33, 25, 26}

type PanelService struct {
	device repository.DeviceRepo
	pub    Publisher
	log    *logger.Logger

	mu   sync.RWMutex
	info models.AppInfo
}

func NewPanelService(device repository.DeviceRepo, pub Publisher, log *logger.Logger) *PanelService {
	if log == nil {
		log = logger.Nop()
	}
	return &PanelService{
		device: device,
		pub:    pub,
		log:    log,
		info:   models.PlaceholderAppInfo(),
	}
}

// Initialize starts the single status fetch done at startup. The returned
// channel is closed once that fetch has finished.
func (s *PanelService) Initialize(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.RefreshStatus(ctx)
	}()
	return done
}

// RefreshStatus fetches GET /status/ and replaces AppInfo wholesale on
// success. Failures leave AppInfo untouched and are not reported to the
// user. It returns the AppInfo in effect afterwards.
func (s *PanelService) RefreshStatus(ctx context.Context) models.AppInfo {
	start := time.Now()
	info, err := s.device.FetchStatus(ctx)
	metrics.ObserveDeviceLatency("status", time.Since(start))
	metrics.RecordStatusFetch(err == nil)
	if err != nil {
		s.log.Debugw("device_status_failed", "err", err)
		return s.AppInfo()
	}

	s.mu.Lock()
	s.info = info
	s.mu.Unlock()

	s.log.Debugw("device_status_updated", "name", info.Name, "version", info.Version)
	if s.pub != nil {
		s.pub.Publish(Event{Type: EventStatus, Data: info})
	}
	return info
}

func (s *PanelService) AppInfo() models.AppInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

// GpioList returns a copy of the fixed pin list.
func (s *PanelService) GpioList() []int {
	out := make([]int, len(gpioList))
	copy(out, gpioList[:])
	return out
}
