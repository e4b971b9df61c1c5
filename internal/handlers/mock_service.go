package handlers

import (
	"context"
	"sync"

	"wifi_io_panel/internal/models"
	"wifi_io_panel/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockPanel struct {
	mu           sync.Mutex
	info         models.AppInfo
	refreshed    models.AppInfo
	gpio         []int
	refreshCalls int
}

func (m *mockPanel) Initialize(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	close(done)
	return done
}

func (m *mockPanel) RefreshStatus(ctx context.Context) models.AppInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshCalls++
	m.info = m.refreshed
	return m.info
}

func (m *mockPanel) AppInfo() models.AppInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.info
}

func (m *mockPanel) GpioList() []int {
	return append([]int(nil), m.gpio...)
}

type mockControl struct {
	resp     models.Notification
	lastPin  int
	pinCalls int
}

func (m *mockControl) TriggerPin(ctx context.Context, pin int) models.Notification {
	m.pinCalls++
	m.lastPin = pin
	n := m.resp
	n.Pin = pin
	return n
}

type mockNotifications struct {
	resp   []models.Notification
	err    error
	filter service.NotificationFilter
}

func (m *mockNotifications) List(ctx context.Context, f service.NotificationFilter) ([]models.Notification, error) {
	m.filter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if s.Events == nil {
		s.Events = service.NewHub()
	}
	return NewHandler(s, nil).InitRoutes()
}
