package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wifi_io_panel/internal/models"
	"wifi_io_panel/internal/repository"
	"wifi_io_panel/internal/service"
)

// slowDevice answers like the board, but only after a delay.
func slowDevice(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		w.Header().Set("Content-Type", "text/json")
		if strings.HasPrefix(r.URL.Path, "/status") {
			_, _ = w.Write([]byte(`{"name":"wifi-io","version":"1.0.0"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func canceledRequest(method, target string) *http.Request {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return httptest.NewRequest(method, target, nil).WithContext(ctx)
}

func TestPushGPIO_CompletesAfterClientGoesAway(t *testing.T) {
	dev := slowDevice(t, 50*time.Millisecond)
	repos := repository.NewRepository(repository.Options{DeviceBaseURL: dev.URL, NotificationCapacity: 10})
	s := service.NewService(repos, service.Options{Locale: "en"}, nil)
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, canceledRequest(http.MethodPost, "/api/v1/gpio/32/push"))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var n models.Notification
	if err := json.Unmarshal(w.Body.Bytes(), &n); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if n.Level != models.LevelSuccess {
		t.Fatalf("expected SUCCESS toast, got %+v", n)
	}

	stored, err := repos.Notifications.List(context.Background(), time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(stored) != 1 || stored[0].Level != models.LevelSuccess {
		t.Fatalf("expected one stored SUCCESS toast, got %+v", stored)
	}
}

func TestRefreshStatus_CompletesAfterClientGoesAway(t *testing.T) {
	dev := slowDevice(t, 50*time.Millisecond)
	repos := repository.NewRepository(repository.Options{DeviceBaseURL: dev.URL, NotificationCapacity: 10})
	s := service.NewService(repos, service.Options{}, nil)
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, canceledRequest(http.MethodPost, "/api/v1/status/refresh"))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if got := s.Panel.AppInfo(); got.Name != "wifi-io" || got.Version != "1.0.0" {
		t.Fatalf("AppInfo not updated: %+v", got)
	}
}
