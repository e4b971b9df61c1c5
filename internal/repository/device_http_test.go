package repository_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"wifi_io_panel/internal/models"
	"wifi_io_panel/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDevice is a fake board that records every request path.
type recordingDevice struct {
	mu    sync.Mutex
	paths []string
	code  int
	body  string
}

func (d *recordingDevice) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	d.paths = append(d.paths, r.Method+" "+r.URL.Path)
	d.mu.Unlock()
	code := d.code
	if code == 0 {
		code = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/json")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(d.body))
}

func (d *recordingDevice) requests() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.paths...)
}

func TestDeviceHTTP_FetchStatus_DecodesBody(t *testing.T) {
	dev := &recordingDevice{body: `{"name":"wifi-io","version":"1.2.3","esp_idf":"v4.0","compile_date":"Jan  1 2020","compile_time":"12:00:00","elapse":"0 day(s) 00:00:42"}`}
	srv := httptest.NewServer(dev)
	defer srv.Close()

	info, err := repository.NewDeviceHTTP(srv.URL+"/", srv.Client()).FetchStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.AppInfo{
		Name:        "wifi-io",
		Version:     "1.2.3",
		EspIDF:      "v4.0",
		CompileDate: "Jan  1 2020",
		CompileTime: "12:00:00",
		Elapse:      "0 day(s) 00:00:42",
	}, info)
	assert.Equal(t, []string{"GET /status/"}, dev.requests())
}

func TestDeviceHTTP_FetchStatus_PartialBodyIsNotValidated(t *testing.T) {
	dev := &recordingDevice{body: `{"name":"only-name","extra":true}`}
	srv := httptest.NewServer(dev)
	defer srv.Close()

	info, err := repository.NewDeviceHTTP(srv.URL, srv.Client()).FetchStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.AppInfo{Name: "only-name"}, info)
}

func TestDeviceHTTP_FetchStatus_Non2xx(t *testing.T) {
	dev := &recordingDevice{code: http.StatusInternalServerError, body: `{"name":"x"}`}
	srv := httptest.NewServer(dev)
	defer srv.Close()

	_, err := repository.NewDeviceHTTP(srv.URL, srv.Client()).FetchStatus(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrDeviceStatus))
}

func TestDeviceHTTP_FetchStatus_BadJSON(t *testing.T) {
	dev := &recordingDevice{body: `<html>not json</html>`}
	srv := httptest.NewServer(dev)
	defer srv.Close()

	_, err := repository.NewDeviceHTTP(srv.URL, srv.Client()).FetchStatus(context.Background())
	require.Error(t, err)
}

func TestDeviceHTTP_PushGPIO_PathPerPin(t *testing.T) {
	dev := &recordingDevice{body: `{ "status": "OK" }`}
	srv := httptest.NewServer(dev)
	defer srv.Close()

	client := repository.NewDeviceHTTP(srv.URL, srv.Client())
	for _, pin := range []int{32, 33, 25, 26} {
		res, err := client.PushGPIO(context.Background(), pin)
		require.NoError(t, err)
		assert.True(t, res.Succeeded())
	}
	assert.Equal(t, []string{
		"GET /api/gpio/push/32",
		"GET /api/gpio/push/33",
		"GET /api/gpio/push/25",
		"GET /api/gpio/push/26",
	}, dev.requests())
}

func TestDeviceHTTP_PushGPIO_NonOKStatusIsNotAnError(t *testing.T) {
	dev := &recordingDevice{body: `{"status":"NG"}`}
	srv := httptest.NewServer(dev)
	defer srv.Close()

	res, err := repository.NewDeviceHTTP(srv.URL, srv.Client()).PushGPIO(context.Background(), 25)
	require.NoError(t, err)
	assert.Equal(t, "NG", res.Status)
	assert.False(t, res.Succeeded())
}

func TestDeviceHTTP_PushGPIO_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := repository.NewDeviceHTTP(url, nil).PushGPIO(context.Background(), 32)
	require.Error(t, err)
}
