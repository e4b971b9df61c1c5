package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"wifi_io_panel/internal/models"
)

// ErrDeviceStatus is returned when the device answers with a non-2xx code.
var ErrDeviceStatus = errors.New("device returned non-2xx status")

const (
	statusPath  = "/status/"
	gpioPushFmt = "/api/gpio/push/"

	// bodies from the board are tiny; cap reads anyway
	maxBodyBytes = 1 << 16
)

// DeviceHTTP talks to the board's HTTP API.
type DeviceHTTP struct {
	baseURL    string
	httpClient *http.Client
}

func NewDeviceHTTP(baseURL string, httpClient *http.Client) *DeviceHTTP {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &DeviceHTTP{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Ensure implementation of DeviceRepo at compile time.
var _ DeviceRepo = (*DeviceHTTP)(nil)

// FetchStatus issues GET /status/ and decodes the body into a fresh AppInfo.
// Fields absent from the body are left empty; no shape validation is done.
func (d *DeviceHTTP) FetchStatus(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo
	if err := d.getJSON(ctx, statusPath, &info); err != nil {
		return models.AppInfo{}, fmt.Errorf("fetch status: %w", err)
	}
	return info, nil
}

// PushGPIO issues GET /api/gpio/push/{pin}. The pin is not range checked.
func (d *DeviceHTTP) PushGPIO(ctx context.Context, pin int) (models.ControlResult, error) {
	var res models.ControlResult
	if err := d.getJSON(ctx, gpioPushFmt+strconv.Itoa(pin), &res); err != nil {
		return models.ControlResult{}, fmt.Errorf("push gpio %d: %w", pin, err)
	}
	return res, nil
}

func (d *DeviceHTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return fmt.Errorf("%w: %d", ErrDeviceStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
