package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port=%q", cfg.Port)
	}
	if cfg.Device.Timeout != 0 {
		t.Fatalf("expected no device timeout by default, got %s", cfg.Device.Timeout)
	}
	if cfg.Panel.Locale != "ja" || cfg.Panel.Notifications.Capacity != 100 {
		t.Fatalf("unexpected panel config: %+v", cfg.Panel)
	}
	if cfg.DeviceSim.DrivePeriod != 300*time.Millisecond {
		t.Fatalf("drive_period=%s", cfg.DeviceSim.DrivePeriod)
	}
}

func TestLoad_FileValues(t *testing.T) {
	dir := writeConfig(t, `
port: "9000"
device:
  base_url: http://192.168.0.10
  timeout: 2s
panel:
  locale: en
`)
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" || cfg.Device.BaseURL != "http://192.168.0.10" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Device.Timeout != 2*time.Second {
		t.Fatalf("timeout=%s", cfg.Device.Timeout)
	}
	if cfg.Panel.Locale != "en" {
		t.Fatalf("locale=%q", cfg.Panel.Locale)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WIFIIO_DEVICE_BASE_URL", "http://10.0.0.5")
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Device.BaseURL != "http://10.0.0.5" {
		t.Fatalf("base_url=%q", cfg.Device.BaseURL)
	}
}

func TestLoad_RejectsBadCapacity(t *testing.T) {
	dir := writeConfig(t, `
panel:
  notifications:
    capacity: 0
`)
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected validation error")
	}
}
