package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the panel and simulator configuration read from configs/config.yml.
type Config struct {
	Port      string          `mapstructure:"port"`
	Log       LogConfig       `mapstructure:"log"`
	Device    DeviceConfig    `mapstructure:"device"`
	Panel     PanelConfig     `mapstructure:"panel"`
	DeviceSim DeviceSimConfig `mapstructure:"devicesim"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DeviceConfig points the panel at the board it controls.
type DeviceConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"` // 0 means no timeout
}

type PanelConfig struct {
	Locale        string              `mapstructure:"locale"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
}

type NotificationsConfig struct {
	Capacity int `mapstructure:"capacity"`
}

type DeviceSimConfig struct {
	Port        string        `mapstructure:"port"`
	DrivePeriod time.Duration `mapstructure:"drive_period"`
	Name        string        `mapstructure:"name"`
	Version     string        `mapstructure:"version"`
}

const (
	envPrefix      = "WIFIIO"
	configName     = "config"
	defaultCfgPath = "configs"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("device.base_url", "http://esp32-wifi-io.local")
	v.SetDefault("device.timeout", 0)
	v.SetDefault("panel.locale", "ja")
	v.SetDefault("panel.notifications.capacity", 100)
	v.SetDefault("devicesim.port", "8081")
	v.SetDefault("devicesim.drive_period", 300*time.Millisecond)
	v.SetDefault("devicesim.name", "esp32-wifi-io")
	v.SetDefault("devicesim.version", "1.0.0")
}

// Load reads config.yml from the given directories (configs/ when none are
// given) and applies WIFIIO_* environment overrides. A missing file is not an
// error: defaults and environment still apply.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if len(paths) == 0 {
		paths = []string{defaultCfgPath}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName(configName)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Device.BaseURL) == "" {
		return errors.New("device.base_url must not be empty")
	}
	if c.Device.Timeout < 0 {
		return fmt.Errorf("device.timeout must be >= 0, got %s", c.Device.Timeout)
	}
	if c.Panel.Notifications.Capacity <= 0 {
		return fmt.Errorf("panel.notifications.capacity must be > 0, got %d", c.Panel.Notifications.Capacity)
	}
	return nil
}
