package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

var (
	buildInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wifi_io_panel_build_info",
			Help: "Panel build information",
		},
		[]string{"version"},
	)

	gpioPushes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wifi_io_panel_gpio_push_total",
			Help: "GPIO push commands sent to the device",
		},
		[]string{"pin", "outcome"},
	)

	statusFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wifi_io_panel_status_fetch_total",
			Help: "Device status fetches",
		},
		[]string{"outcome"},
	)

	deviceLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wifi_io_panel_device_request_duration_seconds",
			Help:    "Round trip time of requests to the device",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	wsClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wifi_io_panel_ws_clients",
			Help: "Connected websocket clients",
		},
	)
)

// Register registers all metrics with the provided registerer.
func Register(r prometheus.Registerer) {
	r.MustRegister(buildInfo, gpioPushes, statusFetches, deviceLatency, wsClients)
}

func SetBuildInfo(version string) {
	buildInfo.WithLabelValues(version).Set(1)
}

// RecordGPIOPush counts one push command by pin and outcome.
func RecordGPIOPush(pin string, success bool) {
	gpioPushes.WithLabelValues(pin, outcome(success)).Inc()
}

func RecordStatusFetch(success bool) {
	statusFetches.WithLabelValues(outcome(success)).Inc()
}

// ObserveDeviceLatency records how long a device endpoint took to answer.
func ObserveDeviceLatency(endpoint string, d time.Duration) {
	deviceLatency.WithLabelValues(endpoint).Observe(d.Seconds())
}

func WSClientConnected()    { wsClients.Inc() }
func WSClientDisconnected() { wsClients.Dec() }

func outcome(success bool) string {
	if success {
		return outcomeSuccess
	}
	return outcomeFailure
}
