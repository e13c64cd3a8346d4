package metrics

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Config attaches service identity labels to every instrument.
type Config struct {
	ServiceName string
	Environment string
}

// ServiceMetrics holds the invoicing service's prometheus instruments.
type ServiceMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	draftsCreated   prometheus.Counter
	draftsActive    prometheus.Gauge
	draftsPurged    prometheus.Counter
	exportsTotal    *prometheus.CounterVec
}

var (
	serviceMetricsOnce sync.Once
	serviceMetrics     *ServiceMetrics
)

func Service() *ServiceMetrics {
	return ServiceWithConfig(Config{})
}

func ServiceWithConfig(cfg Config) *ServiceMetrics {
	serviceMetricsOnce.Do(func() {
		serviceMetrics = newServiceMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return serviceMetrics
}

func ResetServiceMetricsForTest() {
	serviceMetricsOnce = sync.Once{}
	serviceMetrics = nil
}

func newServiceMetrics(registerer prometheus.Registerer, cfg Config) *ServiceMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "invoicegen"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}

	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "invoicegen_http_requests_total",
			Help:        "Total HTTP requests by endpoint and status code.",
			ConstLabels: constLabels,
		},
		[]string{"endpoint", "status_code"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "invoicegen_http_request_duration_seconds",
			Help:        "HTTP request latency by endpoint.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		},
		[]string{"endpoint"},
	)

	draftsCreated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "invoicegen_drafts_created_total",
			Help:        "Total invoice drafts created.",
			ConstLabels: constLabels,
		},
	)

	draftsActive := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name:        "invoicegen_drafts_active",
			Help:        "Drafting sessions currently held in memory.",
			ConstLabels: constLabels,
		},
	)

	draftsPurged := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "invoicegen_drafts_purged_total",
			Help:        "Total expired drafting sessions swept from memory.",
			ConstLabels: constLabels,
		},
	)

	exportsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "invoicegen_exports_total",
			Help:        "Total invoice export attempts by result.",
			ConstLabels: constLabels,
		},
		[]string{"result"}, // success | failed
	)

	registerer.MustRegister(
		requestsTotal,
		requestDuration,
		draftsCreated,
		draftsActive,
		draftsPurged,
		exportsTotal,
	)

	return &ServiceMetrics{
		requestsTotal:   requestsTotal,
		requestDuration: requestDuration,
		draftsCreated:   draftsCreated,
		draftsActive:    draftsActive,
		draftsPurged:    draftsPurged,
		exportsTotal:    exportsTotal,
	}
}

func (m *ServiceMetrics) IncDraftCreated() {
	if m == nil {
		return
	}
	m.draftsCreated.Inc()
}

func (m *ServiceMetrics) SetDraftsActive(n int) {
	if m == nil {
		return
	}
	m.draftsActive.Set(float64(n))
}

func (m *ServiceMetrics) AddDraftsPurged(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.draftsPurged.Add(float64(n))
}

func (m *ServiceMetrics) IncExport(result string) {
	if m == nil {
		return
	}
	m.exportsTotal.WithLabelValues(result).Inc()
}
