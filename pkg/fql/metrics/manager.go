// Package metrics registers and records the prometheus metrics exposed by the
// fql render service.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	errMetricDoesNotExist = errors.New("metric does not exist")
	errMetricExists       = errors.New("metric already registered")
	errOddLabels          = errors.New("labels must be key/value pairs")
)

// Manager creates metrics and records values on them. Labels are passed as
// alternating name/value pairs, e.g. "table", "friend", "status", "ok".
type Manager interface {
	NewCounter(name, desc string, labelNames ...string)
	NewHistogram(name, desc string, buckets []float64, labelNames ...string)

	IncrementCounter(ctx context.Context, name string, labels ...string)
	RecordHistogram(ctx context.Context, name string, value float64, labels ...string)

	Handler() http.Handler
}

type logger interface {
	Errorf(format string, args ...any)
	Warnf(format string, args ...any)
}

type metricsManager struct {
	registry   *prometheus.Registry
	logger     logger
	mu         sync.RWMutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
}

// NewMetricsManager returns a Manager backed by a dedicated prometheus registry
// that also carries the Go runtime and process collectors.
func NewMetricsManager(logger logger) Manager {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &metricsManager{
		registry:   registry,
		logger:     logger,
		counters:   make(map[string]*prometheus.CounterVec),
		histograms: make(map[string]*prometheus.HistogramVec),
	}
}

func (m *metricsManager) NewCounter(name, desc string, labelNames ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.counters[name]; ok {
		m.logger.Warnf("%v: %s", errMetricExists, name)
		return
	}

	c := prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: desc}, labelNames)
	if err := m.registry.Register(c); err != nil {
		m.logger.Errorf("failed to register counter %s: %v", name, err)
		return
	}

	m.counters[name] = c
}

func (m *metricsManager) NewHistogram(name, desc string, buckets []float64, labelNames ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.histograms[name]; ok {
		m.logger.Warnf("%v: %s", errMetricExists, name)
		return
	}

	h := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: name, Help: desc, Buckets: buckets}, labelNames)
	if err := m.registry.Register(h); err != nil {
		m.logger.Errorf("failed to register histogram %s: %v", name, err)
		return
	}

	m.histograms[name] = h
}

func (m *metricsManager) IncrementCounter(_ context.Context, name string, labels ...string) {
	m.mu.RLock()
	c, ok := m.counters[name]
	m.mu.RUnlock()

	if !ok {
		m.logger.Errorf("%v: %s", errMetricDoesNotExist, name)
		return
	}

	l, err := toLabels(labels)
	if err != nil {
		m.logger.Errorf("counter %s: %v", name, err)
		return
	}

	counter, err := c.GetMetricWith(l)
	if err != nil {
		m.logger.Errorf("counter %s: %v", name, err)
		return
	}

	counter.Inc()
}

func (m *metricsManager) RecordHistogram(_ context.Context, name string, value float64, labels ...string) {
	m.mu.RLock()
	h, ok := m.histograms[name]
	m.mu.RUnlock()

	if !ok {
		m.logger.Errorf("%v: %s", errMetricDoesNotExist, name)
		return
	}

	l, err := toLabels(labels)
	if err != nil {
		m.logger.Errorf("histogram %s: %v", name, err)
		return
	}

	observer, err := h.GetMetricWith(l)
	if err != nil {
		m.logger.Errorf("histogram %s: %v", name, err)
		return
	}

	observer.Observe(value)
}

// Handler serves the registry in the prometheus exposition format.
func (m *metricsManager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func toLabels(kv []string) (prometheus.Labels, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d values", errOddLabels, len(kv))
	}

	labels := make(prometheus.Labels, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		labels[kv[i]] = kv[i+1]
	}

	return labels, nil
}
