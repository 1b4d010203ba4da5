package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "smc"

// Metrics набор prometheus коллекторов сервиса.
// Все методы безопасны для nil receiver, поэтому при выключенных метриках передается nil.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	slotDecisionsTotal  *prometheus.CounterVec
	enumeratedSlots     *prometheus.HistogramVec
	cacheRequestsTotal  *prometheus.CounterVec
}

// New регистрирует коллекторы в reg. При reg == nil используется prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests by route, method and status code",
			ConstLabels: constLabels,
		}, []string{"route", "method", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"route", "method"}),
		slotDecisionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "availability",
			Name:        "slot_decisions_total",
			Help:        "Slot validation decisions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		enumeratedSlots: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "availability",
			Name:        "enumerated_slots",
			Help:        "Number of free start times returned per enumeration",
			Buckets:     []float64{0, 1, 2, 4, 8, 16, 32, 64, 128},
			ConstLabels: constLabels,
		}, []string{"duration_minutes"}),
		cacheRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "cache",
			Name:        "requests_total",
			Help:        "Reservation snapshot cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.slotDecisionsTotal,
		m.enumeratedSlots,
		m.cacheRequestsTotal,
	)

	return m
}

// ObserveHTTPRequest учитывает один обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveSlotDecision учитывает решение по слоту. Пустой reason означает, что слот доступен.
func (m *Metrics) ObserveSlotDecision(reason string) {
	if m == nil {
		return
	}
	if reason == "" {
		reason = "available"
	}
	m.slotDecisionsTotal.WithLabelValues(reason).Inc()
}

// ObserveEnumeratedSlots учитывает размер списка свободных слотов
func (m *Metrics) ObserveEnumeratedSlots(durationMinutes, count int) {
	if m == nil {
		return
	}
	m.enumeratedSlots.WithLabelValues(strconv.Itoa(durationMinutes)).Observe(float64(count))
}

func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheRequestsTotal.WithLabelValues("hit").Inc()
}

func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cacheRequestsTotal.WithLabelValues("miss").Inc()
}

// CacheError учитывает ошибку Redis, после которой чтение ушло в основное хранилище
func (m *Metrics) CacheError() {
	if m == nil {
		return
	}
	m.cacheRequestsTotal.WithLabelValues("error").Inc()
}
