package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	ServiceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal    *prometheus.CounterVec
	DBQueryDuration   *prometheus.HistogramVec
	DBConnectionsOpen *prometheus.GaugeVec
	DBConnectionsUsed *prometheus.GaugeVec
	DBConnectionsIdle *prometheus.GaugeVec

	ShiftsClosedTotal *prometheus.CounterVec
	SettlementRevenue *prometheus.HistogramVec
}

// New регистрирует метрики в глобальном реестре Prometheus (его отдает promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ServiceName: serviceName,

		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		DBQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		DBConnectionsOpen: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of established database connections",
		}, []string{"service"}),

		DBConnectionsUsed: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Number of database connections currently in use",
		}, []string{"service"}),

		DBConnectionsIdle: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		}, []string{"service"}),

		ShiftsClosedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shifts_closed_total",
			Help: "Total number of closed work sessions",
		}, []string{"service"}),

		SettlementRevenue: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shift_settlement_revenue",
			Help:    "Revenue frozen by a work session close",
			Buckets: []float64{0, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}, []string{"service"}),
	}
}

// ObserveSettlement фиксирует закрытие смены и замороженную выручку.
// Безопасен для nil receiver - в этом случае метрики выключены.
func (m *Metrics) ObserveSettlement(count int, revenue float64) {
	if m == nil {
		return
	}
	m.ShiftsClosedTotal.WithLabelValues(m.ServiceName).Inc()
	m.SettlementRevenue.WithLabelValues(m.ServiceName).Observe(revenue)
}
