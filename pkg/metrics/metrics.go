package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса.
// Все методы инкремента безопасны при nil-получателе: если метрики
// выключены в конфигурации, в сервисы передается nil.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreated   prometheus.Counter
	BookingsExpired   prometheus.Counter
	BookingsCompleted prometheus.Counter
	RevenueTotal      prometheus.Counter
	SlotDesyncRepairs prometheus.Counter
}

// New регистрирует метрики в default-регистре Prometheus
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "parking_bookings_created_total",
			Help:        "Total number of bookings created",
			ConstLabels: constLabels,
		}),

		BookingsExpired: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "parking_bookings_expired_total",
			Help:        "Total number of pending bookings cancelled by the expiration sweep",
			ConstLabels: constLabels,
		}),

		BookingsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "parking_bookings_completed_total",
			Help:        "Total number of bookings completed at exit",
			ConstLabels: constLabels,
		}),

		RevenueTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "parking_revenue_total",
			Help:        "Total amount charged across completed bookings",
			ConstLabels: constLabels,
		}),

		SlotDesyncRepairs: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "parking_slot_desync_repairs_total",
			Help:        "Times markEntry re-assigned a slot that was unexpectedly free",
			ConstLabels: constLabels,
		}),
	}
}

// IncBookingsCreated инкрементирует счетчик созданных бронирований
func (m *Metrics) IncBookingsCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

// AddBookingsExpired добавляет количество отмененных sweep'ом бронирований
func (m *Metrics) AddBookingsExpired(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.BookingsExpired.Add(float64(n))
}

// ObserveCompleted инкрементирует счетчик завершенных бронирований
// и добавляет начисленную сумму в счетчик выручки
func (m *Metrics) ObserveCompleted(amount float64) {
	if m == nil {
		return
	}
	m.BookingsCompleted.Inc()
	if amount > 0 {
		m.RevenueTotal.Add(amount)
	}
}

// IncSlotDesyncRepairs инкрементирует счетчик восстановленных слотов
func (m *Metrics) IncSlotDesyncRepairs() {
	if m == nil {
		return
	}
	m.SlotDesyncRepairs.Inc()
}
