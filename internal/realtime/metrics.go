package realtime

import (
	"github.com/prometheus/client_golang/prometheus"
)

type hubMetrics struct {
	activeConnections prometheus.Gauge
	onlineUsers       prometheus.Gauge
	activeRooms       prometheus.Gauge
	published         *prometheus.CounterVec
	deliveries        prometheus.Counter
	dropped           prometheus.Counter
}

func newHubMetrics(reg prometheus.Registerer) *hubMetrics {
	if reg == nil {
		return nil
	}

	m := &hubMetrics{
		activeConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "umc_ws_connections_active",
			Help: "Current number of live realtime connections.",
		}),
		onlineUsers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "umc_users_online",
			Help: "Current number of users with at least one live connection.",
		}),
		activeRooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "umc_rooms_active",
			Help: "Current number of conversation rooms with subscribers.",
		}),
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "umc_events_published_total",
			Help: "Realtime events published, by event type.",
		}, []string{"type"}),
		deliveries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "umc_event_deliveries_total",
			Help: "Realtime events enqueued to a connection.",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "umc_event_deliveries_dropped_total",
			Help: "Realtime deliveries dropped because the connection was gone or too slow.",
		}),
	}

	reg.MustRegister(
		m.activeConnections,
		m.onlineUsers,
		m.activeRooms,
		m.published,
		m.deliveries,
		m.dropped,
	)
	return m
}

func (m *hubMetrics) connectionOpened(firstForUser bool) {
	if m == nil {
		return
	}
	m.activeConnections.Inc()
	if firstForUser {
		m.onlineUsers.Inc()
	}
}

func (m *hubMetrics) connectionClosed(lastForUser bool) {
	if m == nil {
		return
	}
	m.activeConnections.Dec()
	if lastForUser {
		m.onlineUsers.Dec()
	}
}

func (m *hubMetrics) setRooms(n int) {
	if m == nil {
		return
	}
	m.activeRooms.Set(float64(n))
}

func (m *hubMetrics) recordPublish(eventType string, delivered, dropped int) {
	if m == nil {
		return
	}
	m.published.WithLabelValues(eventType).Inc()
	m.deliveries.Add(float64(delivered))
	m.dropped.Add(float64(dropped))
}
