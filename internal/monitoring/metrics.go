package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects the counters exposed on the metrics endpoint
type Metrics struct {
	OrdersCreated    prometheus.Counter
	ChatTurns        prometheus.Counter
	UnresolvedLines  prometheus.Counter
	RejectedPayloads prometheus.Counter
}

// NewMetrics registers the counters with the given registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OrdersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "cafeteria_orders_created_total",
			Help: "Number of orders captured from chat sessions",
		}),
		ChatTurns: factory.NewCounter(prometheus.CounterOpts{
			Name: "cafeteria_chat_turns_total",
			Help: "Number of customer chat turns processed",
		}),
		UnresolvedLines: factory.NewCounter(prometheus.CounterOpts{
			Name: "cafeteria_unresolved_lines_total",
			Help: "Number of order lines that had no menu match",
		}),
		RejectedPayloads: factory.NewCounter(prometheus.CounterOpts{
			Name: "cafeteria_rejected_payloads_total",
			Help: "Number of order payloads rejected for invalid quantities",
		}),
	}
}
