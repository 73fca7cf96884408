package authority

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	Requests   *prometheus.CounterVec
	BytesTotal prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trand_authority_requests_total",
			Help: "Entropy requests by transport and result code",
		}, []string{"transport", "code"}),
		BytesTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "trand_authority_bytes_total",
			Help: "Random bytes handed out",
		}),
	}
}

func (m *metrics) observe(transport string, code int) {
	m.Requests.WithLabelValues(transport, strconv.Itoa(code)).Inc()
}
