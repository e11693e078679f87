package bcex

import "github.com/prometheus/client_golang/prometheus"

var messageCounters = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "bcex_message_count",
	Help: "bcex income message counters",
}, []string{"channel"})

var requestCounters = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "bcex_request_count",
	Help: "bcex outbound request counters",
}, []string{"action"})

var readyState = prometheus.NewGaugeVec(prometheus.GaugeOpts{
	Name: "bcex_ready_state",
	Help: "bcex websocket session status",
}, []string{"environment"})

var sequenceGaps = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "bcex_sequence_gap_count",
	Help: "bcex detected sequence gaps, each one fatal for the session",
})

func init() {
	prometheus.MustRegister(messageCounters, requestCounters, readyState, sequenceGaps)
}
