package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests served, by method and status code.",
	}, []string{"method", "status"})
	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "activities",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds, by method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Successful signups, by activity.",
	}, []string{"activity"})
	unregistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Successful unregistrations, by activity.",
	}, []string{"activity"})
	rosterSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities",
		Subsystem: "roster",
		Name:      "size",
		Help:      "Current number of participants, by activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, signupsTotal, unregistrationsTotal, rosterSize)
}

// RecordRequest counts one served request and observes its latency.
func RecordRequest(method string, status int, duration time.Duration) {
	requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordSignup counts a successful signup and moves the roster gauge.
func RecordSignup(activity string, size int) {
	signupsTotal.WithLabelValues(activity).Inc()
	rosterSize.WithLabelValues(activity).Set(float64(size))
}

// RecordUnregistration counts a successful unregistration and moves the
// roster gauge.
func RecordUnregistration(activity string, size int) {
	unregistrationsTotal.WithLabelValues(activity).Inc()
	rosterSize.WithLabelValues(activity).Set(float64(size))
}

// SetRosterSize primes or corrects the roster gauge for an activity.
func SetRosterSize(activity string, size int) {
	rosterSize.WithLabelValues(activity).Set(float64(size))
}
