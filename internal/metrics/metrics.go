package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/dominioncity/engage-backend/internal/health"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Membership metrics

	SignupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "engage",
		Name:      "signups_total",
		Help:      "Total signup attempts, by outcome.",
	}, []string{"outcome"})

	LoginsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "engage",
		Name:      "logins_total",
		Help:      "Total login attempts, by outcome.",
	}, []string{"outcome"})

	PointsAwardedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "engage",
		Name:      "points_awarded_total",
		Help:      "Total engagement points awarded across all members.",
	})

	ReminderEmailsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "engage",
		Name:      "reminder_emails_total",
		Help:      "Service reminder emails sent, by outcome.",
	}, []string{"outcome"})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "engage",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "engage",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register() {
	prometheus.MustRegister(
		SignupsTotal,
		LoginsTotal,
		PointsAwardedTotal,
		ReminderEmailsTotal,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// NewServer returns the ops server: Prometheus scrape endpoint plus
// liveness/readiness probes.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/livez", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Liveness(r.Context()))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Readiness(r.Context()))
	})
	return &http.Server{Addr: addr, Handler: mux}
}

func writeHealth(w http.ResponseWriter, result health.HealthResult) {
	w.Header().Set("Content-Type", "application/json")
	if result.Status != "up" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(result)
}
