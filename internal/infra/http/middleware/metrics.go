package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/meridianadvisory/partner-portal/internal/usecase"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	reminderRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reminder_runs_total",
			Help: "Total number of reminder dispatch passes",
		},
	)

	remindersSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminders_sent_total",
			Help: "Total number of reminder emails sent",
		},
		[]string{"stage"},
	)

	remindersFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminders_failed_total",
			Help: "Total number of reminder emails that failed to send",
		},
		[]string{"stage"},
	)

	partnersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "partners_registered_total",
			Help: "Total number of partner registrations",
		},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

// RecordReminderRun acumula os contadores de um passe do dispatcher.
func RecordReminderRun(summary *usecase.DispatchSummary) {
	reminderRunsTotal.Inc()
	for _, d := range summary.Details {
		stage := strconv.Itoa(d.Stage)
		if d.Status == "sent" {
			remindersSentTotal.WithLabelValues(stage).Inc()
		} else {
			remindersFailedTotal.WithLabelValues(stage).Inc()
			integrationErrors.WithLabelValues("email").Inc()
		}
	}
}

func RecordPartnerRegistration() {
	partnersRegistered.Inc()
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}
