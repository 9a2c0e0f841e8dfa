package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "image_verification_operator"

// Metrics holds the operator's prometheus collectors. All methods are safe to call on a
// nil *Metrics so components can run without metrics wired in.
type Metrics struct {
	registry *prometheus.Registry

	tasksDetected     prometheus.Counter
	tasksAttested     prometheus.Counter
	tasksSkipped      *prometheus.CounterVec
	tasksDropped      *prometheus.CounterVec
	submissionRetries prometheus.Counter
	feedDisconnects   prometheus.Counter
	inFlightTasks     prometheus.Gauge
	registrationState prometheus.Gauge
	submitDuration    prometheus.Histogram
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		tasksDetected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_detected_total",
			Help:      "Total number of NewTaskCreated events received",
		}),
		tasksAttested: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_attested_total",
			Help:      "Total number of task responses confirmed on chain",
		}),
		tasksSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_skipped_total",
			Help:      "Total number of task deliveries skipped without submitting",
		}, []string{"reason"}),
		tasksDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_dropped_total",
			Help:      "Total number of tasks dropped after a permanent failure",
		}, []string{"reason"}),
		submissionRetries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submission_retries_total",
			Help:      "Total number of respondToTask retries after transient failures",
		}),
		feedDisconnects: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_disconnects_total",
			Help:      "Total number of task feed disconnects",
		}),
		inFlightTasks: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tasks_in_flight",
			Help:      "Number of tasks currently being handled",
		}),
		registrationState: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registration_state",
			Help:      "Operator registration state (0=unregistered, 2=delegation registered, 4=avs registered)",
		}),
		submitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "task_response_duration_seconds",
			Help:      "Time from task receipt to confirmed response",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) TaskDetected() {
	if m == nil {
		return
	}
	m.tasksDetected.Inc()
}

func (m *Metrics) TaskAttested(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.tasksAttested.Inc()
	m.submitDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) TaskSkipped(reason string) {
	if m == nil {
		return
	}
	m.tasksSkipped.WithLabelValues(reason).Inc()
}

func (m *Metrics) TaskDropped(reason string) {
	if m == nil {
		return
	}
	m.tasksDropped.WithLabelValues(reason).Inc()
}

func (m *Metrics) SubmissionRetried() {
	if m == nil {
		return
	}
	m.submissionRetries.Inc()
}

func (m *Metrics) FeedDisconnected() {
	if m == nil {
		return
	}
	m.feedDisconnects.Inc()
}

func (m *Metrics) TaskStarted() {
	if m == nil {
		return
	}
	m.inFlightTasks.Inc()
}

func (m *Metrics) TaskFinished() {
	if m == nil {
		return
	}
	m.inFlightTasks.Dec()
}

func (m *Metrics) SetRegistrationState(state int) {
	if m == nil {
		return
	}
	m.registrationState.Set(float64(state))
}

// Server exposes the registry on /metrics.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

func NewServer(m *Metrics, port int, logger *zap.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start serves in the background until ctx is cancelled.
func (s *Server) Start(ctx context.Context) {
	go func() {
		s.logger.Sugar().Infow("Starting metrics server", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Sugar().Errorw("Metrics server failed", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Sugar().Errorw("Failed to shut down metrics server", zap.Error(err))
		}
	}()
}
