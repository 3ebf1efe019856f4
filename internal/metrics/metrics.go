// Package metrics содержит Prometheus-инструментацию движка вмешательств.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal считает HTTP-запросы по методу, маршруту и статусу
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pigeon",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration наблюдает длительность запросов
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pigeon",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// DecisionsTotal считает решения гейта по исходу
	DecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pigeon",
			Name:      "decisions_total",
			Help:      "Total intervention gate decisions by outcome.",
		},
		[]string{"outcome"},
	)

	// PredictionsTotal считает скоринги по фактически исполненному бэкенду
	PredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pigeon",
			Name:      "predictions_total",
			Help:      "Total risk predictions by executed backend.",
		},
		[]string{"backend"},
	)

	// FeedbackTotal считает обратную связь по значению
	FeedbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pigeon",
			Name:      "feedback_total",
			Help:      "Total intervention feedback submissions by response.",
		},
		[]string{"response"},
	)

	// WebhookDeliveriesTotal считает попытки доставки вебхуков по результату
	WebhookDeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pigeon",
			Name:      "webhook_deliveries_total",
			Help:      "Total webhook deliveries by result.",
		},
		[]string{"result"},
	)

	// NotifierFallbacksTotal считает случаи подстановки шаблонного текста
	NotifierFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pigeon",
			Name:      "notifier_fallbacks_total",
			Help:      "Total notification texts substituted by the fallback template.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		DecisionsTotal,
		PredictionsTotal,
		FeedbackTotal,
		WebhookDeliveriesTotal,
		NotifierFallbacksTotal,
	)
}

// Handler возвращает gin-обработчик для /metrics
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// Middleware - gin middleware, пишущий счетчик и гистограмму запросов
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
