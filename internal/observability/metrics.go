package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "exercisetracker_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "exercisetracker_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	usersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "exercisetracker_users_created_total",
		Help: "Count of registered users",
	})

	exercisesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "exercisetracker_exercises_created_total",
		Help: "Count of logged exercise entries",
	})

	logQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "exercisetracker_log_queries_total",
		Help: "Count of exercise log queries by result",
	}, []string{"result"})
)

// HTTPMetrics instruments every request with count and duration metrics.
func HTTPMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Use the route template so unmatched paths don't explode cardinality
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

// ObserveUserCreated increments the registered user counter.
func ObserveUserCreated() {
	usersCreated.Inc()
}

// ObserveExerciseCreated increments the logged entry counter.
func ObserveExerciseCreated() {
	exercisesCreated.Inc()
}

// ObserveLogQuery records a log query with a result label ("ok" or "error").
func ObserveLogQuery(result string) {
	logQueries.WithLabelValues(result).Inc()
}
