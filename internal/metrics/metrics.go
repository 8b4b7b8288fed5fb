// Package metrics provides Prometheus metrics collection for the cafe service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ShoppingListsTotal tracks shopping list projections by daily target bucket.
	ShoppingListsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopping_lists_total",
			Help: "Total number of shopping list projections",
		},
		[]string{"target_bucket"},
	)

	// ShoppingListItems tracks how many ingredients survive the costing filter.
	ShoppingListItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shopping_list_items",
			Help:    "Number of items per projected shopping list",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	// ShoppingListDuration tracks list projection duration.
	ShoppingListDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shopping_list_duration_seconds",
			Help:    "Shopping list projection duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// SalesTotal counts recorded sales by product.
	SalesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_total",
			Help: "Total number of recorded sales",
		},
		[]string{"product"},
	)

	// SalesRevenue accumulates revenue in rupiah by product.
	SalesRevenue = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_revenue_rupiah_total",
			Help: "Accumulated sales revenue in rupiah",
		},
		[]string{"product"},
	)

	// CupsSold accumulates sold cups by product.
	CupsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cups_sold_total",
			Help: "Total cups sold",
		},
		[]string{"product"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordShoppingList records metrics for one list projection.
func RecordShoppingList(dailyTarget, itemCount int) {
	ShoppingListsTotal.WithLabelValues(targetBucket(dailyTarget)).Inc()
	ShoppingListItems.Observe(float64(itemCount))
}

// RecordShoppingListDuration records how long a list projection took.
func RecordShoppingListDuration(duration time.Duration) {
	ShoppingListDuration.Observe(duration.Seconds())
}

// RecordSale records metrics for one recorded sale.
func RecordSale(product string, quantity int, total float64) {
	SalesTotal.WithLabelValues(product).Inc()
	CupsSold.WithLabelValues(product).Add(float64(quantity))
	SalesRevenue.WithLabelValues(product).Add(total)
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// targetBucket coarsens daily targets to keep label cardinality bounded.
func targetBucket(target int) string {
	switch {
	case target <= 0:
		return "invalid"
	case target <= 50:
		return "1-50"
	case target <= 100:
		return "51-100"
	case target <= 500:
		return "101-500"
	default:
		return "500+"
	}
}
