// Package metrics provides the business-level Prometheus gauges for the
// catalog: how many users, items, orders and articles exist right now.
// The stats collector refreshes them on a schedule; HTTP and rate limit
// metrics live next to their middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	usersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "users_total",
			Help: "Number of registered accounts",
		},
	)

	itemsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "items_total",
			Help: "Number of items in the catalog",
		},
	)

	ordersTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "orders_total",
			Help: "Number of orders by status",
		},
		[]string{"status"},
	)

	newsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_total",
			Help: "Number of news articles, published or not",
		},
	)

	dbConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of database connections in use",
		},
	)

	dbConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

// SetUsersTotal updates the registered account gauge.
func SetUsersTotal(count int64) {
	usersTotal.Set(float64(count))
}

// SetItemsTotal updates the catalog size gauge.
func SetItemsTotal(count int64) {
	itemsTotal.Set(float64(count))
}

// SetOrdersTotal updates the order gauge for one status.
func SetOrdersTotal(status string, count int64) {
	ordersTotal.WithLabelValues(status).Set(float64(count))
}

// SetNewsTotal updates the news article gauge.
func SetNewsTotal(count int64) {
	newsTotal.Set(float64(count))
}

// SetDBConnections updates the connection pool gauges.
func SetDBConnections(active, idle int) {
	dbConnectionsActive.Set(float64(active))
	dbConnectionsIdle.Set(float64(idle))
}
