package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_queries_total",
		Help: "Total number of catalog listing queries",
	})

	SearchQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_search_queries_total",
		Help: "Total number of free-text search queries",
	})

	ProductsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_products_created_total",
		Help: "Total number of products created",
	})

	ProductsUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_products_updated_total",
		Help: "Total number of products updated",
	})

	ProductsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_products_deleted_total",
		Help: "Total number of products deleted",
	})

	ProductLookupsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_product_lookups_failed_total",
		Help: "Total number of failed product lookups",
	}, []string{"reason"})

	CartMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Total number of cart mutations",
	}, []string{"operation"})

	CartSessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_sessions_created_total",
		Help: "Total number of cart sessions created",
	})

	CatalogQueryLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_query_latency_seconds",
		Help:    "Latency of catalog listing queries",
		Buckets: prometheus.DefBuckets,
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
