package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests by method, path and status code",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and path",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	InvoicesFinalized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "invoices_finalized_total",
		Help: "Invoices that transitioned into the finalized status",
	})

	StockUnitsDeducted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_units_deducted_total",
		Help: "Product units deducted by invoice finalization",
	})

	BalanceSheetComputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "balance_sheet_compute_duration_seconds",
		Help:    "Time spent reconstructing the balance sheet time series",
		Buckets: prometheus.DefBuckets,
	})
)
