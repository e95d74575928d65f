// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package metrics provides the Prometheus metrics of the service and
// a gin middleware which observes the handled HTTP requests.
// Metrics are registered on a caller provided registry (instead of
// the process-global default registry), so independent engine
// instances, such as parallel test servers, may not conflict.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cars_api"

// Metrics holds the Prometheus metrics of the service.
type Metrics struct {
	// RequestsTotal counts the handled HTTP requests, partitioned by
	// the request method, the matched route template, and the
	// response status code.
	RequestsTotal *prometheus.CounterVec
	// RequestDuration observes the HTTP request handling latency,
	// partitioned by the request method and matched route template.
	RequestDuration *prometheus.HistogramVec
}

// New creates all service metrics and registers them on the given
// reg registry. The liveCars function reports the current number of
// live car records and is polled on each scrape through a gauge.
func New(reg prometheus.Registerer, liveCars func() int) *Metrics {
	f := promauto.With(reg)
	f.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cars_live",
		Help:      "Current number of live car records",
	}, func() float64 {
		return float64(liveCars())
	})
	return &Metrics{
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of handled HTTP requests",
		}, []string{"method", "path", "status"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request handling latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// Middleware returns a gin middleware which observes each handled
// request on the m metrics. Requests which match no route are
// aggregated under the constant "unmatched" path label in order to
// keep the label cardinality bounded.
func Middleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		m.RequestsTotal.WithLabelValues(
			method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.RequestDuration.WithLabelValues(method, path).Observe(
			time.Since(start).Seconds(),
		)
	}
}
