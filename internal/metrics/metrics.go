// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes the server's Prometheus metrics.
//
// A [Collector] owns its own registry, so several collectors can live in one
// process (tests build one per case).
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Namespace = "snippet_box"

type Collector struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	snippetMutations *prometheus.CounterVec

	previewCacheHits   prometheus.Counter
	previewCacheMisses prometheus.Counter
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		snippetMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "snippet_mutations_total",
			Help:      "Successful snippet creates, updates and deletes.",
		}, []string{"op"}),
		previewCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "preview_cache_hits_total",
			Help:      "Preview bundles served from the cache.",
		}),
		previewCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "preview_cache_misses_total",
			Help:      "Preview bundles built on demand.",
		}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.httpRequests,
		c.httpDuration,
		c.snippetMutations,
		c.previewCacheHits,
		c.previewCacheMisses,
	)

	return c
}

// ObserveHTTPRequest records one finished request. route is the matched
// route pattern, never the raw path, to keep label cardinality bounded.
func (c *Collector) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) SnippetMutated(op string) {
	c.snippetMutations.WithLabelValues(op).Inc()
}

func (c *Collector) PreviewCacheLookup(hit bool) {
	if hit {
		c.previewCacheHits.Inc()
		return
	}
	c.previewCacheMisses.Inc()
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
