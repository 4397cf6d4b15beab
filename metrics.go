package site

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/namick/site/content"
)

type metrics struct {
	registry *prometheus.Registry
	posts    prometheus.Gauge
	reloads  prometheus.Counter
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	m := &metrics{
		registry: reg,
		posts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "site",
			Subsystem: "content",
			Name:      "posts",
			Help:      "Number of posts in the loaded content snapshot.",
		}),
		reloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "site",
			Subsystem: "content",
			Name:      "reloads_total",
			Help:      "Number of times the content directory was loaded.",
		}),
	}
	reg.MustRegister(
		m.posts,
		m.reloads,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) observeLoad(src *content.Source) {
	m.posts.Set(float64(len(src.Pages())))
	m.reloads.Inc()
}
