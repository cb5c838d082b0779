// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metermemo

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
)

const resultLabel = "result"

var (
	resultLabels = []string{resultLabel}
	hitLabels    = prometheus.Labels{
		resultLabel: "hit",
	}
	missLabels = prometheus.Labels{
		resultLabel: "miss",
	}
)

type storeMetrics struct {
	getCount *prometheus.CounterVec
	getTime  *prometheus.CounterVec
	putCount prometheus.Counter
	putTime  prometheus.Counter
	len      prometheus.Gauge
}

func newMetrics(
	namespace string,
	registerer prometheus.Registerer,
) (*storeMetrics, error) {
	m := &storeMetrics{
		getCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "get_count",
				Help:      "number of get calls",
			},
			resultLabels,
		),
		getTime: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "get_time",
				Help:      "time spent in get calls",
			},
			resultLabels,
		),
		putCount: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "put_count",
				Help:      "number of put calls",
			},
		),
		putTime: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "put_time",
				Help:      "time spent in put calls",
			},
		),
		len: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "len",
				Help:      "number of entries in the store",
			},
		),
	}
	err := multierr.Combine(
		registerer.Register(m.getCount),
		registerer.Register(m.getTime),
		registerer.Register(m.putCount),
		registerer.Register(m.putTime),
		registerer.Register(m.len),
	)
	return m, err
}
