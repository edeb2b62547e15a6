// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsFile is the name of the file with run metrics in the Prometheus text format
const MetricsFile = "metrics.prom"

// Metrics counts records, warnings and unfitted curves of one run
type Metrics struct {
	Registry *prometheus.Registry
	Records  prometheus.Counter // records processed
	Warnings prometheus.Counter // records with a non-empty warning
	Unfitted prometheus.Counter // records whose curve could not be computed
	Negative prometheus.Counter // negative outputs or derived values
	Seconds  prometheus.Gauge   // duration of run
}

// NewMetrics returns metrics labelled with the model name
func NewMetrics(model string) (o *Metrics) {
	labels := prometheus.Labels{"model": model}
	o = &Metrics{Registry: prometheus.NewRegistry()}
	o.Records = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nbptfs", Name: "records_total", Help: "Number of soil records processed.", ConstLabels: labels,
	})
	o.Warnings = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nbptfs", Name: "warnings_total", Help: "Number of records with a warning.", ConstLabels: labels,
	})
	o.Unfitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nbptfs", Name: "unfitted_total", Help: "Number of records whose curve parameters could not be computed.", ConstLabels: labels,
	})
	o.Negative = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nbptfs", Name: "negative_total", Help: "Number of negative water contents or derived values.", ConstLabels: labels,
	})
	o.Seconds = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "nbptfs", Name: "run_seconds", Help: "Duration of the run in seconds.", ConstLabels: labels,
	})
	o.Registry.MustRegister(o.Records, o.Warnings, o.Unfitted, o.Negative, o.Seconds)
	return
}

// Record counts one record
func (o *Metrics) Record(warning string, fitted bool) {
	o.Records.Inc()
	if warning != "" {
		o.Warnings.Inc()
	}
	if !fitted {
		o.Unfitted.Inc()
	}
}

// Save writes <dirout>/metrics.prom
func (o *Metrics) Save(dirout string) error {
	if err := os.MkdirAll(dirout, 0777); err != nil {
		return chk.Err("cannot create directory for output results (%s): %v", dirout, err)
	}
	return prometheus.WriteToTextfile(filepath.Join(dirout, MetricsFile), o.Registry)
}
