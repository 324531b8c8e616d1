// Simplicity Type Inference
// Copyright (C) 2026 the simplicity-infer contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package metrics wraps infer.InferTypes with a Prometheus recorder, so a
// caller (the CLI's --metrics-listen flag, or an embedding service) can
// expose inference volume, failure kind, and latency.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/simplicity-infer/typeinfer/dag"
	"github.com/simplicity-infer/typeinfer/errkind"
	"github.com/simplicity-infer/typeinfer/infer"
	"github.com/simplicity-infer/typeinfer/typedag"
)

// DefaultListen is the address the metrics server listens on when none is
// given.
const DefaultListen = "127.0.0.1:9234"

// Recorder wraps infer.InferTypes in Prometheus instrumentation. Run Init
// before calling Infer.
type Recorder struct {
	Listen string

	inferTotal    *prometheus.CounterVec
	inferFailures *prometheus.CounterVec
	inferDuration prometheus.Histogram
	nodesInferred prometheus.Counter
}

// Init creates and registers this recorder's metrics.
func (r *Recorder) Init() error {
	if len(r.Listen) == 0 {
		r.Listen = DefaultListen
	}

	r.inferTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "typeinfer_infer_total",
			Help: "Number of InferTypes calls, by solver.",
		},
		[]string{"solver"},
	)
	prometheus.MustRegister(r.inferTotal)

	r.inferFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "typeinfer_infer_failures_total",
			Help: "Number of InferTypes calls that did not produce a type-DAG, by kind.",
		},
		[]string{"solver", "kind"},
	)
	prometheus.MustRegister(r.inferFailures)

	r.inferDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "typeinfer_infer_duration_seconds",
		Help:    "Wall-clock duration of InferTypes calls.",
		Buckets: prometheus.DefBuckets,
	})
	prometheus.MustRegister(r.inferDuration)

	r.nodesInferred = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "typeinfer_nodes_inferred_total",
		Help: "Total number of expression DAG nodes successfully annotated.",
	})
	prometheus.MustRegister(r.nodesInferred)

	return nil
}

// Start runs an HTTP server exposing /metrics in a goroutine.
func (r *Recorder) Start() error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(r.Listen, mux)
	return nil
}

// Infer calls infer.InferTypes, recording its outcome and latency.
func (r *Recorder) Infer(g *dag.Graph, init *infer.Init) (*typedag.Array, int, int, error) {
	solverName := "(default)"
	if init != nil && init.SolverName != "" {
		solverName = init.SolverName
	}

	start := time.Now()
	typeDag, src, tgt, err := infer.InferTypes(g, init)
	r.inferDuration.Observe(time.Since(start).Seconds())
	r.inferTotal.With(prometheus.Labels{"solver": solverName}).Inc()

	if err != nil {
		kind := errkind.AllocationFailure
		if ke, ok := err.(*errkind.Error); ok {
			kind = ke.Kind
		}
		r.inferFailures.With(prometheus.Labels{"solver": solverName, "kind": kind.String()}).Inc()
		return nil, 0, 0, err
	}

	r.nodesInferred.Add(float64(len(g.Nodes)))
	return typeDag, src, tgt, nil
}
