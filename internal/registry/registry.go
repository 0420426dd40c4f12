package registry

import (
	"sort"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/scriptwatch/exporter.git/internal/model"
)

const (
	metricName = "custom_metrics"
	metricHelp = "Custom metrics from script execution"
)

// Registry holds the gauge series produced by the most recent collection
// cycle. Each cycle builds a fresh generation and publishes it with a single
// atomic pointer swap, so readers always observe either the previous
// generation or the new one in full.
//
// Begin, Set and Commit form the writer side and must only be called from
// the collector goroutine. Snapshot and the prometheus.Collector methods are
// safe for any number of concurrent readers and never block the writer.
type Registry struct {
	desc    *prometheus.Desc
	current atomic.Pointer[generation]
	staging *generation
}

type generation struct {
	values map[model.LabelKey]float64
}

func newGeneration() *generation {
	return &generation{values: make(map[model.LabelKey]float64)}
}

func New() *Registry {
	r := &Registry{
		desc: prometheus.NewDesc(metricName, metricHelp, model.LabelNames(), nil),
	}
	r.current.Store(newGeneration())
	return r
}

// Begin starts a new empty generation. Readers keep seeing the previously
// committed generation until Commit.
func (r *Registry) Begin() {
	r.staging = newGeneration()
}

// Set upserts the value for the sample's label tuple into the staging
// generation. Within one generation the last write for a tuple wins.
func (r *Registry) Set(sample model.Sample) {
	if r.staging == nil {
		r.staging = newGeneration()
	}
	r.staging.values[sample.LabelKey] = sample.Value
}

// Commit publishes the staging generation, discarding the previous one in
// full. Committing without any Set calls leaves the registry empty: series
// absent from the new cycle disappear rather than going stale.
func (r *Registry) Commit() {
	next := r.staging
	if next == nil {
		next = newGeneration()
	}
	r.staging = nil
	r.current.Store(next)
}

// Snapshot returns the committed generation sorted by label tuple.
func (r *Registry) Snapshot() []model.Sample {
	gen := r.current.Load()

	samples := make([]model.Sample, 0, len(gen.values))
	for key, value := range gen.values {
		samples = append(samples, model.Sample{LabelKey: key, Value: value})
	}
	sort.Slice(samples, func(i, j int) bool {
		return samples[i].LabelKey.Less(samples[j].LabelKey)
	})

	return samples
}

// Describe implements prometheus.Collector.
func (r *Registry) Describe(ch chan<- *prometheus.Desc) {
	ch <- r.desc
}

// Collect implements prometheus.Collector. It emits one gauge per series in
// the committed generation.
func (r *Registry) Collect(ch chan<- prometheus.Metric) {
	gen := r.current.Load()
	for key, value := range gen.values {
		ch <- prometheus.MustNewConstMetric(r.desc, prometheus.GaugeValue, value, key.Values()...)
	}
}
