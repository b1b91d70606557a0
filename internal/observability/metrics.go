package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once
	registry     = prometheus.NewRegistry()

	runs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sersrcgen",
			Subsystem: "generator",
			Name:      "runs_total",
			Help:      "Generation runs by protocol and outcome.",
		},
		[]string{"protocol", "status"},
	)
	frames = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sersrcgen",
			Subsystem: "framer",
			Name:      "frames_total",
			Help:      "Data frames serialized.",
		},
		[]string{"protocol"},
	)
	bits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sersrcgen",
			Subsystem: "framer",
			Name:      "bits_total",
			Help:      "Line bits emitted.",
		},
		[]string{"protocol"},
	)
	sequenceLen = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sersrcgen",
			Subsystem: "framer",
			Name:      "sequence_bits",
			Help:      "Bit count of each serialized transmission.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 10),
		},
		[]string{"protocol"},
	)
	artifacts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sersrcgen",
			Subsystem: "artifact",
			Name:      "written_total",
			Help:      "Artifact files committed.",
		},
		[]string{"kind"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		registry.MustRegister(runs, frames, bits, sequenceLen, artifacts)
	})
}

// Registry is the gatherer holding every sersrcgen collector.
func Registry() *prometheus.Registry {
	RegisterMetrics()
	return registry
}

func RecordRun(protocol, status string) {
	RegisterMetrics()
	runs.WithLabelValues(protocol, status).Inc()
}

func RecordSequence(protocol string, frameCount, bitCount int) {
	RegisterMetrics()
	frames.WithLabelValues(protocol).Add(float64(frameCount))
	bits.WithLabelValues(protocol).Add(float64(bitCount))
	sequenceLen.WithLabelValues(protocol).Observe(float64(bitCount))
}

func RecordArtifact(kind string) {
	RegisterMetrics()
	artifacts.WithLabelValues(kind).Inc()
}

// WriteTextfile exports the registry in the text exposition format, for a
// node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry())
}
