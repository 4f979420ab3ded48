// Package metrics exposes counters for matching runs in the Prometheus
// format. The command is short-lived, so metrics are written to a textfile
// for the node exporter's textfile collector rather than served over HTTP.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wildmatch"

// Collector groups the metrics of one process.
type Collector struct {
	registry *prometheus.Registry

	textsScanned        prometheus.Counter
	bytesScanned        prometheus.Counter
	matches             prometheus.Counter
	prefilterRejections prometheus.Counter
	automatonNodes      prometheus.Gauge
	patternPieces       prometheus.Gauge
	scanDuration        prometheus.Histogram
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		textsScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "texts_scanned_total",
			Help:      "Number of texts scanned for the pattern",
		}),
		bytesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_scanned_total",
			Help:      "Number of text bytes fed through the matcher",
		}),
		matches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Number of match end positions reported",
		}),
		prefilterRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prefilter_rejections_total",
			Help:      "Texts skipped because the longest literal piece was absent",
		}),
		automatonNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "automaton_nodes",
			Help:      "Trie nodes in the compiled piece automaton",
		}),
		patternPieces: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pattern_pieces",
			Help:      "Literal pieces the pattern was split into",
		}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Time spent scanning one text",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}

	c.registry.MustRegister(
		c.textsScanned,
		c.bytesScanned,
		c.matches,
		c.prefilterRejections,
		c.automatonNodes,
		c.patternPieces,
		c.scanDuration,
	)
	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveMatcher records the shape of a compiled matcher.
func (c *Collector) ObserveMatcher(pieces, nodes int) {
	c.patternPieces.Set(float64(pieces))
	c.automatonNodes.Set(float64(nodes))
}

// ObserveScan records one scanned text.
func (c *Collector) ObserveScan(textSize, matches int, rejected bool, elapsed time.Duration) {
	c.textsScanned.Inc()
	c.matches.Add(float64(matches))
	if rejected {
		c.prefilterRejections.Inc()
	} else {
		c.bytesScanned.Add(float64(textSize))
	}
	c.scanDuration.Observe(elapsed.Seconds())
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is replaced atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
