package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// ComparisonMetrics collects report values as gauges for the node_exporter
// textfile collector.
type ComparisonMetrics struct {
	registry *prometheus.Registry
	mean     *prometheus.GaugeVec
	change   *prometheus.GaugeVec
}

func NewComparisonMetrics() *ComparisonMetrics {
	m := &ComparisonMetrics{
		registry: prometheus.NewRegistry(),
		mean: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchreport_mean_milliseconds",
			Help: "Mean benchmark duration in milliseconds per fixture and version.",
		}, []string{"fixture", "version"}),
		change: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchreport_change_percent",
			Help: "Percentage change of the mean between the two compared versions.",
		}, []string{"fixture"}),
	}
	m.registry.MustRegister(m.mean, m.change)
	return m
}

// ObserveMean records the mean of one fixture version.
func (m *ComparisonMetrics) ObserveMean(fixture, version string, millis float64) {
	m.mean.WithLabelValues(fixture, version).Set(millis)
}

// ObserveChange records the percentage change of one fixture.
func (m *ComparisonMetrics) ObserveChange(fixture string, percent float64) {
	m.change.WithLabelValues(fixture).Set(percent)
}

// Gatherer exposes the private registry.
func (m *ComparisonMetrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the collected gauges in text exposition format.
func (m *ComparisonMetrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
