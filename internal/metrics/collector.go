// internal/metrics/collector.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/FairForge/stemcell/internal/runtimes"
)

var (
	resolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stemcell_manifest_resolutions_total",
			Help: "Total number of manifest resolution attempts",
		},
		[]string{"outcome"},
	)

	knownRuntimes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stemcell_known_runtimes",
			Help: "Number of runtime kinds in the resolved manifest",
		},
	)

	prewarmContainers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stemcell_prewarm_containers",
			Help: "Requested pre-warmed containers per runtime kind",
		},
		[]string{"kind"},
	)

	prewarmMemoryBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stemcell_prewarm_memory_bytes",
			Help: "Total memory requested for pre-warmed containers per runtime kind",
		},
		[]string{"kind"},
	)
)

// RecordResolution counts one resolution attempt.
func RecordResolution(err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	resolutionsTotal.WithLabelValues(outcome).Inc()
}

// RecordRuntimes publishes gauges for a freshly resolved model.
func RecordRuntimes(rt *runtimes.Runtimes) {
	knownRuntimes.Set(float64(len(rt.KnownContainerRuntimes())))

	containers := make(map[string]int)
	memory := make(map[string]int64)
	for _, cell := range rt.StemCells() {
		containers[cell.Manifest.Kind] += cell.Cell.Count
		memory[cell.Manifest.Kind] += int64(cell.Cell.Count) * int64(cell.Cell.Memory)
	}
	for kind, count := range containers {
		prewarmContainers.WithLabelValues(kind).Set(float64(count))
		prewarmMemoryBytes.WithLabelValues(kind).Set(float64(memory[kind]))
	}
}
