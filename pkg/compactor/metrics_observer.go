package compactor

import (
	"sync"

	"github.com/buildbarn/bb-defrag/pkg/blockstore"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	compactorPrometheusMetrics sync.Once

	compactorBlocksSwapped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "defrag",
			Name:      "compactor_blocks_swapped_total",
			Help:      "Number of times a pair of blocks was swapped.",
		},
		[]string{"policy"})
	compactorSectorIndicesBuilt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "defrag",
			Name:      "compactor_sector_indices_built_total",
			Help:      "Number of times a sector index was rebuilt from a block store.",
		},
		[]string{"policy"})
	compactorSectorIndexSectors = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "defrag",
			Name:      "compactor_sector_index_sectors",
			Help:      "Number of sectors in a rebuilt sector index.",
			Buckets:   prometheus.ExponentialBuckets(1.0, 2.0, 20),
		},
		[]string{"policy"})
	compactorFilesConsidered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "defrag",
			Name:      "compactor_files_considered_total",
			Help:      "Number of files considered for relocation, by whether they were relocated or skipped.",
		},
		[]string{"policy", "outcome"})
	compactorBlocksRelocated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "defrag",
			Name:      "compactor_blocks_relocated_total",
			Help:      "Number of blocks moved as part of whole-file relocations.",
		},
		[]string{"policy"})
)

type metricsObserver struct {
	base Observer

	blocksSwapped      prometheus.Counter
	sectorIndicesBuilt prometheus.Counter
	sectorIndexSectors prometheus.Observer
	filesRelocated     prometheus.Counter
	filesSkipped       prometheus.Counter
	blocksRelocated    prometheus.Counter
}

// NewMetricsObserver creates a decorator for Observer that exposes
// Prometheus metrics on the steps taken by a compactor using a given
// policy.
func NewMetricsObserver(base Observer, policy Policy) Observer {
	compactorPrometheusMetrics.Do(func() {
		prometheus.MustRegister(compactorBlocksSwapped)
		prometheus.MustRegister(compactorSectorIndicesBuilt)
		prometheus.MustRegister(compactorSectorIndexSectors)
		prometheus.MustRegister(compactorFilesConsidered)
		prometheus.MustRegister(compactorBlocksRelocated)
	})

	policyName := policy.String()
	return &metricsObserver{
		base: base,

		blocksSwapped:      compactorBlocksSwapped.WithLabelValues(policyName),
		sectorIndicesBuilt: compactorSectorIndicesBuilt.WithLabelValues(policyName),
		sectorIndexSectors: compactorSectorIndexSectors.WithLabelValues(policyName),
		filesRelocated:     compactorFilesConsidered.WithLabelValues(policyName, "relocated"),
		filesSkipped:       compactorFilesConsidered.WithLabelValues(policyName, "skipped"),
		blocksRelocated:    compactorBlocksRelocated.WithLabelValues(policyName),
	}
}

func (o *metricsObserver) BlocksSwapped(from, to int) {
	o.blocksSwapped.Inc()
	o.base.BlocksSwapped(from, to)
}

func (o *metricsObserver) SectorIndexBuilt(sectorCount int) {
	o.sectorIndicesBuilt.Inc()
	o.sectorIndexSectors.Observe(float64(sectorCount))
	o.base.SectorIndexBuilt(sectorCount)
}

func (o *metricsObserver) FileRelocated(fileID blockstore.FileID, from, to, length int) {
	o.filesRelocated.Inc()
	o.blocksRelocated.Add(float64(length))
	o.base.FileRelocated(fileID, from, to, length)
}

func (o *metricsObserver) FileSkipped(fileID blockstore.FileID, start, length int) {
	o.filesSkipped.Inc()
	o.base.FileSkipped(fileID, start, length)
}
