package compactor

import (
	"log"

	"github.com/buildbarn/bb-defrag/pkg/blockstore"
)

type loggingObserver struct {
	base   Observer
	logger *log.Logger
	policy Policy
}

// NewLoggingObserver creates a decorator for Observer that writes a
// line to a logger for every relocation decision made by a compactor.
// Individual swaps are not logged.
func NewLoggingObserver(base Observer, logger *log.Logger, policy Policy) Observer {
	return &loggingObserver{
		base:   base,
		logger: logger,
		policy: policy,
	}
}

func (o *loggingObserver) BlocksSwapped(from, to int) {
	o.base.BlocksSwapped(from, to)
}

func (o *loggingObserver) SectorIndexBuilt(sectorCount int) {
	o.base.SectorIndexBuilt(sectorCount)
}

func (o *loggingObserver) FileRelocated(fileID blockstore.FileID, from, to, length int) {
	o.logger.Printf("%s compactor: relocated file %d of length %d from block %d to block %d", o.policy, fileID, length, from, to)
	o.base.FileRelocated(fileID, from, to, length)
}

func (o *loggingObserver) FileSkipped(fileID blockstore.FileID, start, length int) {
	o.logger.Printf("%s compactor: left file %d of length %d at block %d, as no free sector in front of it is large enough", o.policy, fileID, length, start)
	o.base.FileSkipped(fileID, start, length)
}
