package compactor

import (
	"github.com/buildbarn/bb-defrag/pkg/blockstore"
)

// Observer is notified of every step a compactor takes. It can be used
// to gather metrics, trace or log the progress of a compaction run.
//
// Calls to an Observer are made synchronously from within the
// compaction loop, while the BlockStore is owned by the compactor.
type Observer interface {
	// A block at index "from" has been swapped with a block at
	// index "to". Only called by the unit compactor.
	BlocksSwapped(from, to int)
	// A new sector index has been built, consisting of a given
	// number of sectors. Only called by the file compactor.
	SectorIndexBuilt(sectorCount int)
	// A file has been relocated from one position to another.
	FileRelocated(fileID blockstore.FileID, from, to, length int)
	// A file has been considered for relocation, but was left in
	// place, as no free sector large enough exists to the left
	// of it.
	FileSkipped(fileID blockstore.FileID, start, length int)
}

type nopObserver struct{}

func (nopObserver) BlocksSwapped(from, to int)                                   {}
func (nopObserver) SectorIndexBuilt(sectorCount int)                             {}
func (nopObserver) FileRelocated(fileID blockstore.FileID, from, to, length int) {}
func (nopObserver) FileSkipped(fileID blockstore.FileID, start, length int)      {}

// NopObserver is an Observer that ignores all notifications.
var NopObserver Observer = nopObserver{}
