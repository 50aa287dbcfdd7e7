package compactor

import (
	"math"

	"github.com/buildbarn/bb-defrag/pkg/blockstore"
	"github.com/buildbarn/bb-defrag/pkg/sector"
	"github.com/buildbarn/bb-storage/pkg/util"
)

// CompactFiles relocates files as a whole, in descending order of file
// ID. Every file is moved to the leftmost free sector in front of it
// that is large enough to hold it. Files for which no such sector
// exists are left in place. Each file is considered at most once.
//
// Files are only considered if the sector index marks them eligible,
// meaning a free sector of sufficient length existed somewhere to their
// left at the time the index was built. Files that are not eligible are
// skipped without performing an exact search.
//
// The sector index is rebuilt from scratch for every file that is
// considered. An error is only returned if a rebuilt index turns out
// to be inconsistent with the store, in which case the store may have
// been partially compacted.
func CompactFiles(store *blockstore.BlockStore, observer Observer) error {
	// File IDs are 32 bits, so this lies above any of them.
	lastConsidered := uint64(math.MaxUint32) + 1
	for {
		sectors := sector.Build(store)
		if err := sector.Validate(sectors, store); err != nil {
			return util.StatusWrap(err, "Sector index is inconsistent with block store")
		}
		observer.SectorIndexBuilt(len(sectors))

		file, ok := sector.LastFileSector(sectors, func(s *sector.Sector) bool {
			return s.Eligible && uint64(s.FileID) < lastConsidered
		})

		// Files to the right of the one selected are ineligible.
		// They will never be considered again, as lastConsidered
		// drops below their IDs after this iteration.
		for i := len(sectors) - 1; i >= 0; i-- {
			s := &sectors[i]
			if ok && s.Start <= file.Start {
				break
			}
			if !s.Free && uint64(s.FileID) < lastConsidered {
				observer.FileSkipped(s.FileID, s.Start, s.Length)
			}
		}
		if !ok {
			return nil
		}

		if target, ok := sector.FirstFreeSector(sectors, func(s *sector.Sector) bool {
			return s.Start < file.Start && s.Length >= file.Length
		}); ok {
			store.Fill(target.Start, file.Length, blockstore.NewOccupiedBlock(file.FileID))
			store.Fill(file.Start, file.Length, blockstore.FreeBlock)
			observer.FileRelocated(file.FileID, file.Start, target.Start, file.Length)
		} else {
			observer.FileSkipped(file.FileID, file.Start, file.Length)
		}
		lastConsidered = uint64(file.FileID)
	}
}
