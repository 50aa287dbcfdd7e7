package sector

import (
	"github.com/buildbarn/bb-defrag/pkg/blockstore"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sector is a maximal contiguous run of blocks on a BlockStore that
// share the same state. Sectors only hold positional copies of the
// store's contents, meaning they remain valid to inspect after the
// store is mutated. They no longer describe the store at that point,
// though.
type Sector struct {
	Start  int
	Length int

	// Whether the sector consists of free blocks. If not, all
	// blocks in the sector are occupied by FileID.
	Free   bool
	FileID blockstore.FileID

	// Only set for file sectors. Eligible is true if a free sector
	// at least as long as this sector was observed anywhere before
	// it. This is a necessary, but not a sufficient condition for
	// the file to be relocatable to the left.
	Eligible bool
}

// End returns the index of the first block past the sector.
func (s *Sector) End() int {
	return s.Start + s.Length
}

func (s *Sector) hasSameState(other *Sector) bool {
	return s.Free == other.Free && (s.Free || s.FileID == other.FileID)
}

// Build a sector index from the current contents of a BlockStore. The
// resulting sectors are ordered by position and cover every block of
// the store exactly once.
func Build(store *blockstore.BlockStore) []Sector {
	var sectors []Sector
	maximumFreeLength := 0
	emit := func(start, end int, b blockstore.Block) {
		length := end - start
		if fileID, ok := b.FileID(); ok {
			sectors = append(sectors, Sector{
				Start:    start,
				Length:   length,
				FileID:   fileID,
				Eligible: maximumFreeLength >= length,
			})
		} else {
			sectors = append(sectors, Sector{
				Start:  start,
				Length: length,
				Free:   true,
			})
			if maximumFreeLength < length {
				maximumFreeLength = length
			}
		}
	}

	n := store.Len()
	if n == 0 {
		return nil
	}
	runStart, runState := 0, store.Get(0)
	for i := 1; i < n; i++ {
		if b := store.Get(i); b != runState {
			emit(runStart, i, runState)
			runStart, runState = i, b
		}
	}
	emit(runStart, n, runState)
	return sectors
}

// block returns the state shared by all blocks in the sector.
func (s *Sector) block() blockstore.Block {
	if s.Free {
		return blockstore.FreeBlock
	}
	return blockstore.NewOccupiedBlock(s.FileID)
}

// Validate that a list of sectors is a partition of a BlockStore that
// matches its current contents: sectors must be non-empty, contiguous,
// start at zero, end at the length of the store, be maximal, and only
// contain blocks having the sector's state.
func Validate(sectors []Sector, store *blockstore.BlockStore) error {
	length := store.Len()
	position := 0
	for i := range sectors {
		s := &sectors[i]
		if s.Start != position {
			return status.Errorf(codes.Internal, "Sector %d starts at block %d, while block %d was expected", i, s.Start, position)
		}
		if s.Length <= 0 {
			return status.Errorf(codes.Internal, "Sector %d at block %d has non-positive length %d", i, s.Start, s.Length)
		}
		if s.Length > length-s.Start {
			return status.Errorf(codes.Internal, "Sector %d ends at block %d, while the store has %d blocks", i, s.End(), length)
		}
		if i > 0 && s.hasSameState(&sectors[i-1]) {
			return status.Errorf(codes.Internal, "Sectors %d and %d at block %d have the same state", i-1, i, s.Start)
		}
		expected := s.block()
		for j := s.Start; j < s.End(); j++ {
			if actual := store.Get(j); actual != expected {
				return status.Errorf(codes.Internal, "Block %d has state %#v, while sector %d expects %#v", j, actual.String(), i, expected.String())
			}
		}
		position = s.End()
	}
	if position != length {
		return status.Errorf(codes.Internal, "Sectors cover %d blocks, while the store has %d blocks", position, length)
	}
	return nil
}
