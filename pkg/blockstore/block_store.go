package blockstore

import (
	"fmt"
	"strings"
)

// BlockStore is a fixed-length, linear medium of blocks. It is the
// ground truth that sector indices are derived from and that compactors
// rearrange in place.
//
// BlockStore is not thread-safe. A compaction run owns the store it
// operates on exclusively. Runs that need to operate on the same
// initial layout should each use their own copy, obtained through
// Clone().
type BlockStore struct {
	blocks []Block
}

// NewBlockStore creates a BlockStore that has the same layout as the
// provided list of blocks. The list is copied, meaning that the caller
// may continue to use it afterwards.
func NewBlockStore(blocks []Block) *BlockStore {
	return &BlockStore{
		blocks: append([]Block(nil), blocks...),
	}
}

func (s *BlockStore) checkIndex(i int) {
	if i < 0 || i >= len(s.blocks) {
		panic(fmt.Sprintf("Block index %d is outside the range [0, %d)", i, len(s.blocks)))
	}
}

// Len returns the number of blocks on the medium. This value never
// changes after construction.
func (s *BlockStore) Len() int {
	return len(s.blocks)
}

// Get the state of the block at a given index.
func (s *BlockStore) Get(i int) Block {
	s.checkIndex(i)
	return s.blocks[i]
}

// Set the state of the block at a given index.
func (s *BlockStore) Set(i int, b Block) {
	s.checkIndex(i)
	s.blocks[i] = b
}

// Swap the states of the blocks at two indices.
func (s *BlockStore) Swap(i, j int) {
	s.checkIndex(i)
	s.checkIndex(j)
	s.blocks[i], s.blocks[j] = s.blocks[j], s.blocks[i]
}

// Fill overwrites a contiguous range of blocks with the same state.
func (s *BlockStore) Fill(start, length int, b Block) {
	if length < 0 || start < 0 || start > len(s.blocks)-length {
		panic(fmt.Sprintf("Block range [%d, %d+%d) is outside the range [0, %d)", start, start, length, len(s.blocks)))
	}
	for i := start; i < start+length; i++ {
		s.blocks[i] = b
	}
}

// Clone returns an independent copy of the store. Mutations made to
// either copy are not visible through the other.
func (s *BlockStore) Clone() *BlockStore {
	return NewBlockStore(s.blocks)
}

// Blocks returns a copy of the current layout of the medium.
func (s *BlockStore) Blocks() []Block {
	return append([]Block(nil), s.blocks...)
}

// String renders the layout of the medium in the notation that is also
// used by diagnostic output, using "." for free blocks. File IDs with
// more than one digit make the output ambiguous, so it should only be
// used for debugging purposes.
func (s *BlockStore) String() string {
	var sb strings.Builder
	for _, b := range s.blocks {
		sb.WriteString(b.String())
	}
	return sb.String()
}
