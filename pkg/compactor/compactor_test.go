package compactor_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/buildbarn/bb-defrag/pkg/blockstore"
	"github.com/stretchr/testify/require"
)

// newBlockStoreFromLayout creates a BlockStore from its rendered form,
// where "." denotes a free block and a digit denotes a block occupied
// by a file with that ID.
func newBlockStoreFromLayout(t *testing.T, layout string) *blockstore.BlockStore {
	blocks := make([]blockstore.Block, 0, len(layout))
	for _, c := range layout {
		switch {
		case c == '.':
			blocks = append(blocks, blockstore.FreeBlock)
		case c >= '0' && c <= '9':
			blocks = append(blocks, blockstore.NewOccupiedBlock(blockstore.FileID(c-'0')))
		default:
			t.Fatalf("Invalid character %#v in layout", string(c))
		}
	}
	return blockstore.NewBlockStore(blocks)
}

func mustNewBlockStoreFromDiskMap(t *testing.T, diskMap string) *blockstore.BlockStore {
	s, err := blockstore.NewBlockStoreFromDiskMap(diskMap)
	require.NoError(t, err)
	return s
}

// randomDiskMap generates a disk map of a given number of files with
// random file and free space lengths.
func randomDiskMap(r *rand.Rand, files int) string {
	var sb strings.Builder
	for i := 0; i < files; i++ {
		sb.WriteByte(byte('1' + r.IntN(9)))
		if i < files-1 {
			sb.WriteByte(byte('0' + r.IntN(10)))
		}
	}
	return sb.String()
}

// fileBlockCounts returns the number of blocks occupied by every file.
func fileBlockCounts(s *blockstore.BlockStore) map[blockstore.FileID]int {
	counts := map[blockstore.FileID]int{}
	for _, b := range s.Blocks() {
		if fileID, ok := b.FileID(); ok {
			counts[fileID]++
		}
	}
	return counts
}

// filePositions returns the positions of all blocks occupied by a file.
func filePositions(s *blockstore.BlockStore, fileID blockstore.FileID) []int {
	var positions []int
	for i, b := range s.Blocks() {
		if id, ok := b.FileID(); ok && id == fileID {
			positions = append(positions, i)
		}
	}
	return positions
}

// uncompactedChecksum computes the checksum of a store without relying
// on blockstore.Checksum().
func uncompactedChecksum(s *blockstore.BlockStore) uint64 {
	var sum uint64
	for i := 0; i < s.Len(); i++ {
		if fileID, ok := s.Get(i).FileID(); ok {
			sum += uint64(i) * uint64(fileID)
		}
	}
	return sum
}
