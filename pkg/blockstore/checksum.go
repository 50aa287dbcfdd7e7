package blockstore

// Checksum reduces the layout of a medium to a single integer: the sum
// of the position multiplied by the file ID of every occupied block.
// Free blocks do not contribute to the checksum.
func Checksum(s *BlockStore) uint64 {
	var sum uint64
	for i, b := range s.blocks {
		if fileID, ok := b.FileID(); ok {
			sum += uint64(i) * uint64(fileID)
		}
	}
	return sum
}
