package blockstore

import (
	"io"
	"strings"

	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewBlockStoreFromDiskMap creates a BlockStore from its run-length
// encoded representation. Digits alternately denote the length of a
// file and the length of the free space following it. Files are
// assigned IDs 0, 1, 2, ... in the order in which they are encountered,
// regardless of whether their length is zero.
//
// Leading and trailing whitespace is permitted, as disk maps are
// typically stored in newline terminated files.
func NewBlockStoreFromDiskMap(diskMap string) (*BlockStore, error) {
	diskMap = strings.TrimSpace(diskMap)

	var blocks []Block
	var fileID FileID
	for i, c := range []byte(diskMap) {
		if c < '0' || c > '9' {
			return nil, status.Errorf(codes.InvalidArgument, "Character %#v at offset %d of the disk map is not a digit", string(c), i)
		}
		length := int(c - '0')
		if i%2 == 0 {
			b := NewOccupiedBlock(fileID)
			for range length {
				blocks = append(blocks, b)
			}
			fileID++
		} else {
			for range length {
				blocks = append(blocks, FreeBlock)
			}
		}
	}
	return &BlockStore{blocks: blocks}, nil
}

// ReadDiskMap is identical to NewBlockStoreFromDiskMap, except that the
// disk map is obtained from a reader.
func ReadDiskMap(r io.Reader) (*BlockStore, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, util.StatusWrapWithCode(err, codes.Internal, "Failed to read disk map")
	}
	s, err := NewBlockStoreFromDiskMap(string(data))
	if err != nil {
		return nil, util.StatusWrap(err, "Failed to parse disk map")
	}
	return s, nil
}
