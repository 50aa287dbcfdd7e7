package blockstore

import (
	"strconv"
)

// FileID is the identifier of a file stored on the medium. File IDs
// are handed out in ascending order by the order in which files are
// encountered in the disk map.
type FileID uint32

// Block is the state of a single unit of the medium. It is either free,
// or occupied by exactly one file.
//
// The zero value of Block is a free block.
type Block struct {
	fileID   FileID
	occupied bool
}

// FreeBlock is a block that is not occupied by any file.
var FreeBlock = Block{}

// NewOccupiedBlock creates a block that is occupied by a given file.
func NewOccupiedBlock(fileID FileID) Block {
	return Block{
		fileID:   fileID,
		occupied: true,
	}
}

// IsFree returns true if the block is not occupied by any file.
func (b Block) IsFree() bool {
	return !b.occupied
}

// FileID returns the identifier of the file occupying the block. The
// boolean return value is false for free blocks.
func (b Block) FileID() (FileID, bool) {
	return b.fileID, b.occupied
}

func (b Block) String() string {
	if !b.occupied {
		return "."
	}
	return strconv.FormatUint(uint64(b.fileID), 10)
}
