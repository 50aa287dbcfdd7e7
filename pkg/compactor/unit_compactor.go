package compactor

import (
	"github.com/buildbarn/bb-defrag/pkg/blockstore"
)

// CompactUnits packs all occupied blocks of a store toward the start
// of the medium by repeatedly swapping the leftmost free block with the
// rightmost occupied block. Files are not kept contiguous.
//
// Upon completion, no free block precedes an occupied block.
func CompactUnits(store *blockstore.BlockStore, observer Observer) {
	left, right := 0, store.Len()-1
	for {
		for left < right && !store.Get(left).IsFree() {
			left++
		}
		for left < right && store.Get(right).IsFree() {
			right--
		}
		if left >= right {
			return
		}
		store.Swap(left, right)
		observer.BlocksSwapped(right, left)
	}
}
