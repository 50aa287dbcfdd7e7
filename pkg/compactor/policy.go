package compactor

import (
	"github.com/buildbarn/bb-defrag/pkg/blockstore"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Policy of relocating data on the medium.
type Policy int

const (
	// UnitPolicy moves individual blocks, using CompactUnits().
	UnitPolicy Policy = iota
	// FilePolicy moves whole files, using CompactFiles().
	FilePolicy
)

// AllPolicies lists every policy in the order in which results are
// reported by default.
var AllPolicies = []Policy{UnitPolicy, FilePolicy}

// ParsePolicy converts the name of a policy to its value.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "unit":
		return UnitPolicy, nil
	case "file":
		return FilePolicy, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "Unknown compaction policy %#v", name)
	}
}

func (p Policy) String() string {
	switch p {
	case UnitPolicy:
		return "unit"
	case FilePolicy:
		return "file"
	default:
		panic("Unknown compaction policy")
	}
}

// Compact a store in place, using a given policy.
func Compact(store *blockstore.BlockStore, policy Policy, observer Observer) error {
	switch policy {
	case UnitPolicy:
		CompactUnits(store, observer)
		return nil
	case FilePolicy:
		return CompactFiles(store, observer)
	default:
		panic("Unknown compaction policy")
	}
}
