package sector_test

import (
	"testing"

	"github.com/buildbarn/bb-defrag/pkg/blockstore"
	"github.com/buildbarn/bb-defrag/pkg/sector"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func mustNewBlockStore(t *testing.T, diskMap string) *blockstore.BlockStore {
	s, err := blockstore.NewBlockStoreFromDiskMap(diskMap)
	require.NoError(t, err)
	return s
}

func TestBuild(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		sectors := sector.Build(blockstore.NewBlockStore(nil))
		require.Empty(t, sectors)
		require.NoError(t, sector.Validate(sectors, blockstore.NewBlockStore(nil)))
	})

	t.Run("Example", func(t *testing.T) {
		// Layout "0..111....22222".
		s := mustNewBlockStore(t, "12345")
		sectors := sector.Build(s)
		require.Equal(t, []sector.Sector{
			{Start: 0, Length: 1, FileID: 0},
			{Start: 1, Length: 2, Free: true},
			{Start: 3, Length: 3, FileID: 1},
			{Start: 6, Length: 4, Free: true},
			{Start: 10, Length: 5, FileID: 2},
		}, sectors)
		require.NoError(t, sector.Validate(sectors, s))
	})

	t.Run("Eligibility", func(t *testing.T) {
		// Layout "00...111...2...333.44.5555.6666.777.888899".
		// Only files of length three or less have a large
		// enough free sector to their left.
		s := mustNewBlockStore(t, "2333133121414131402")
		sectors := sector.Build(s)
		require.NoError(t, sector.Validate(sectors, s))

		eligible := map[blockstore.FileID]bool{}
		for _, sec := range sectors {
			if !sec.Free {
				eligible[sec.FileID] = sec.Eligible
			}
		}
		require.Equal(t, map[blockstore.FileID]bool{
			0: false,
			1: true,
			2: true,
			3: true,
			4: true,
			5: false,
			6: false,
			7: true,
			8: false,
			9: true,
		}, eligible)
	})

	t.Run("AdjacentFilesAreSeparate", func(t *testing.T) {
		s := mustNewBlockStore(t, "20202")
		sectors := sector.Build(s)
		require.Equal(t, []sector.Sector{
			{Start: 0, Length: 2, FileID: 0},
			{Start: 2, Length: 2, FileID: 1},
			{Start: 4, Length: 2, FileID: 2},
		}, sectors)
	})

	t.Run("SnapshotSemantics", func(t *testing.T) {
		// Mutating the store must not affect a sector index
		// that was built before.
		s := mustNewBlockStore(t, "111")
		sectors := sector.Build(s)
		s.Swap(1, 2)
		require.Equal(t, []sector.Sector{
			{Start: 0, Length: 1, FileID: 0},
			{Start: 1, Length: 1, Free: true},
			{Start: 2, Length: 1, FileID: 1, Eligible: true},
		}, sectors)
	})
}

func TestValidate(t *testing.T) {
	// Layout "11..".
	store := blockstore.NewBlockStore([]blockstore.Block{
		blockstore.NewOccupiedBlock(1),
		blockstore.NewOccupiedBlock(1),
		blockstore.FreeBlock,
		blockstore.FreeBlock,
	})

	t.Run("Success", func(t *testing.T) {
		require.NoError(t, sector.Validate([]sector.Sector{
			{Start: 0, Length: 2, FileID: 1},
			{Start: 2, Length: 2, Free: true},
		}, store))
	})

	t.Run("Gap", func(t *testing.T) {
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Sector 1 starts at block 3, while block 2 was expected"),
			sector.Validate([]sector.Sector{
				{Start: 0, Length: 2, FileID: 1},
				{Start: 3, Length: 1, Free: true},
			}, store))
	})

	t.Run("Overlap", func(t *testing.T) {
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Sector 1 starts at block 1, while block 2 was expected"),
			sector.Validate([]sector.Sector{
				{Start: 0, Length: 2, FileID: 1},
				{Start: 1, Length: 3, Free: true},
			}, store))
	})

	t.Run("EmptySector", func(t *testing.T) {
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Sector 0 at block 0 has non-positive length 0"),
			sector.Validate([]sector.Sector{
				{Start: 0, Length: 0, Free: true},
			}, blockstore.NewBlockStore(nil)))
	})

	t.Run("PastEnd", func(t *testing.T) {
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Sector 1 ends at block 5, while the store has 4 blocks"),
			sector.Validate([]sector.Sector{
				{Start: 0, Length: 2, FileID: 1},
				{Start: 2, Length: 3, Free: true},
			}, store))
	})

	t.Run("NotMaximal", func(t *testing.T) {
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Sectors 0 and 1 at block 1 have the same state"),
			sector.Validate([]sector.Sector{
				{Start: 0, Length: 1, FileID: 1},
				{Start: 1, Length: 1, FileID: 1},
				{Start: 2, Length: 2, Free: true},
			}, store))
	})

	t.Run("WrongFile", func(t *testing.T) {
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Block 0 has state \"1\", while sector 0 expects \"2\""),
			sector.Validate([]sector.Sector{
				{Start: 0, Length: 2, FileID: 2},
				{Start: 2, Length: 2, Free: true},
			}, store))
	})

	t.Run("FreeBlockInFileSector", func(t *testing.T) {
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Block 2 has state \".\", while sector 0 expects \"1\""),
			sector.Validate([]sector.Sector{
				{Start: 0, Length: 3, FileID: 1},
				{Start: 3, Length: 1, Free: true},
			}, store))
	})

	t.Run("Short", func(t *testing.T) {
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Sectors cover 2 blocks, while the store has 4 blocks"),
			sector.Validate([]sector.Sector{
				{Start: 0, Length: 2, FileID: 1},
			}, store))
	})

	t.Run("StaleAfterMutation", func(t *testing.T) {
		// An index built before the store is mutated no longer
		// describes it.
		s := store.Clone()
		sectors := sector.Build(s)
		s.Swap(1, 3)
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Block 1 has state \".\", while sector 0 expects \"1\""),
			sector.Validate(sectors, s))
	})
}

func TestSearch(t *testing.T) {
	// Layout "00...111...2...333.44.5555.6666.777.888899".
	sectors := sector.Build(mustNewBlockStore(t, "2333133121414131402"))

	t.Run("LastFileSector", func(t *testing.T) {
		s, ok := sector.LastFileSector(sectors, func(s *sector.Sector) bool { return s.FileID < 9 })
		require.True(t, ok)
		require.Equal(t, sector.Sector{Start: 36, Length: 4, FileID: 8}, s)

		_, ok = sector.LastFileSector(sectors, func(s *sector.Sector) bool { return s.Length > 4 })
		require.False(t, ok)
	})

	t.Run("FirstFreeSector", func(t *testing.T) {
		s, ok := sector.FirstFreeSector(sectors, func(s *sector.Sector) bool { return s.Length == 1 })
		require.True(t, ok)
		require.Equal(t, sector.Sector{Start: 18, Length: 1, Free: true}, s)

		_, ok = sector.FirstFreeSector(sectors, func(s *sector.Sector) bool { return s.Length > 3 })
		require.False(t, ok)
	})
}
