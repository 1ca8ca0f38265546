package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tire-shop/models"
)

func newFileStore(t *testing.T) *FileCartStore {
	t.Helper()
	store, err := NewFileCartStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func line(id int) models.CartLine {
	return models.CartLine{ID: id, Name: "Tire", Price: 3000, Image: "tire.jpg"}
}

func TestAddSameProductAccumulates(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, store.AddOrIncrement(ctx, "cart-1", line(1)))
	}

	lines, err := store.Lines(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, 4, lines[0].Quantity)

	count, err := store.TotalItemCount(ctx, "cart-1")
	require.NoError(t, err)
	require.Equal(t, 4, count)
}

func TestAddDistinctProducts(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	for _, id := range []int{1, 2, 3} {
		require.NoError(t, store.AddOrIncrement(ctx, "cart-1", line(id)))
	}

	lines, err := store.Lines(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, lines, 3)
	for i, id := range []int{1, 2, 3} {
		require.Equal(t, id, lines[i].ID)
		require.Equal(t, 1, lines[i].Quantity)
	}

	count, err := store.TotalItemCount(ctx, "cart-1")
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestCountTracksEveryMutation(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	adds := []int{1, 1, 2, 1, 3, 2}
	for i, id := range adds {
		require.NoError(t, store.AddOrIncrement(ctx, "cart-1", line(id)))

		count, err := store.TotalItemCount(ctx, "cart-1")
		require.NoError(t, err)
		require.Equal(t, i+1, count)
	}
}

func TestMissingCartReadsEmpty(t *testing.T) {
	store := newFileStore(t)

	lines, err := store.Lines(context.Background(), "never-seen")
	require.NoError(t, err)
	require.Empty(t, lines)

	count, err := store.TotalItemCount(context.Background(), "never-seen")
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestCorruptCartReadsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileCartStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart-1.json"), []byte("{garbage"), 0o644))

	ctx := context.Background()
	lines, err := store.Lines(ctx, "cart-1")
	require.NoError(t, err)
	require.Empty(t, lines)

	// first add after corruption starts from an empty cart
	require.NoError(t, store.AddOrIncrement(ctx, "cart-1", line(1)))
	count, err := store.TotalItemCount(ctx, "cart-1")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestCartsAreIsolated(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddOrIncrement(ctx, "cart-1", line(1)))

	count, err := store.TotalItemCount(ctx, "cart-2")
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestFileStoreInitFailureReturnsError(t *testing.T) {
	// a plain file where the cart directory should go makes MkdirAll
	// fail; callers must get the error instead of a half-built store
	path := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	store, err := NewFileCartStore(path)
	require.Error(t, err)
	require.Nil(t, store)
}

func TestMemoryStoreAccumulates(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.AddOrIncrement(ctx, "cart-1", line(1)))
	}
	require.NoError(t, store.AddOrIncrement(ctx, "cart-1", line(2)))

	lines, err := store.Lines(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Equal(t, 3, lines[0].Quantity)

	count, err := store.TotalItemCount(ctx, "cart-1")
	require.NoError(t, err)
	require.Equal(t, 4, count)
}

func TestMemoryStoreIsolatesCartsAndReads(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	require.NoError(t, store.AddOrIncrement(ctx, "cart-1", line(1)))

	count, err := store.TotalItemCount(ctx, "cart-2")
	require.NoError(t, err)
	require.Equal(t, 0, count)

	// mutating a returned slice must not leak into the store
	lines, err := store.Lines(ctx, "cart-1")
	require.NoError(t, err)
	lines[0].Quantity = 99

	fresh, err := store.Lines(ctx, "cart-1")
	require.NoError(t, err)
	require.Equal(t, 1, fresh[0].Quantity)
}

func TestMergeLineKeepsOneLinePerProduct(t *testing.T) {
	lines := []models.CartLine{}
	lines = mergeLine(lines, line(1))
	lines = mergeLine(lines, line(2))
	lines = mergeLine(lines, line(1))

	require.Len(t, lines, 2)
	require.Equal(t, 2, lines[0].Quantity)
	require.Equal(t, 1, lines[1].Quantity)
}
