package cart

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file loads an empty cart", func(t *testing.T) {
		repo := NewFileRepository(filepath.Join(t.TempDir(), "cart.json"))
		items, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		repo := NewFileRepository(path)

		added := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		in := []LineItem{
			{ID: "line-1", ProductID: "cap", Quantity: 2, AddedAt: added},
			{ID: "line-2", ProductID: "tee", Quantity: 1, AddedAt: added},
		}
		require.NoError(t, repo.Save(ctx, in))

		out, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("each save overwrites the previous snapshot wholesale", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		repo := NewFileRepository(path)

		require.NoError(t, repo.Save(ctx, []LineItem{{ID: "a", ProductID: "cap", Quantity: 1}}))
		require.NoError(t, repo.Save(ctx, []LineItem{{ID: "b", ProductID: "tee", Quantity: 5}}))

		out, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "b", out[0].ID)
	})

	t.Run("unknown schema version is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"schema_version":99,"items":[]}`), 0o644))

		_, err := NewFileRepository(path).Load(ctx)
		assert.ErrorContains(t, err, "version")
	})

	t.Run("corrupt file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := NewFileRepository(path).Load(ctx)
		assert.Error(t, err)
	})
}
