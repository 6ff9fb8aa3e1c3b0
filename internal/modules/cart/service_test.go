package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pitlane-labs/gridstore/internal/modules/catalog"
)

// recordingRepo captures every persisted snapshot so tests can assert on when
// and what the service writes.
type recordingRepo struct {
	initial []LineItem
	saves   [][]LineItem
}

func (r *recordingRepo) Load(ctx context.Context) ([]LineItem, error) { return r.initial, nil }

func (r *recordingRepo) Save(ctx context.Context, items []LineItem) error {
	saved := make([]LineItem, len(items))
	copy(saved, items)
	r.saves = append(r.saves, saved)
	return nil
}

func (r *recordingRepo) lastSave() []LineItem {
	if len(r.saves) == 0 {
		return nil
	}
	return r.saves[len(r.saves)-1]
}

type fakeCatalog map[string]catalog.Product

func (f fakeCatalog) GetProduct(id string) (catalog.Product, error) {
	p, ok := f[id]
	if !ok {
		return catalog.Product{}, catalog.ErrProductNotFound
	}
	return p, nil
}

func newTestService(t *testing.T) (Service, *recordingRepo) {
	t.Helper()
	repo := &recordingRepo{}
	products := fakeCatalog{
		"cap":   {ID: "cap", Title: "Team Cap", Price: 89.99},
		"tee":   {ID: "tee", Title: "Team Tee", Price: 45.00},
		"model": {ID: "model", Title: "Scale Model", Price: 249.00},
	}
	return NewService(context.Background(), repo, products, zap.NewNop()), repo
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("adding twice merges into one line", func(t *testing.T) {
		svc, repo := newTestService(t)
		_, err := svc.Add(ctx, "cap", 2)
		require.NoError(t, err)
		_, err = svc.Add(ctx, "cap", 3)
		require.NoError(t, err)

		items := svc.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
		assert.Len(t, repo.saves, 2)
	})

	t.Run("different products get separate lines with unique ids", func(t *testing.T) {
		svc, _ := newTestService(t)
		first, err := svc.Add(ctx, "cap", 1)
		require.NoError(t, err)
		second, err := svc.Add(ctx, "tee", 1)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Len(t, svc.Items(), 2)
	})

	t.Run("unknown product leaves the cart untouched", func(t *testing.T) {
		svc, repo := newTestService(t)
		_, err := svc.Add(ctx, "ghost", 1)
		assert.ErrorIs(t, err, ErrUnknownProduct)
		assert.Empty(t, svc.Items())
		assert.Empty(t, repo.saves)
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("valid quantities are set and persisted", func(t *testing.T) {
		svc, repo := newTestService(t)
		item, err := svc.Add(ctx, "cap", 1)
		require.NoError(t, err)

		for q := 1; q <= MaxQuantity; q++ {
			require.NoError(t, svc.UpdateQuantity(ctx, item.ID, q))
			assert.Equal(t, q, svc.Items()[0].Quantity)
			assert.Equal(t, q, repo.lastSave()[0].Quantity)
		}
	})

	t.Run("above the ceiling is rejected and nothing is persisted", func(t *testing.T) {
		svc, repo := newTestService(t)
		item, err := svc.Add(ctx, "cap", 4)
		require.NoError(t, err)
		savesBefore := len(repo.saves)

		err = svc.UpdateQuantity(ctx, item.ID, MaxQuantity+1)
		assert.ErrorIs(t, err, ErrQuantityLimit)
		assert.Equal(t, 4, svc.Items()[0].Quantity)
		assert.Len(t, repo.saves, savesBefore)
	})

	t.Run("below one removes the line", func(t *testing.T) {
		svc, _ := newTestService(t)
		item, err := svc.Add(ctx, "cap", 2)
		require.NoError(t, err)

		require.NoError(t, svc.UpdateQuantity(ctx, item.ID, 0))
		assert.Empty(t, svc.Items())
	})

	t.Run("absent item", func(t *testing.T) {
		svc, _ := newTestService(t)
		err := svc.UpdateQuantity(ctx, "missing", 3)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	item, err := svc.Add(ctx, "cap", 1)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, item.ID))
	assert.Empty(t, svc.Items())
	assert.Empty(t, repo.lastSave())

	// Removing again is a no-op, not an error.
	require.NoError(t, svc.Remove(ctx, item.ID))
}

func TestTotalAndItemCount(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart totals zero", func(t *testing.T) {
		svc, _ := newTestService(t)
		assert.Equal(t, 0.0, svc.Total())
		assert.Equal(t, 0, svc.ItemCount())
	})

	t.Run("sums price times quantity", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.Add(ctx, "cap", 2)
		require.NoError(t, err)
		_, err = svc.Add(ctx, "tee", 1)
		require.NoError(t, err)

		assert.InDelta(t, 224.98, svc.Total(), 0.001)
		assert.Equal(t, 3, svc.ItemCount())
	})

	t.Run("a vanished product contributes zero", func(t *testing.T) {
		repo := &recordingRepo{initial: []LineItem{
			{ID: "stale", ProductID: "discontinued", Quantity: 2},
		}}
		products := fakeCatalog{"cap": {ID: "cap", Price: 89.99}}
		svc := NewService(context.Background(), repo, products, zap.NewNop())

		assert.Equal(t, 0.0, svc.Total())
		assert.Equal(t, 2, svc.ItemCount())
	})
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	_, err := svc.Add(ctx, "model", 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx))
	assert.Empty(t, svc.Items())
	assert.Empty(t, repo.lastSave())
}

func TestLoadsPriorSnapshot(t *testing.T) {
	repo := &recordingRepo{initial: []LineItem{
		{ID: "line-1", ProductID: "cap", Quantity: 3},
	}}
	svc := NewService(context.Background(), repo, fakeCatalog{}, zap.NewNop())
	require.Len(t, svc.Items(), 1)
	assert.Equal(t, 3, svc.ItemCount())
}
