package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestSort(t *testing.T) {
	t.Run("price-low is ascending", func(t *testing.T) {
		products := []Product{
			{ID: "a", Price: 89.99},
			{ID: "b", Price: 45.00},
			{ID: "c", Price: 120.00},
		}
		got := Sort(products, SortPriceLow)
		assert.Equal(t, []string{"b", "a", "c"}, ids(got))
	})

	t.Run("price-high is descending", func(t *testing.T) {
		products := []Product{
			{ID: "a", Price: 89.99},
			{ID: "b", Price: 45.00},
			{ID: "c", Price: 120.00},
		}
		got := Sort(products, SortPriceHigh)
		assert.Equal(t, []string{"c", "a", "b"}, ids(got))
	})

	t.Run("price ties keep original order", func(t *testing.T) {
		products := []Product{
			{ID: "first", Price: 45.00},
			{ID: "second", Price: 45.00},
			{ID: "cheapest", Price: 10.00},
		}
		got := Sort(products, SortPriceLow)
		assert.Equal(t, []string{"cheapest", "first", "second"}, ids(got))
	})

	t.Run("newest sorts missing release dates oldest", func(t *testing.T) {
		products := []Product{
			{ID: "undated"},
			{ID: "old", ReleaseDate: date("2023-01-15")},
			{ID: "recent", ReleaseDate: date("2024-06-10")},
		}
		got := Sort(products, SortNewest)
		assert.Equal(t, []string{"recent", "old", "undated"}, ids(got))
	})

	t.Run("editor weighs new over limited", func(t *testing.T) {
		products := []Product{
			{ID: "plain"},
			{ID: "limited", Badges: []Badge{BadgeLimited}},
			{ID: "both", Badges: []Badge{BadgeNew, BadgeLimited}},
			{ID: "new", Badges: []Badge{BadgeNew}},
		}
		got := Sort(products, SortEditor)
		assert.Equal(t, []string{"both", "new", "limited", "plain"}, ids(got))
	})

	t.Run("popular is the default and orders by stock", func(t *testing.T) {
		products := []Product{
			{ID: "scarce", StockTotal: 7},
			{ID: "plenty", StockTotal: 120},
			{ID: "some", StockTotal: 40},
		}
		got := Sort(products, SortKey("bogus"))
		assert.Equal(t, []string{"plenty", "some", "scarce"}, ids(got))
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		products := []Product{
			{ID: "a", Price: 89.99},
			{ID: "b", Price: 45.00},
		}
		Sort(products, SortPriceLow)
		assert.Equal(t, []string{"a", "b"}, ids(products))
	})
}
