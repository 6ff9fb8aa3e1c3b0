package catalog

import "sort"

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortPopular   SortKey = "popular" // default: stock total as a popularity proxy
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest"
	SortEditor    SortKey = "editor"
)

// Sort returns a freshly ordered copy of products. All orderings are stable:
// ties keep their original relative order. Unknown keys fall back to popular.
func Sort(products []Product, key SortKey) []Product {
	out := make([]Product, len(products))
	copy(out, products)

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNewest:
		// A missing release date sorts as the oldest possible date.
		sort.SliceStable(out, func(i, j int) bool {
			ri, rj := out[i].ReleaseDate, out[j].ReleaseDate
			switch {
			case ri == nil:
				return false
			case rj == nil:
				return true
			default:
				return ri.After(*rj)
			}
		})
	case SortEditor:
		sort.SliceStable(out, func(i, j int) bool {
			return editorScore(out[i]) > editorScore(out[j])
		})
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].StockTotal > out[j].StockTotal })
	}
	return out
}

// editorScore weights "new" over "limited" for the editor's pick ordering.
func editorScore(p Product) int {
	score := 0
	if p.HasBadge(BadgeNew) {
		score += 2
	}
	if p.HasBadge(BadgeLimited) {
		score++
	}
	return score
}
