package catalog

// PriceBand is a single-choice price bracket. Boundaries are inclusive on both
// ends, so a 50.00 product matches both "0-50" and "50-100".
type PriceBand string

const (
	PriceAny      PriceBand = ""
	PriceUnder50  PriceBand = "0-50"
	Price50To100  PriceBand = "50-100"
	Price100To200 PriceBand = "100-200"
	PriceOver200  PriceBand = "200+"
)

// Filter holds the catalog filter criteria. An empty slice leaves that
// dimension unrestricted; all populated dimensions must match.
type Filter struct {
	VendorTypes []VendorType
	Teams       []string
	Categories  []string
	Price       PriceBand
}

// Apply returns the products matching the filter, in their original order.
// The input slice is never modified.
func Apply(products []Product, f Filter) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f Filter) matches(p Product) bool {
	if len(f.VendorTypes) > 0 && !containsVendorType(f.VendorTypes, p.VendorType) {
		return false
	}
	if len(f.Teams) > 0 && !containsString(f.Teams, p.Team) {
		return false
	}
	if len(f.Categories) > 0 && !containsString(f.Categories, p.Category) {
		return false
	}
	switch f.Price {
	case PriceUnder50:
		if p.Price > 50 {
			return false
		}
	case Price50To100:
		if p.Price < 50 || p.Price > 100 {
			return false
		}
	case Price100To200:
		if p.Price < 100 || p.Price > 200 {
			return false
		}
	case PriceOver200:
		if p.Price < 200 {
			return false
		}
	}
	return true
}

func containsVendorType(set []VendorType, v VendorType) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
