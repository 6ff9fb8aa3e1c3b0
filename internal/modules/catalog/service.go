package catalog

import "errors"

// ErrProductNotFound is returned when a product id has no catalog entry.
var ErrProductNotFound = errors.New("product not found")

// Service exposes read-only access to the loaded catalog.
type Service interface {
	// ListProducts returns the filtered, sorted catalog view as a fresh slice.
	ListProducts(f Filter, key SortKey) []Product

	// GetProduct looks up a single product by id.
	GetProduct(id string) (Product, error)

	// Teams returns the distinct team names present in the catalog, in first-seen order.
	Teams() []string

	// Categories returns the distinct categories present in the catalog, in first-seen order.
	Categories() []string
}

type service struct {
	products []Product
	byID     map[string]Product
}

// NewService builds the catalog store over the loaded products. The slice is
// treated as immutable from this point on.
func NewService(products []Product) Service {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &service{products: products, byID: byID}
}

func (s *service) ListProducts(f Filter, key SortKey) []Product {
	return Sort(Apply(s.products, f), key)
}

func (s *service) GetProduct(id string) (Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *service) Teams() []string {
	return distinct(s.products, func(p Product) string { return p.Team })
}

func (s *service) Categories() []string {
	return distinct(s.products, func(p Product) string { return p.Category })
}

func distinct(products []Product, field func(Product) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		v := field(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
