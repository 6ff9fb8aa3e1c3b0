package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pitlane-labs/gridstore/internal/modules/catalog"
)

var (
	// ErrUnknownProduct means the product id has no catalog entry; the cart is untouched.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrItemNotFound means the line item id is not in the cart.
	ErrItemNotFound = errors.New("cart item not found")

	// ErrQuantityLimit means the requested quantity exceeds MaxQuantity; the
	// prior quantity is retained.
	ErrQuantityLimit = fmt.Errorf("maximum quantity per item is %d", MaxQuantity)
)

// ProductFinder is the slice of the catalog the cart needs: existence checks
// on add and price lookups for totals.
type ProductFinder interface {
	GetProduct(id string) (catalog.Product, error)
}

// Service is the mutable cart. Every mutation persists the whole cart before
// returning.
type Service interface {
	// Add puts quantity units of a product in the cart, merging into an
	// existing line for the same product. Unknown products are rejected.
	Add(ctx context.Context, productID string, quantity int) (LineItem, error)

	// Remove deletes a line item. Removing an absent item is a no-op.
	Remove(ctx context.Context, lineItemID string) error

	// UpdateQuantity sets a line's quantity. Below 1 removes the line; above
	// MaxQuantity fails with ErrQuantityLimit and keeps the prior quantity.
	UpdateQuantity(ctx context.Context, lineItemID string, quantity int) error

	// Items returns a copy of the current line items in insertion order.
	Items() []LineItem

	// Total sums price x quantity over the cart. Lines whose product has left
	// the catalog contribute zero.
	Total() float64

	// ItemCount is the sum of quantities, for the cart counter.
	ItemCount() int

	// Clear empties the cart and persists the empty state.
	Clear(ctx context.Context) error
}

type service struct {
	mu       sync.Mutex
	items    []LineItem
	repo     Repository
	products ProductFinder
	logger   *zap.Logger
}

// NewService loads the prior cart snapshot and serves mutations over it. A
// failed load starts from an empty cart rather than an error.
func NewService(ctx context.Context, repo Repository, products ProductFinder, logger *zap.Logger) Service {
	items, err := repo.Load(ctx)
	if err != nil {
		logger.Warn("cart snapshot load failed, starting empty", zap.Error(err))
		items = nil
	}
	return &service{items: items, repo: repo, products: products, logger: logger}
}

func (s *service) Add(ctx context.Context, productID string, quantity int) (LineItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	p, err := s.products.GetProduct(productID)
	if err != nil {
		return LineItem{}, ErrUnknownProduct
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity += quantity
			if err := s.persist(ctx); err != nil {
				return LineItem{}, err
			}
			s.logger.Info("added to cart", zap.String("product", p.Title), zap.Int("quantity", s.items[i].Quantity))
			return s.items[i], nil
		}
	}

	item := LineItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now().UTC(),
	}
	s.items = append(s.items, item)
	if err := s.persist(ctx); err != nil {
		return LineItem{}, err
	}
	s.logger.Info("added to cart", zap.String("product", p.Title), zap.Int("quantity", quantity))
	return item, nil
}

func (s *service) Remove(ctx context.Context, lineItemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, lineItemID)
}

func (s *service) removeLocked(ctx context.Context, lineItemID string) error {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != lineItemID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return s.persist(ctx)
}

func (s *service) UpdateQuantity(ctx context.Context, lineItemID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.items {
		if s.items[i].ID == lineItemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrItemNotFound
	}

	if quantity < 1 {
		return s.removeLocked(ctx, lineItemID)
	}
	if quantity > MaxQuantity {
		return ErrQuantityLimit
	}

	s.items[idx].Quantity = quantity
	return s.persist(ctx)
}

func (s *service) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *service) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		p, err := s.products.GetProduct(item.ProductID)
		if err != nil {
			continue
		}
		total += p.Price * float64(item.Quantity)
	}
	return round2(total)
}

func (s *service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return s.persist(ctx)
}

// persist writes the whole cart under the lock, so callers observe each
// mutation and its save as one step.
func (s *service) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.items); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
