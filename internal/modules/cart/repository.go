package cart

import "context"

// Repository persists the cart as a single snapshot under one fixed storage
// key: Load reads the prior snapshot at startup, Save overwrites it wholesale.
type Repository interface {
	Load(ctx context.Context) ([]LineItem, error)
	Save(ctx context.Context, items []LineItem) error
}
