package cart

import "time"

// MaxQuantity is the per-line ceiling enforced by UpdateQuantity.
const MaxQuantity = 10

// LineItem is one cart entry. ProductID is a weak reference: the product may
// have left the catalog since the item was added, in which case the line
// contributes zero to the total.
type LineItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// snapshotVersion is bumped when the persisted cart shape changes.
const snapshotVersion = 1

// snapshot is the persisted form of the whole cart, written wholesale on every
// mutation. The version field allows the shape to evolve safely.
type snapshot struct {
	SchemaVersion int        `json:"schema_version"`
	Items         []LineItem `json:"items"`
}
