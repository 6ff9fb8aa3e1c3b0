package catalog

import (
	"strings"
	"time"
)

// VendorType classifies who sells a product.
type VendorType string

const (
	VendorOfficial VendorType = "official"
	VendorCreator  VendorType = "creator"
)

// Badge is a marketing label attached to a product.
type Badge string

const (
	BadgeOfficial Badge = "official"
	BadgeCreator  Badge = "creator"
	BadgeNew      Badge = "new"
	BadgeLimited  Badge = "limited"
)

// Product is one catalog entry. Products are loaded once at startup and never
// mutated afterwards.
type Product struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	VendorType  VendorType `json:"vendor_type"`
	Team        string     `json:"team,omitempty"`         // set for official products
	CreatorName string     `json:"creator_name,omitempty"` // set for creator products
	Price       float64    `json:"price"`
	Currency    string     `json:"currency"`
	Images      []string   `json:"images,omitempty"`
	Variants    []Variant  `json:"variants,omitempty"`
	StockTotal  int        `json:"stock_total"`
	Description string     `json:"description,omitempty"`
	Badges      []Badge    `json:"badges,omitempty"`
	Category    string     `json:"category"`
	SKU         string     `json:"sku,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
}

// Variant is a purchasable option of a product (size, colour) with its own stock.
type Variant struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Stock int    `json:"stock"`
}

// HasBadge reports whether the product carries the given badge.
func (p Product) HasBadge(b Badge) bool {
	for _, have := range p.Badges {
		if have == b {
			return true
		}
	}
	return false
}

// VendorKey derives the key used to look up the product's vendor: the team name
// for official products (suffixed "-official"), otherwise the creator name.
func (p Product) VendorKey() string {
	if p.VendorType == VendorOfficial {
		return slug(p.Team) + "-official"
	}
	if p.CreatorName == "" {
		return "creator"
	}
	return slug(p.CreatorName)
}

func slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
