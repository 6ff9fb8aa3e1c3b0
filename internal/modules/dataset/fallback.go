package dataset

import (
	"github.com/pitlane-labs/gridstore/internal/modules/catalog"
	"github.com/pitlane-labs/gridstore/internal/modules/i18n"
	"github.com/pitlane-labs/gridstore/internal/modules/vendor"
)

// Fallback returns the built-in sample dataset: one official product, its
// vendor, and a minimal English translation table. It keeps the storefront
// usable when the data documents cannot be loaded.
func Fallback() *Dataset {
	return &Dataset{
		Products: []catalog.Product{
			{
				ID:         "ferrari-cap-001",
				Title:      "Scuderia Ferrari Team Cap 2024",
				VendorType: catalog.VendorOfficial,
				Team:       "Ferrari",
				Price:      89.99,
				Currency:   "USD",
				Images:     []string{"resources/product-ferrari-cap.jpg"},
				Variants: []catalog.Variant{
					{ID: "s", Label: "S", Stock: 15},
					{ID: "m", Label: "M", Stock: 8},
					{ID: "l", Label: "L", Stock: 12},
					{ID: "xl", Label: "XL", Stock: 5},
				},
				StockTotal:  40,
				Description: "Official Scuderia Ferrari team cap featuring the iconic prancing horse logo. Made from premium materials with adjustable fit.",
				Badges:      []catalog.Badge{catalog.BadgeOfficial, catalog.BadgeNew},
				Category:    "accessories",
				SKU:         "SF-CAP-2024-001",
			},
		},
		Vendors: []vendor.Vendor{
			{
				VendorID:   "ferrari-official",
				Name:       "Scuderia Ferrari Store",
				VendorType: "official",
			},
		},
		Translations: i18n.NewBundle(map[string]i18n.Messages{
			"en": {
				"nav":  map[string]interface{}{"home": "Home", "catalog": "Catalog", "cart": "Cart"},
				"hero": map[string]interface{}{"headline": "Formula 1 Marketplace", "subheadline": "Official & Creator Merchandise"},
			},
		}),
	}
}
