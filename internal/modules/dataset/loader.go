// Package dataset loads the three static storefront documents: products,
// vendors, and translations. Loading is all-or-nothing: if any document fails
// to read or parse, the built-in fallback dataset replaces every document, so
// callers never see an error or a partially loaded store.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pitlane-labs/gridstore/internal/modules/catalog"
	"github.com/pitlane-labs/gridstore/internal/modules/i18n"
	"github.com/pitlane-labs/gridstore/internal/modules/vendor"
)

// languageFiles maps loaded language codes to their document names.
var languageFiles = map[string]string{
	"en": "en.json",
	"id": "id.json",
}

// Dataset is everything the storefront needs at startup.
type Dataset struct {
	Products     []catalog.Product
	Vendors      []vendor.Vendor
	Translations *i18n.Bundle
}

// Load reads the data documents from dir. On any failure it logs a warning and
// returns the fallback dataset instead.
func Load(dir string, logger *zap.Logger) *Dataset {
	ds, err := loadFromDir(dir)
	if err != nil {
		logger.Warn("catalog data load failed, using fallback dataset",
			zap.String("dir", dir),
			zap.Error(err),
		)
		return Fallback()
	}
	logger.Info("catalog data loaded",
		zap.Int("products", len(ds.Products)),
		zap.Int("vendors", len(ds.Vendors)),
	)
	return ds
}

func loadFromDir(dir string) (*Dataset, error) {
	var products []catalog.Product
	if err := readJSON(filepath.Join(dir, "products.json"), &products); err != nil {
		return nil, fmt.Errorf("products: %w", err)
	}

	var vendors []vendor.Vendor
	if err := readJSON(filepath.Join(dir, "vendors.json"), &vendors); err != nil {
		return nil, fmt.Errorf("vendors: %w", err)
	}

	languages := make(map[string]i18n.Messages, len(languageFiles))
	for lang, file := range languageFiles {
		data, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return nil, fmt.Errorf("translations %s: %w", lang, err)
		}
		m, err := i18n.ParseMessages(data)
		if err != nil {
			return nil, fmt.Errorf("translations %s: %w", lang, err)
		}
		languages[lang] = m
	}

	return &Dataset{
		Products:     products,
		Vendors:      vendors,
		Translations: i18n.NewBundle(languages),
	}, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
