package i18n

import (
	"encoding/json"
	"strings"
)

// DefaultLanguage is used when a requested language has no bundle.
const DefaultLanguage = "en"

// Messages is a nested translation table, e.g. {"nav": {"cart": "Cart"}}.
type Messages map[string]interface{}

// Bundle holds the translation tables for every loaded language.
type Bundle struct {
	languages map[string]Messages
}

// NewBundle builds a bundle from per-language tables.
func NewBundle(languages map[string]Messages) *Bundle {
	if languages == nil {
		languages = map[string]Messages{}
	}
	return &Bundle{languages: languages}
}

// ParseMessages decodes one language document.
func ParseMessages(data []byte) (Messages, error) {
	var m Messages
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Languages returns the loaded language codes.
func (b *Bundle) Languages() []string {
	out := make([]string, 0, len(b.languages))
	for lang := range b.languages {
		out = append(out, lang)
	}
	return out
}

// Table returns the full table for a language, falling back to the default
// language when the requested one is not loaded.
func (b *Bundle) Table(lang string) (Messages, bool) {
	if m, ok := b.languages[lang]; ok {
		return m, true
	}
	m, ok := b.languages[DefaultLanguage]
	return m, ok
}

// T resolves a dotted key like "nav.cart" for the given language. Unknown keys
// return the key itself so a missing translation never blanks the UI.
func (b *Bundle) T(lang, key string) string {
	table, ok := b.Table(lang)
	if !ok {
		return key
	}
	var current interface{} = map[string]interface{}(table)
	for _, part := range strings.Split(key, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return key
		}
		current, ok = node[part]
		if !ok {
			return key
		}
	}
	if s, ok := current.(string); ok {
		return s
	}
	return key
}
