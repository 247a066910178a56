package model

import (
	"fmt"
	"strings"
)

// Category is the closed set of transaction categories.
type Category int

const (
	CategorySalary Category = iota
	CategoryHousing
	CategoryFood
	CategoryTransport
	CategoryLeisure
	CategoryHealth
	CategoryEducation
	CategoryInvestments
	CategoryOther
)

// categoryInfo is indexed by Category. label is the stored form.
var categoryInfo = [...]struct {
	key   string
	label string
	icon  string
}{
	CategorySalary:      {"salary", "Salário", "💰"},
	CategoryHousing:     {"housing", "Moradia", "🏠"},
	CategoryFood:        {"food", "Alimentação", "🍽"},
	CategoryTransport:   {"transport", "Transporte", "🚌"},
	CategoryLeisure:     {"leisure", "Lazer", "🎬"},
	CategoryHealth:      {"health", "Saúde", "🩺"},
	CategoryEducation:   {"education", "Educação", "🎓"},
	CategoryInvestments: {"investments", "Investimentos", "📈"},
	CategoryOther:       {"other", "Outros", "📦"},
}

// Categories lists every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryInfo))
	for i := range categoryInfo {
		out[i] = Category(i)
	}
	return out
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(categoryInfo)
}

// Key returns the short ASCII name used on the command line.
func (c Category) Key() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryInfo[c].key
}

// Label returns the display label, which is also the stored form.
func (c Category) Label() string {
	if !c.Valid() {
		return "?"
	}
	return categoryInfo[c].label
}

// Icon returns a single-glyph icon for list rendering.
func (c Category) Icon() string {
	if !c.Valid() {
		return "?"
	}
	return categoryInfo[c].icon
}

func (c Category) String() string { return c.Label() }

// ParseCategory accepts either the label or the ASCII key, case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for i, info := range categoryInfo {
		if strings.EqualFold(s, info.label) || strings.EqualFold(s, info.key) {
			return Category(i), nil
		}
	}
	return CategoryOther, fmt.Errorf("unknown category %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.Label()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
