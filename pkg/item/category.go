package item

import (
	"fmt"
	"strings"
)

// Category classifies an item into one of a fixed set of values.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryDocuments   Category = "Documents"
	CategoryAccessories Category = "Accessories"
	CategoryBags        Category = "Bags"
	CategoryKeys        Category = "Keys"
	CategoryOther       Category = "Other" // catch-all
)

// categories holds the canonical display order.
var categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryDocuments,
	CategoryAccessories,
	CategoryBags,
	CategoryKeys,
	CategoryOther,
}

// Categories returns the fixed category set in display order.
// The returned slice is a copy and safe to modify.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory canonicalizes a user-supplied category string.
// Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category %q (valid: %s)", s, categoryList())
}

// Valid reports whether the category is a member of the fixed set.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

func categoryList() string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
