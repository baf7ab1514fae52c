package menu

import (
	"fmt"

	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

// Category classifies a menu item on the card. The set is fixed: the
// crêperie serves savoury and sweet crêpes, beverages, and the
// occasional extra.
type Category int

const (
	// UnknownCategory represents an invalid or undefined category.
	UnknownCategory Category = iota

	// Salty covers the savoury crêpes ("salée").
	Salty

	// Sweet covers the dessert crêpes ("sucrée").
	Sweet

	// Beverage covers drinks ("boisson").
	Beverage

	// Other covers everything that fits none of the above ("autre").
	Other
)

// Category names keep the French spellings the card and the original
// data were written with.
func getCategoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory: "inconnue",
		Salty:           "salée",
		Sweet:           "sucrée",
		Beverage:        "boisson",
		Other:           "autre",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // UnknownCategory is intentionally excluded as it's invalid
	return map[Category]string{
		Salty:    "salée",
		Sweet:    "sucrée",
		Beverage: "boisson",
		Other:    "autre",
	}
}

// CategoryFromString parses a category from its French name.
// Used when reconstructing items from persistence or the admin API.
func CategoryFromString(s string) (Category, error) {
	for category, name := range getValidCategoryStrings() {
		if name == s {
			return category, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q is not a valid category", s),
	)
}

// Validate checks that the category is one of the fixed set.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the French name of the category.
// Implements fmt.Stringer; safe on any value.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "inconnue"
}
