// Package catalog holds the pure transformations the storefront and admin
// views apply to a product list: filtering, card shaping, form state and
// click analytics. Nothing here performs I/O.
package catalog

import (
	"strings"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
)

// AllCategories is the category menu entry that disables category filtering
const AllCategories = "All"

// Filter returns the products matching category and search term, in input
// order. The input slice is not modified.
func Filter(products []domain.Product, category, term string) []domain.Product {
	q := strings.ToLower(term)
	search := strings.TrimSpace(term) != ""

	list := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != AllCategories && p.Category != category {
			continue
		}
		if search && !matches(p, q) {
			continue
		}
		list = append(list, p)
	}
	return list
}

func matches(p domain.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// Categories builds the category menu: "All" followed by each distinct
// non-empty category in first-seen order.
func Categories(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	menu := []string{AllCategories}
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		menu = append(menu, p.Category)
	}
	return menu
}
