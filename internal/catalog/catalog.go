// internal/catalog/catalog.go

// Package catalog defines the capabilities the storefront depends on: a
// product source and a supermarket directory. Implementations live in the
// fakestore and store subpackages.
package catalog

import (
	"context"
	"strings"

	"github.com/panierprix/panier-backend/internal/models"
)

// Source retrieves products with their price entries already joined to
// supermarket metadata. Each call issues one upstream request; repeated calls
// with identical arguments re-fetch.
type Source interface {
	// FetchCatalog returns products in source order, text-filtered by query
	// when non-empty. A failing upstream yields a *RetrievalError.
	FetchCatalog(ctx context.Context, query string) ([]models.Product, error)

	// FetchProduct returns the product with the exact identifier, or
	// ErrNotFound when no such product exists.
	FetchProduct(ctx context.Context, id string) (*models.Product, error)
}

// Directory lists the known supermarkets. The query-backed provider orders
// by name; the static provider keeps its fixed order.
type Directory interface {
	ListSupermarkets(ctx context.Context) ([]models.Supermarket, error)
}

// MatchesQuery reports whether a product matches a search string: a
// case-insensitive substring test, OR-combined across name, brand and
// category.
func MatchesQuery(p models.Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// FilterByQuery keeps the products matching query, preserving order.
func FilterByQuery(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if MatchesQuery(p, query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// NarrowToSupermarkets trims each product's price entries to the named
// supermarkets and drops products left without any entry. An empty filter is
// a no-op.
func NarrowToSupermarkets(products []models.Product, names []string) []models.Product {
	if len(names) == 0 {
		return products
	}

	selected := make(map[string]struct{}, len(names))
	for _, n := range names {
		selected[n] = struct{}{}
	}

	narrowed := make([]models.Product, 0, len(products))
	for _, p := range products {
		prices := make([]models.Price, 0, len(p.Prices))
		for _, e := range p.Prices {
			if _, ok := selected[e.Supermarket.Name]; ok {
				prices = append(prices, e)
			}
		}
		if len(prices) == 0 {
			continue
		}
		p.Prices = prices
		narrowed = append(narrowed, p)
	}
	return narrowed
}
