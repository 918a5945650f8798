// internal/catalog/store/store.go

// Package store implements the catalog source and supermarket directory on
// the relational schema (products, prices, supermarkets).
package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/panierprix/panier-backend/internal/catalog"
	"github.com/panierprix/panier-backend/internal/models"
)

const sourceName = "database"

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FetchCatalog lists products with their price entries and supermarket
// metadata preloaded, pattern-matched on name, brand and category when a
// query string is given.
func (s *Store) FetchCatalog(ctx context.Context, query string) ([]models.Product, error) {
	q := s.db.WithContext(ctx).Model(&models.Product{}).
		Preload("Prices").
		Preload("Prices.Supermarket")

	if query != "" {
		searchTerm := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(category) LIKE ?",
			searchTerm, searchTerm, searchTerm)
	}

	var products []models.Product
	if err := q.Order("created_at ASC").Find(&products).Error; err != nil {
		return nil, catalog.NewRetrievalError(sourceName, "fetch products", err)
	}
	return products, nil
}

// FetchProduct returns one product by exact identifier.
func (s *Store) FetchProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Prices").
		Preload("Prices.Supermarket").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrNotFound
		}
		return nil, catalog.NewRetrievalError(sourceName, "fetch product "+id, err)
	}
	return &product, nil
}

// ListSupermarkets returns the directory sorted by name.
func (s *Store) ListSupermarkets(ctx context.Context) ([]models.Supermarket, error) {
	var sms []models.Supermarket
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&sms).Error; err != nil {
		return nil, catalog.NewRetrievalError(sourceName, "list supermarkets", err)
	}
	return sms, nil
}
