// internal/services/catalog_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/panierprix/panier-backend/internal/catalog"
	"github.com/panierprix/panier-backend/internal/models"
)

// CatalogService joins the product source, the supermarket directory and the
// optional catalog cache behind the API the handlers consume. It keeps no
// state between calls.
type CatalogService struct {
	source    catalog.Source
	directory catalog.Directory
	cache     *CacheService // nil when caching is disabled
	logger    *logrus.Logger
}

func NewCatalogService(source catalog.Source, directory catalog.Directory, cache *CacheService, logger *logrus.Logger) *CatalogService {
	return &CatalogService{
		source:    source,
		directory: directory,
		cache:     cache,
		logger:    logger,
	}
}

// FetchCatalog retrieves the catalog, narrows price entries to the selected
// supermarkets and drops products left without any entry. Products come back
// in source order; no ranking is applied.
func (s *CatalogService) FetchCatalog(ctx context.Context, query string, supermarkets []string) ([]models.Product, error) {
	key := CatalogCacheKey(query, supermarkets)
	if s.cache != nil {
		if products, ok := s.cache.GetCatalog(ctx, key); ok {
			return products, nil
		}
	}

	products, err := s.source.FetchCatalog(ctx, query)
	if err != nil {
		return nil, err
	}

	products = catalog.NarrowToSupermarkets(products, supermarkets)
	s.warnPriceAnomalies(products)

	if s.cache != nil {
		s.cache.SetCatalog(ctx, key, products)
	}
	return products, nil
}

// FetchProduct returns one product by identifier, catalog.ErrNotFound when
// the id does not exist.
func (s *CatalogService) FetchProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.source.FetchProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	s.warnPriceAnomalies([]models.Product{*product})
	return product, nil
}

// ListSupermarkets returns the retailer directory.
func (s *CatalogService) ListSupermarkets(ctx context.Context) ([]models.Supermarket, error) {
	return s.directory.ListSupermarkets(ctx)
}

// Discount display assumes original_price >= price. Sources are trusted, not
// rejected; anomalies are only logged.
func (s *CatalogService) warnPriceAnomalies(products []models.Product) {
	for _, p := range products {
		for _, e := range p.Prices {
			if e.OriginalPrice != nil && *e.OriginalPrice < e.Price {
				s.logger.WithFields(logrus.Fields{
					"product_id":     p.ID,
					"price_id":       e.ID,
					"price":          e.Price,
					"original_price": *e.OriginalPrice,
				}).Warn("Original price below current price")
			}
		}
	}
}
