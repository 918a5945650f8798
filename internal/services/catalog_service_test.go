// internal/services/catalog_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panierprix/panier-backend/internal/catalog"
	"github.com/panierprix/panier-backend/internal/models"
)

type stubSource struct {
	products []models.Product
	err      error
	calls    int
}

func (s *stubSource) FetchCatalog(ctx context.Context, query string) ([]models.Product, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return catalog.FilterByQuery(s.products, query), nil
}

func (s *stubSource) FetchProduct(ctx context.Context, id string) (*models.Product, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, catalog.ErrNotFound
}

type stubDirectory struct {
	supermarkets []models.Supermarket
}

func (d *stubDirectory) ListSupermarkets(ctx context.Context) ([]models.Supermarket, error) {
	return d.supermarkets, nil
}

func testProducts() []models.Product {
	priced := func(id, name, brand, category string, quotes map[string]float64) models.Product {
		p := models.Product{
			BaseModel: models.BaseModel{ID: id},
			Name:      name,
			Brand:     brand,
			Category:  category,
		}
		for sm, price := range quotes {
			p.Prices = append(p.Prices, models.Price{
				Price:        price,
				Availability: true,
				Supermarket:  models.Supermarket{Name: sm},
			})
		}
		return p
	}

	return []models.Product{
		priced("1", "Nutella 400g", "Ferrero", "Petit-déjeuner",
			map[string]float64{"Carrefour": 3.75, "Leclerc": 3.95}),
		priced("2", "Lait Demi-Écrémé 1L", "Lactel", "Produits laitiers",
			map[string]float64{"Monoprix": 1.35}),
	}
}

func newTestService(source catalog.Source) *CatalogService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewCatalogService(source, &stubDirectory{}, nil, logger)
}

func TestFetchCatalogNarrowsAndDrops(t *testing.T) {
	src := &stubSource{products: testProducts()}
	svc := newTestService(src)

	products, err := svc.FetchCatalog(context.Background(), "", []string{"Carrefour"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)
	assert.Len(t, products[0].Prices, 1)
}

func TestFetchCatalogEmptyFilterKeepsAll(t *testing.T) {
	src := &stubSource{products: testProducts()}
	svc := newTestService(src)

	products, err := svc.FetchCatalog(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestFetchCatalogPassesQueryToSource(t *testing.T) {
	src := &stubSource{products: testProducts()}
	svc := newTestService(src)

	products, err := svc.FetchCatalog(context.Background(), "ferrero", nil)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Nutella 400g", products[0].Name)
}

func TestFetchCatalogSourceFailure(t *testing.T) {
	srcErr := catalog.NewRetrievalError("stub", "fetch", errors.New("connection refused"))
	src := &stubSource{err: srcErr}
	svc := newTestService(src)

	_, err := svc.FetchCatalog(context.Background(), "", nil)
	var retrievalErr *catalog.RetrievalError
	assert.ErrorAs(t, err, &retrievalErr)
}

func TestRepeatedFetchesHitTheSource(t *testing.T) {
	src := &stubSource{products: testProducts()}
	svc := newTestService(src)

	_, err := svc.FetchCatalog(context.Background(), "", nil)
	require.NoError(t, err)
	_, err = svc.FetchCatalog(context.Background(), "", nil)
	require.NoError(t, err)

	// No memoization without the cache: identical arguments re-fetch.
	assert.Equal(t, 2, src.calls)
}

func TestFetchProduct(t *testing.T) {
	src := &stubSource{products: testProducts()}
	svc := newTestService(src)

	product, err := svc.FetchProduct(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Lait Demi-Écrémé 1L", product.Name)
}

func TestFetchProductNotFound(t *testing.T) {
	src := &stubSource{products: testProducts()}
	svc := newTestService(src)

	_, err := svc.FetchProduct(context.Background(), "999")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCatalogCacheKey(t *testing.T) {
	a := CatalogCacheKey("Nutella", []string{"Leclerc", "Carrefour"})
	b := CatalogCacheKey("nutella", []string{"Carrefour", "Leclerc"})
	assert.Equal(t, a, b)

	c := CatalogCacheKey("nutella", nil)
	assert.NotEqual(t, a, c)
}
