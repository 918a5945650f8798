// internal/catalog/fakestore/fakestore_test.go
package fakestore

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panierprix/panier-backend/internal/catalog"
)

const productsJSON = `[
	{
		"id": 1,
		"title": "Fjallraven - Foldsack No. 1 Backpack",
		"price": 109.95,
		"description": "Your perfect pack for everyday use",
		"category": "men's clothing",
		"image": "https://example.test/1.jpg",
		"rating": {"rate": 3.9, "count": 120}
	},
	{
		"id": 2,
		"title": "Mens Casual Premium Slim Fit T-Shirts",
		"price": 22.3,
		"description": "Slim-fitting style",
		"category": "men's clothing",
		"image": "https://example.test/2.jpg",
		"rating": {"rate": 4.1, "count": 259}
	}
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewClient(srv.URL, logger)
}

func apiHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			w.Write([]byte(productsJSON))
		case "/products/1":
			w.Write([]byte(`{
				"id": 1,
				"title": "Fjallraven - Foldsack No. 1 Backpack",
				"price": 109.95,
				"description": "Your perfect pack for everyday use",
				"category": "men's clothing",
				"image": "https://example.test/1.jpg",
				"rating": {"rate": 3.9, "count": 120}
			}`))
		case "/products/999":
			// The real API replies 200 with an empty body for missing ids.
			w.Write([]byte(""))
		default:
			http.NotFound(w, r)
		}
	}
}

func TestFetchCatalogMapsProducts(t *testing.T) {
	c := newTestClient(t, apiHandler(t))

	products, err := c.FetchCatalog(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, products, 2)

	p := products[0]
	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "Fjallraven - Foldsack No. 1 Backpack", p.Name)
	assert.Equal(t, "Fjallraven", p.Brand)
	assert.Equal(t, "men's clothing", p.Category)
	assert.Equal(t, 3.9, p.Rating)
	assert.Equal(t, int64(120), p.ReviewCount)
	assert.Equal(t, "https://example.test/1.jpg", p.ImageURL)

	assert.Equal(t, "Mens", products[1].Brand)
}

func TestFetchCatalogQueryFilter(t *testing.T) {
	c := newTestClient(t, apiHandler(t))

	products, err := c.FetchCatalog(context.Background(), "FJALLRAVEN")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)

	products, err = c.FetchCatalog(context.Background(), "nutella")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSyntheticPrices(t *testing.T) {
	c := newTestClient(t, apiHandler(t))

	products, err := c.FetchCatalog(context.Background(), "")
	require.NoError(t, err)

	for _, p := range products {
		assert.Len(t, p.Prices, len(supermarkets))
		for _, e := range p.Prices {
			assert.GreaterOrEqual(t, e.Price, 0.5)
			assert.NotEmpty(t, e.Supermarket.Name)
			assert.NotEmpty(t, e.Address)
			if e.OriginalPrice != nil {
				assert.GreaterOrEqual(t, *e.OriginalPrice, e.Price)
			}
		}
	}
}

func TestSyntheticPricesAreStablePerProduct(t *testing.T) {
	c := newTestClient(t, apiHandler(t))

	first, err := c.FetchProduct(context.Background(), "1")
	require.NoError(t, err)
	second, err := c.FetchProduct(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, first.Prices, second.Prices)
}

func TestFetchProductNotFound(t *testing.T) {
	c := newTestClient(t, apiHandler(t))

	_, err := c.FetchProduct(context.Background(), "999")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestFetchCatalogUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.FetchCatalog(context.Background(), "")
	var retrievalErr *catalog.RetrievalError
	assert.ErrorAs(t, err, &retrievalErr)
}

func TestFetchCatalogUnreachableSource(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	c := NewClient(srv.URL, logger)

	_, err := c.FetchCatalog(context.Background(), "")
	var retrievalErr *catalog.RetrievalError
	assert.ErrorAs(t, err, &retrievalErr)
	assert.False(t, errors.Is(err, catalog.ErrNotFound))
}

func TestFetchCatalogMalformedResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, err := c.FetchCatalog(context.Background(), "")
	var retrievalErr *catalog.RetrievalError
	assert.ErrorAs(t, err, &retrievalErr)
}

func TestStaticDirectory(t *testing.T) {
	d := NewStaticDirectory()

	sms, err := d.ListSupermarkets(context.Background())
	require.NoError(t, err)
	require.Len(t, sms, 5)
	assert.Equal(t, "Carrefour", sms[0].Name)
	assert.Equal(t, "bg-blue-500", sms[0].Color)
}
