// internal/catalog/fakestore/fakestore.go

// Package fakestore implements the catalog source backed by a public
// FakeStore-compatible product API. The API has no per-retailer prices, so
// price entries are synthesized per supermarket, seeded by product id so a
// product keeps the same quotes across fetches.
package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/panierprix/panier-backend/internal/catalog"
	"github.com/panierprix/panier-backend/internal/models"
)

const sourceName = "fakestore"

// Supermarkets the storefront compares. The API source has no directory of
// its own, so the list is fixed.
var supermarkets = []models.Supermarket{
	{BaseModel: models.BaseModel{ID: "1"}, Name: "Carrefour", Color: "bg-blue-500"},
	{BaseModel: models.BaseModel{ID: "2"}, Name: "Leclerc", Color: "bg-green-500"},
	{BaseModel: models.BaseModel{ID: "3"}, Name: "Auchan", Color: "bg-red-500"},
	{BaseModel: models.BaseModel{ID: "4"}, Name: "Casino", Color: "bg-yellow-500"},
	{BaseModel: models.BaseModel{ID: "5"}, Name: "Monoprix", Color: "bg-purple-500"},
}

// Brands recognized in product titles. The API carries no brand field.
var knownBrands = []string{
	"Samsung", "Apple", "Nike", "Adidas", "Sony", "LG",
	"Fjallraven", "John Hardy", "Mens", "Womens",
}

type apiProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      struct {
		Rate  float64 `json:"rate"`
		Count int64   `json:"count"`
	} `json:"rating"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// FetchCatalog lists all products from the API, maps them to the storefront
// shape and applies the text filter locally.
func (c *Client) FetchCatalog(ctx context.Context, query string) ([]models.Product, error) {
	body, status, err := c.get(ctx, "/products")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, catalog.NewRetrievalError(sourceName, "GET /products",
			fmt.Errorf("unexpected status %d", status))
	}

	var raw []apiProduct
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, catalog.NewRetrievalError(sourceName, "decode products", err)
	}
	c.logger.WithField("count", len(raw)).Debug("Fetched product listing")

	products := make([]models.Product, 0, len(raw))
	for _, p := range raw {
		products = append(products, c.mapProduct(p))
	}
	return catalog.FilterByQuery(products, query), nil
}

// FetchProduct looks up one product by its upstream numeric identifier.
func (c *Client) FetchProduct(ctx context.Context, id string) (*models.Product, error) {
	body, status, err := c.get(ctx, "/products/"+id)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, catalog.ErrNotFound
	}
	if status != http.StatusOK {
		return nil, catalog.NewRetrievalError(sourceName, "GET /products/"+id,
			fmt.Errorf("unexpected status %d", status))
	}

	// The API answers missing ids with an empty 200 body.
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return nil, catalog.ErrNotFound
	}

	var raw apiProduct
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, catalog.NewRetrievalError(sourceName, "decode product "+id, err)
	}
	if raw.ID == 0 {
		return nil, catalog.ErrNotFound
	}

	product := c.mapProduct(raw)
	return &product, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, catalog.NewRetrievalError(sourceName, "build request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, catalog.NewRetrievalError(sourceName, "GET "+path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, catalog.NewRetrievalError(sourceName, "read response", err)
	}
	return body, resp.StatusCode, nil
}

func (c *Client) mapProduct(p apiProduct) models.Product {
	id := fmt.Sprintf("%d", p.ID)
	return models.Product{
		BaseModel:   models.BaseModel{ID: id},
		Name:        p.Title,
		Brand:       brandFromTitle(p.Title),
		Description: p.Description,
		Category:    p.Category,
		Rating:      p.Rating.Rate,
		ReviewCount: p.Rating.Count,
		ImageURL:    p.Image,
		Prices:      generatePrices(p.Price, p.ID),
	}
}

func brandFromTitle(title string) string {
	lower := strings.ToLower(title)
	for _, brand := range knownBrands {
		if strings.Contains(lower, strings.ToLower(brand)) {
			return brand
		}
	}
	return "Generic"
}

// generatePrices synthesizes one quote per supermarket around a base price:
// ±15% variation, a 30% chance of a displayed discount, 90% availability.
func generatePrices(basePrice float64, productID int) []models.Price {
	rng := rand.New(rand.NewSource(int64(productID)))

	prices := make([]models.Price, 0, len(supermarkets))
	for _, sm := range supermarkets {
		variation := (rng.Float64() - 0.5) * 0.3
		price := roundCents(math.Max(0.5, basePrice*(1+variation)))

		var originalPrice *float64
		var discount *int
		if rng.Float64() > 0.7 {
			op := roundCents(price * 1.2)
			d := rng.Intn(30) + 5
			originalPrice = &op
			discount = &d
		}

		prices = append(prices, models.Price{
			BaseModel:     models.BaseModel{ID: fmt.Sprintf("%d-%s", productID, sm.ID)},
			ProductID:     fmt.Sprintf("%d", productID),
			SupermarketID: sm.ID,
			Price:         price,
			OriginalPrice: originalPrice,
			Discount:      discount,
			Availability:  rng.Float64() > 0.1,
			Address:       fmt.Sprintf("Magasin %s - %d rue de la République", sm.Name, rng.Intn(10)+1),
			Supermarket:   sm,
		})
	}
	return prices
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// StaticDirectory serves the fixed supermarket list.
type StaticDirectory struct{}

func NewStaticDirectory() *StaticDirectory {
	return &StaticDirectory{}
}

func (d *StaticDirectory) ListSupermarkets(ctx context.Context) ([]models.Supermarket, error) {
	out := make([]models.Supermarket, len(supermarkets))
	copy(out, supermarkets)
	return out, nil
}
