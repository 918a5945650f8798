// internal/services/cache_service.go
package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/panierprix/panier-backend/internal/models"
)

// CacheService is the opt-in catalog cache: catalog responses keyed by
// (query, supermarket filter) with a short TTL. Cache failures degrade to a
// plain fetch, never to an error.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

func NewCacheService(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *CacheService {
	return &CacheService{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// CatalogCacheKey builds a stable key: the filter set is order-insensitive.
func CatalogCacheKey(query string, supermarkets []string) string {
	names := make([]string, len(supermarkets))
	copy(names, supermarkets)
	sort.Strings(names)
	return "catalog:" + strings.ToLower(query) + "|" + strings.Join(names, ",")
}

func (c *CacheService) GetCatalog(ctx context.Context, key string) ([]models.Product, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).WithField("key", key).Warn("Catalog cache read failed")
		}
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Catalog cache entry corrupt")
		return nil, false
	}
	return products, true
}

func (c *CacheService) SetCatalog(ctx context.Context, key string, products []models.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Catalog cache encode failed")
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Catalog cache write failed")
	}
}
