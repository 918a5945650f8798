// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/panierprix/panier-backend/internal/config"
	"github.com/panierprix/panier-backend/internal/handlers"
	"github.com/panierprix/panier-backend/internal/middleware"
	"github.com/panierprix/panier-backend/internal/services"
	"github.com/panierprix/panier-backend/internal/utils"
)

func Initialize(catalogService *services.CatalogService, cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService)
	supermarketHandler := handlers.NewSupermarketHandler(catalogService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.RequestToken())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"source":  cfg.Catalog.Source,
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
		}

		// Supermarket directory
		supermarkets := v1.Group("/supermarkets")
		{
			supermarkets.GET("", supermarketHandler.GetSupermarkets)
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", getCategoriesHandler)
		}
	}

	return r
}

// Helper handlers for simple endpoints
func getCategoriesHandler(c *gin.Context) {
	categories := []map[string]interface{}{
		{"id": "alimentaire", "name": "Alimentaire", "icon": "🛒"},
		{"id": "hygiene-beaute", "name": "Hygiène & Beauté", "icon": "🧴"},
		{"id": "maison", "name": "Maison", "icon": "🏠"},
		{"id": "bebe-enfant", "name": "Bébé & Enfant", "icon": "👶"},
		{"id": "animalerie", "name": "Animalerie", "icon": "🐕"},
		{"id": "electronique", "name": "Électronique", "icon": "📱"},
	}

	utils.SuccessResponse(c, gin.H{
		"categories": categories,
	})
}
