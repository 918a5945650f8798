// internal/handlers/product.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/panierprix/panier-backend/internal/catalog"
	"github.com/panierprix/panier-backend/internal/models"
	"github.com/panierprix/panier-backend/internal/pricing"
	"github.com/panierprix/panier-backend/internal/services"
	"github.com/panierprix/panier-backend/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

type CatalogRequest struct {
	Query        string   `json:"q" validate:"omitempty,max=200"`
	Supermarkets []string `json:"supermarkets" validate:"omitempty,dive,supermarket_name"`
}

// ProductView is a product plus its derived price aggregate.
type ProductView struct {
	models.Product
	PriceSummary pricing.Summary `json:"price_summary"`
}

func toViews(products []models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			Product:      p,
			PriceSummary: pricing.Summarize(p.Prices),
		})
	}
	return views
}

// GET /products?q=...&supermarkets=Carrefour,Leclerc
func (h *ProductHandler) GetProducts(c *gin.Context) {
	req := CatalogRequest{
		Query:        strings.TrimSpace(c.Query("q")),
		Supermarkets: parseSupermarkets(c.Query("supermarkets")),
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	products, err := h.catalogService.FetchCatalog(c.Request.Context(), req.Query, req.Supermarkets)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	views := toViews(products)
	utils.SuccessResponse(c, gin.H{
		"products": views,
		"count":    len(views),
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.catalogService.FetchProduct(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": ProductView{
			Product:      *product,
			PriceSummary: pricing.Summarize(product.Prices),
		},
	})
}

func parseSupermarkets(csv string) []string {
	if csv == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(csv, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func respondCatalogError(c *gin.Context, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		utils.NotFoundResponse(c, "Product not found")
		return
	}

	var retrievalErr *catalog.RetrievalError
	if errors.As(err, &retrievalErr) {
		utils.BadGatewayResponse(c, "Catalog source unavailable")
		return
	}

	utils.InternalErrorResponse(c, err.Error())
}
