// internal/handlers/supermarket.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/panierprix/panier-backend/internal/catalog"
	"github.com/panierprix/panier-backend/internal/services"
	"github.com/panierprix/panier-backend/internal/utils"
)

type SupermarketHandler struct {
	catalogService *services.CatalogService
}

func NewSupermarketHandler(catalogService *services.CatalogService) *SupermarketHandler {
	return &SupermarketHandler{
		catalogService: catalogService,
	}
}

// GET /supermarkets
func (h *SupermarketHandler) GetSupermarkets(c *gin.Context) {
	supermarkets, err := h.catalogService.ListSupermarkets(c.Request.Context())
	if err != nil {
		var retrievalErr *catalog.RetrievalError
		if errors.As(err, &retrievalErr) {
			utils.BadGatewayResponse(c, "Supermarket directory unavailable")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"supermarkets": supermarkets,
	})
}
