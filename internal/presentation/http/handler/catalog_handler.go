package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/yudhapane/kacapos/internal/application/service"
	"github.com/yudhapane/kacapos/internal/presentation/http/dto/response"
)

// CatalogHandler handles product catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List returns the fixed product catalog.
func (h *CatalogHandler) List(c *gin.Context) {
	response.OK(c, "Products retrieved successfully", h.catalogService.ListProducts())
}
