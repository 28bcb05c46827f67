package service

import (
	"github.com/yudhapane/kacapos/internal/domain/entity"
	"github.com/yudhapane/kacapos/pkg/apperror"
)

// CatalogService exposes the fixed product catalog.
type CatalogService struct {
	catalog *entity.Catalog
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog *entity.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListProducts returns the catalog in listing order.
func (s *CatalogService) ListProducts() []entity.Product {
	return s.catalog.Products()
}

// FindProduct returns the named product or an invalid-input error when the
// catalog does not carry it.
func (s *CatalogService) FindProduct(name string) (*entity.Product, error) {
	p := s.catalog.Find(name)
	if p == nil {
		return nil, apperror.NewInvalidInputError("Unknown product: " + name)
	}
	return p, nil
}
