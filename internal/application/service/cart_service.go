package service

import (
	"fmt"

	"github.com/yudhapane/kacapos/internal/domain/entity"
	"github.com/yudhapane/kacapos/pkg/apperror"
)

// CartService mutates a session's in-progress order. All input validation
// happens here, before any cart state changes.
type CartService struct {
	catalogService *CatalogService
	serviceFee     int64
}

// NewCartService creates a new cart service
func NewCartService(catalogService *CatalogService, serviceFee int64) *CartService {
	return &CartService{
		catalogService: catalogService,
		serviceFee:     serviceFee,
	}
}

// AddLineInput represents one glass cut to add to the cart
type AddLineInput struct {
	ProductName string
	WidthCM     float64
	HeightCM    float64
	Quantity    int
}

// AddLine validates the cut and merges it into the session's cart. A zero
// quantity defaults to 1; dimensions must be strictly positive before the
// pricing calculator is ever invoked.
func (s *CartService) AddLine(session *entity.Session, input *AddLineInput) (*entity.Cart, error) {
	if input.WidthCM <= 0 || input.HeightCM <= 0 {
		return nil, apperror.NewInvalidInputError("Width and height must be positive")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewInvalidInputError("Quantity must be at least 1")
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	product, err := s.catalogService.FindProduct(input.ProductName)
	if err != nil {
		return nil, err
	}

	session.Cart.AddLine(product, input.WidthCM, input.HeightCM, input.Quantity, s.serviceFee)
	return session.Cart, nil
}

// RemoveLine removes the cart line at the given position. An out-of-range
// index is an error, not a silent no-op.
func (s *CartService) RemoveLine(session *entity.Session, index int) (*entity.Cart, error) {
	if !session.Cart.RemoveLine(index) {
		return nil, apperror.NewInvalidInputError(fmt.Sprintf("Cart line index %d out of range", index))
	}
	return session.Cart, nil
}

// Clear empties the session's cart.
func (s *CartService) Clear(session *entity.Session) {
	session.Cart.Clear()
}
