package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yudhapane/kacapos/internal/application/service"
	"github.com/yudhapane/kacapos/internal/presentation/http/dto/request"
	"github.com/yudhapane/kacapos/internal/presentation/http/dto/response"
)

// CartHandler handles cart HTTP requests for the active session
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// cartView is the cart plus its running totals.
type cartView struct {
	Lines    interface{} `json:"lines"`
	TotalQty int         `json:"total_qty"`
	Total    int64       `json:"total"`
}

// Get returns the session's cart with totals.
func (h *CartHandler) Get(c *gin.Context) {
	session := GetSession(c)
	totalQty, total := session.Cart.Totals()
	response.OK(c, "Cart retrieved successfully", cartView{
		Lines:    session.Cart.Lines,
		TotalQty: totalQty,
		Total:    total,
	})
}

// AddLine adds a glass cut to the session's cart, merging with an existing
// line for the same product and dimensions.
func (h *CartHandler) AddLine(c *gin.Context) {
	session := GetSession(c)

	var req request.AddCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.cartService.AddLine(session, &service.AddLineInput{
		ProductName: req.Product,
		WidthCM:     req.Width,
		HeightCM:    req.Height,
		Quantity:    req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	totalQty, total := cart.Totals()
	response.OK(c, "Line added to cart", cartView{
		Lines:    cart.Lines,
		TotalQty: totalQty,
		Total:    total,
	})
}

// RemoveLine removes one cart line by position.
func (h *CartHandler) RemoveLine(c *gin.Context) {
	session := GetSession(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid cart line index")
		return
	}

	cart, removeErr := h.cartService.RemoveLine(session, index)
	if removeErr != nil {
		response.Error(c, removeErr)
		return
	}

	totalQty, total := cart.Totals()
	response.OK(c, "Line removed from cart", cartView{
		Lines:    cart.Lines,
		TotalQty: totalQty,
		Total:    total,
	})
}

// Clear empties the session's cart.
func (h *CartHandler) Clear(c *gin.Context) {
	session := GetSession(c)
	h.cartService.Clear(session)
	response.NoContent(c)
}
