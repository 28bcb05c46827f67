package request

// AddCartLineRequest is the request body for adding a glass cut to the cart.
type AddCartLineRequest struct {
	Product  string  `json:"product" binding:"required"`
	Width    float64 `json:"width" binding:"required"`
	Height   float64 `json:"height" binding:"required"`
	Quantity int     `json:"quantity" binding:"omitempty,min=1"`
}
