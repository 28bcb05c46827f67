package request

// CheckoutRequest is the request body for finalizing the cart.
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// OwnerLoginRequest is the request body for the owner passcode gate.
type OwnerLoginRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}
