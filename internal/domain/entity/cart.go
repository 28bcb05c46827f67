package entity

import "github.com/yudhapane/kacapos/internal/domain/pricing"

// CartLine is one cut of glass in the in-progress order. UnitPrice and
// Subtotal are derived; Subtotal carries the upward thousand-rounding.
type CartLine struct {
	ProductName string  `json:"product_name"`
	WidthCM     float64 `json:"width_cm"`
	HeightCM    float64 `json:"height_cm"`
	Quantity    int     `json:"quantity"`
	UnitPrice   int64   `json:"unit_price"`
	Subtotal    int64   `json:"subtotal"`
}

// Matches reports whether a line shares the merge identity key with the
// given product and dimensions. Dimensions compare by exact equality, no
// tolerance: a 100x50 and a 100x50.5 cut are different lines.
func (l *CartLine) Matches(productName string, widthCM, heightCM float64) bool {
	return l.ProductName == productName && l.WidthCM == widthCM && l.HeightCM == heightCM
}

// Cart is the in-progress, unpaid order for one session. Lines keep
// insertion order, which is also the order they appear on the receipt.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{Lines: []CartLine{}}
}

// AddLine merges the cut into an existing line with the same identity key or
// appends a new one. On merge the quantity accumulates and the unit price is
// recomputed from the given base price, so a line always reflects the
// current catalog.
func (c *Cart) AddLine(product *Product, widthCM, heightCM float64, quantity int, serviceFee int64) {
	unitPrice := pricing.UnitPrice(product.BasePrice, widthCM, heightCM, serviceFee)

	for i := range c.Lines {
		if c.Lines[i].Matches(product.Name, widthCM, heightCM) {
			c.Lines[i].Quantity += quantity
			c.Lines[i].UnitPrice = unitPrice
			c.Lines[i].Subtotal = pricing.Subtotal(unitPrice, c.Lines[i].Quantity)
			return
		}
	}

	c.Lines = append(c.Lines, CartLine{
		ProductName: product.Name,
		WidthCM:     widthCM,
		HeightCM:    heightCM,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    pricing.Subtotal(unitPrice, quantity),
	})
}

// RemoveLine removes the line at the given position. It reports false when
// the index is out of range; callers surface that as an error rather than
// ignoring it.
func (c *Cart) RemoveLine(index int) bool {
	if index < 0 || index >= len(c.Lines) {
		return false
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	return true
}

// Totals returns the total quantity and total amount over all lines in a
// single pass. An empty cart yields (0, 0).
func (c *Cart) Totals() (totalQty int, total int64) {
	for i := range c.Lines {
		totalQty += c.Lines[i].Quantity
		total += c.Lines[i].Subtotal
	}
	return totalQty, total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear empties the cart. Called exactly once per order, after the checkout
// has been persisted.
func (c *Cart) Clear() {
	c.Lines = c.Lines[:0]
}

// Snapshot returns a copy of the cart lines for an immutable transaction
// record. Mutating the cart afterwards does not touch the snapshot.
func (c *Cart) Snapshot() []CartLine {
	items := make([]CartLine, len(c.Lines))
	copy(items, c.Lines)
	return items
}
