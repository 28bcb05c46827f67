package pricing

import "math"

// RoundingStep is the currency step line subtotals are rounded up to.
// Glass shops quote in whole thousands of rupiah; rounding is always upward
// so a cut is never undercharged.
const RoundingStep = 1000

// UnitPrice computes the price of a single cut of glass.
//
// basePrice is the catalog price per square meter, widthCM and heightCM are
// the cut dimensions in centimeters, serviceFee is the fixed per-cut fee.
// The area price is floored to a whole rupiah before the fee is added; no
// thousand-rounding happens at this stage.
func UnitPrice(basePrice int64, widthCM, heightCM float64, serviceFee int64) int64 {
	areaM2 := (widthCM / 100) * (heightCM / 100)
	return int64(math.Floor(areaM2*float64(basePrice))) + serviceFee
}

// Subtotal computes a cart line subtotal: unit price times quantity, rounded
// up to the next RoundingStep. The result is always a multiple of
// RoundingStep and never less than the raw product.
func Subtotal(unitPrice int64, quantity int) int64 {
	raw := unitPrice * int64(quantity)
	return (raw + RoundingStep - 1) / RoundingStep * RoundingStep
}
