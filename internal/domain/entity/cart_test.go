package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProduct() *Product {
	return &Product{Name: "Kaca Polos 5MM", BasePrice: 190000}
}

func TestCartAddLineAppends(t *testing.T) {
	cart := NewCart()
	cart.AddLine(testProduct(), 100, 50, 2, 500)

	assert.Len(t, cart.Lines, 1)
	line := cart.Lines[0]
	assert.Equal(t, "Kaca Polos 5MM", line.ProductName)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, int64(95500), line.UnitPrice)
	assert.Equal(t, int64(191000), line.Subtotal)
}

func TestCartAddLineMergesSameCut(t *testing.T) {
	cart := NewCart()
	cart.AddLine(testProduct(), 100, 50, 1, 500)
	cart.AddLine(testProduct(), 100, 50, 2, 500)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	// subtotal recomputed from the merged quantity, not summed per add
	assert.Equal(t, int64(287000), cart.Lines[0].Subtotal)
}

func TestCartAddLineMergeEqualsSingleAdd(t *testing.T) {
	merged := NewCart()
	merged.AddLine(testProduct(), 100, 50, 1, 500)
	merged.AddLine(testProduct(), 100, 50, 2, 500)

	direct := NewCart()
	direct.AddLine(testProduct(), 100, 50, 3, 500)

	assert.Equal(t, direct.Lines, merged.Lines)
}

func TestCartAddLineDifferentDimensionsStaySeparate(t *testing.T) {
	cart := NewCart()
	cart.AddLine(testProduct(), 100, 50, 1, 500)
	cart.AddLine(testProduct(), 100, 50.5, 1, 500)

	assert.Len(t, cart.Lines, 2)
}

func TestCartAddLineDifferentProductsStaySeparate(t *testing.T) {
	cart := NewCart()
	cart.AddLine(testProduct(), 100, 50, 1, 500)
	cart.AddLine(&Product{Name: "Kaca Riben 5MM", BasePrice: 200000}, 100, 50, 1, 500)

	assert.Len(t, cart.Lines, 2)
	assert.Equal(t, "Kaca Polos 5MM", cart.Lines[0].ProductName)
	assert.Equal(t, "Kaca Riben 5MM", cart.Lines[1].ProductName)
}

func TestCartRemoveLine(t *testing.T) {
	cart := NewCart()
	cart.AddLine(testProduct(), 100, 50, 1, 500)
	cart.AddLine(testProduct(), 60, 40, 1, 500)

	assert.True(t, cart.RemoveLine(0))
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, float64(60), cart.Lines[0].WidthCM)
}

func TestCartRemoveLineOutOfRange(t *testing.T) {
	cart := NewCart()
	cart.AddLine(testProduct(), 100, 50, 1, 500)

	assert.False(t, cart.RemoveLine(-1))
	assert.False(t, cart.RemoveLine(1))
	assert.Len(t, cart.Lines, 1)
}

func TestCartTotals(t *testing.T) {
	cart := NewCart()
	cart.AddLine(testProduct(), 100, 50, 2, 500) // 191000
	cart.AddLine(testProduct(), 60, 40, 1, 500)  // unit 46100 -> 47000

	qty, total := cart.Totals()
	assert.Equal(t, 3, qty)
	assert.Equal(t, int64(238000), total)
}

func TestCartTotalsEmpty(t *testing.T) {
	cart := NewCart()
	qty, total := cart.Totals()
	assert.Zero(t, qty)
	assert.Zero(t, total)
	assert.True(t, cart.IsEmpty())
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.AddLine(testProduct(), 100, 50, 1, 500)
	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCartSnapshotIsDetached(t *testing.T) {
	cart := NewCart()
	cart.AddLine(testProduct(), 100, 50, 1, 500)

	snap := cart.Snapshot()
	cart.Clear()
	cart.AddLine(testProduct(), 20, 20, 5, 500)

	assert.Len(t, snap, 1)
	assert.Equal(t, float64(100), snap[0].WidthCM)
}
