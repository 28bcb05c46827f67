package entity

// ReceiptHeader holds the shop header printed at the top of a receipt.
type ReceiptHeader struct {
	ShopName string `json:"shop_name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ReceiptItem is a single glass cut line on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	WidthCM   float64 `json:"width_cm"`
	HeightCM  float64 `json:"height_cm"`
	Quantity  int     `json:"quantity"`
	UnitPrice int64   `json:"unit_price"`
	Subtotal  int64   `json:"subtotal"`
}

// Receipt is a value object representing a printable customer receipt.
// It is not persisted; it is composed from a transaction at print time.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	ReceiptCode   string        `json:"receipt_code"`
	Date          string        `json:"date"`
	PaymentMethod string        `json:"payment_method"`
	Items         []ReceiptItem `json:"items"`
	TotalQty      int           `json:"total_qty"`
	Total         int64         `json:"total"`
	Reprint       bool          `json:"reprint,omitempty"`
}
