package entity

// SummaryGroup is one payment method's slice of a day, with its transactions
// and aggregate totals.
type SummaryGroup struct {
	Method       string        `json:"method"`
	Transactions []Transaction `json:"transactions"`
	TotalQty     int           `json:"total_qty"`
	Total        int64         `json:"total"`
}

// DailySummary aggregates one day's ledger by payment method for reporting
// and end-of-day closing. Groups come in a fixed order: Cash, Transfer, then
// any methods the current build does not know about.
type DailySummary struct {
	DateKey          string         `json:"date_key"`
	Groups           []SummaryGroup `json:"groups"`
	TransactionCount int            `json:"transaction_count"`
	TotalQty         int            `json:"total_qty"`
	Total            int64          `json:"total"`
}
