package entity

import (
	"encoding/json"
	"time"

	"github.com/yudhapane/kacapos/internal/domain/enum"
)

// TransactionSchemaVersion is the current shape of stored transaction
// records. Version 0 records predate per-item quantity and unit price and
// are upgraded on read by Normalize.
const TransactionSchemaVersion = 2

// Transaction is a finalized, paid order. It is immutable once recorded;
// the only mutation the system allows is an owner-gated delete of the whole
// record from its day ledger.
type Transaction struct {
	SchemaVersion int                `json:"schema_version"`
	ReceiptCode   string             `json:"receipt_code"`
	Timestamp     time.Time          `json:"timestamp"`
	Items         []CartLine         `json:"items"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	TotalQty      int                `json:"total_qty"`
	Total         int64              `json:"total"`
}

// Normalize upgrades a record read from the ledger store to the current
// schema. Old records lack per-item quantity and unit price and sometimes
// the transaction-level totals; missing fields are derived rather than
// guessed at scattered call sites.
func (t *Transaction) Normalize() {
	if t.SchemaVersion >= TransactionSchemaVersion {
		return
	}

	for i := range t.Items {
		item := &t.Items[i]
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		if item.UnitPrice == 0 && item.Subtotal != 0 {
			item.UnitPrice = item.Subtotal / int64(item.Quantity)
		}
	}

	if t.TotalQty == 0 {
		for i := range t.Items {
			t.TotalQty += t.Items[i].Quantity
		}
	}
	if t.Total == 0 {
		for i := range t.Items {
			t.Total += t.Items[i].Subtotal
		}
	}

	t.SchemaVersion = TransactionSchemaVersion
}

// DayLedger is the persisted form of one calendar day's transactions: a
// single versioned JSON blob keyed by date. The version column is the
// optimistic concurrency token for read-modify-write cycles.
type DayLedger struct {
	DateKey   string    `gorm:"primaryKey;size:10" json:"date_key"`
	Version   int64     `gorm:"not null;default:0" json:"version"`
	Items     []byte    `gorm:"type:jsonb;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the DayLedger model
func (DayLedger) TableName() string {
	return "day_ledgers"
}

// Transactions decodes and normalizes the stored blob.
func (l *DayLedger) Transactions() ([]Transaction, error) {
	if len(l.Items) == 0 {
		return []Transaction{}, nil
	}
	var txns []Transaction
	if err := json.Unmarshal(l.Items, &txns); err != nil {
		return nil, err
	}
	for i := range txns {
		txns[i].Normalize()
	}
	return txns, nil
}

// DateKeyFormat is the layout of ledger date keys.
const DateKeyFormat = "2006-01-02"

// DateKeyFor derives the ledger key for a point in time.
func DateKeyFor(t time.Time) string {
	return t.Format(DateKeyFormat)
}
