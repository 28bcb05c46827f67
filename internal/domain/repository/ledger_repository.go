package repository

import (
	"context"

	"github.com/yudhapane/kacapos/internal/domain/entity"
	"github.com/yudhapane/kacapos/pkg/pagination"
)

// LedgerRepository defines the interface for day-ledger data operations.
//
// Each calendar day is one versioned blob of transactions. Load returns the
// version that a subsequent Save must present; a Save whose version no
// longer matches fails with a conflict instead of overwriting, so two
// interleaved checkouts cannot silently drop each other's transaction.
type LedgerRepository interface {
	// Load returns the day's transactions and the current version token.
	// A day with no ledger yet yields an empty slice and version 0 with no
	// error; store failures surface as an error, never as an empty list.
	Load(ctx context.Context, dateKey string) ([]entity.Transaction, int64, error)

	// Save replaces the day's transactions, guarded by the version returned
	// from the matching Load (0 for a day with no ledger yet). It returns
	// the new version, or a conflict error when the ledger changed since
	// that Load.
	Save(ctx context.Context, dateKey string, txns []entity.Transaction, expectedVersion int64) (int64, error)

	// ListDates returns ledger date keys, newest first, for history browsing.
	ListDates(ctx context.Context, params *pagination.PaginationParams) ([]string, int64, error)
}
