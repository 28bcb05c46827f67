package service

import (
	"context"
	"fmt"
	"time"

	"github.com/yudhapane/kacapos/internal/config"
	"github.com/yudhapane/kacapos/internal/domain/entity"
	"github.com/yudhapane/kacapos/internal/domain/enum"
	"github.com/yudhapane/kacapos/internal/domain/repository"
	"github.com/yudhapane/kacapos/pkg/apperror"
	"github.com/yudhapane/kacapos/pkg/pagination"
)

// CheckoutService turns a finalized cart into an immutable transaction in
// the day ledger, and handles the owner-gated ledger mutations.
type CheckoutService struct {
	ledgerRepo    repository.LedgerRepository
	receiptPrefix string
	timeout       time.Duration
	retryBackoff  time.Duration
	now           func() time.Time
	sleep         func(time.Duration)
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(ledgerRepo repository.LedgerRepository, shop *config.ShopConfig, store *config.StoreConfig) *CheckoutService {
	return &CheckoutService{
		ledgerRepo:    ledgerRepo,
		receiptPrefix: shop.ReceiptPrefix,
		timeout:       store.Timeout,
		retryBackoff:  store.RetryBackoff,
		now:           time.Now,
		sleep:         time.Sleep,
	}
}

// ReceiptCode builds the human-readable code for the nth transaction of a
// day: prefix + yymmdd + zero-padded sequence, e.g. "KJM250831001".
func (s *CheckoutService) ReceiptCode(t time.Time, sequence int) string {
	return fmt.Sprintf("%s%s%03d", s.receiptPrefix, t.Format("060102"), sequence)
}

// Checkout records the session's cart as a paid transaction in today's
// ledger. On any failure the cart is left untouched so the cashier can retry
// or abandon; the cart is cleared only after the ledger write succeeded.
func (s *CheckoutService) Checkout(ctx context.Context, session *entity.Session, method enum.PaymentMethod) (*entity.Transaction, error) {
	if session.Cart.IsEmpty() {
		return nil, apperror.ErrEmptyCart
	}
	if !method.IsValid() {
		return nil, apperror.NewInvalidCheckoutError("Unsupported payment method: " + method.String())
	}

	now := s.now()
	dateKey := entity.DateKeyFor(now)

	txns, version, err := s.loadWithRetry(ctx, dateKey)
	if err != nil {
		// A checkout must never proceed on a failed load: it would get a
		// wrong sequence number and overwrite the day on save.
		return nil, err
	}

	totalQty, total := session.Cart.Totals()
	txn := entity.Transaction{
		SchemaVersion: entity.TransactionSchemaVersion,
		ReceiptCode:   s.ReceiptCode(now, len(txns)+1),
		Timestamp:     now,
		Items:         session.Cart.Snapshot(),
		PaymentMethod: method,
		TotalQty:      totalQty,
		Total:         total,
	}

	txns = append(txns, txn)
	if _, err := s.saveWithRetry(ctx, dateKey, txns, version); err != nil {
		return nil, err
	}

	session.Cart.Clear()
	return &txn, nil
}

// DayTransactions returns the ledger for the given date.
func (s *CheckoutService) DayTransactions(ctx context.Context, dateKey string) ([]entity.Transaction, error) {
	txns, _, err := s.loadWithRetry(ctx, dateKey)
	return txns, err
}

// FindTransaction returns the transaction with the given receipt code from
// the given day's ledger.
func (s *CheckoutService) FindTransaction(ctx context.Context, dateKey, receiptCode string) (*entity.Transaction, error) {
	txns, _, err := s.loadWithRetry(ctx, dateKey)
	if err != nil {
		return nil, err
	}
	for i := range txns {
		if txns[i].ReceiptCode == receiptCode {
			return &txns[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Transaction " + receiptCode)
}

// DeleteTransaction removes exactly the transaction with the given receipt
// code from the day's ledger, preserving the order of the rest. Owner-only;
// the handler enforces the gate.
func (s *CheckoutService) DeleteTransaction(ctx context.Context, dateKey, receiptCode string) error {
	txns, version, err := s.loadWithRetry(ctx, dateKey)
	if err != nil {
		return err
	}

	index := -1
	for i := range txns {
		if txns[i].ReceiptCode == receiptCode {
			index = i
			break
		}
	}
	if index == -1 {
		return apperror.NewNotFoundError("Transaction " + receiptCode)
	}

	txns = append(txns[:index], txns[index+1:]...)
	_, err = s.saveWithRetry(ctx, dateKey, txns, version)
	return err
}

// ListDates returns ledger date keys for history browsing, newest first.
func (s *CheckoutService) ListDates(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[string], error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	dates, total, err := s.ledgerRepo.ListDates(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(dates, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// loadWithRetry loads a day ledger with a bounded timeout, retrying once
// after a backoff when the store is unreachable.
func (s *CheckoutService) loadWithRetry(ctx context.Context, dateKey string) ([]entity.Transaction, int64, error) {
	txns, version, err := s.load(ctx, dateKey)
	if err != nil && apperror.IsStoreUnavailable(err) {
		s.sleep(s.retryBackoff)
		txns, version, err = s.load(ctx, dateKey)
	}
	return txns, version, err
}

func (s *CheckoutService) load(ctx context.Context, dateKey string) ([]entity.Transaction, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.ledgerRepo.Load(ctx, dateKey)
}

// saveWithRetry saves a day ledger with a bounded timeout, retrying once on
// store failure. A version conflict is surfaced immediately: retrying the
// same write would still be stale.
func (s *CheckoutService) saveWithRetry(ctx context.Context, dateKey string, txns []entity.Transaction, expectedVersion int64) (int64, error) {
	version, err := s.save(ctx, dateKey, txns, expectedVersion)
	if err != nil && apperror.IsStoreUnavailable(err) {
		s.sleep(s.retryBackoff)
		version, err = s.save(ctx, dateKey, txns, expectedVersion)
	}
	return version, err
}

func (s *CheckoutService) save(ctx context.Context, dateKey string, txns []entity.Transaction, expectedVersion int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.ledgerRepo.Save(ctx, dateKey, txns, expectedVersion)
}
