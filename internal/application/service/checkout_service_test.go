package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yudhapane/kacapos/internal/config"
	"github.com/yudhapane/kacapos/internal/domain/entity"
	"github.com/yudhapane/kacapos/internal/domain/enum"
	"github.com/yudhapane/kacapos/pkg/apperror"
	"github.com/yudhapane/kacapos/pkg/pagination"
)

// fakeLedgerRepo is an in-memory LedgerRepository with version bookkeeping
// and injectable failures.
type fakeLedgerRepo struct {
	mu       sync.Mutex
	txns     map[string][]entity.Transaction
	versions map[string]int64

	failLoads int // next n Load calls fail with ErrStoreUnavailable
	failSaves int // next n Save calls fail with ErrStoreUnavailable

	// bumpAfterLoad simulates a concurrent writer: the next Load returns the
	// current version but the stored version advances underneath it.
	bumpAfterLoad bool

	loadCalls int
	saveCalls int
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{
		txns:     make(map[string][]entity.Transaction),
		versions: make(map[string]int64),
	}
}

func (r *fakeLedgerRepo) Load(ctx context.Context, dateKey string) ([]entity.Transaction, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loadCalls++
	if r.failLoads > 0 {
		r.failLoads--
		return nil, 0, apperror.ErrStoreUnavailable
	}

	stored := r.txns[dateKey]
	out := make([]entity.Transaction, len(stored))
	copy(out, stored)

	version := r.versions[dateKey]
	if r.bumpAfterLoad {
		r.bumpAfterLoad = false
		r.versions[dateKey] = version + 1
	}
	return out, version, nil
}

func (r *fakeLedgerRepo) Save(ctx context.Context, dateKey string, txns []entity.Transaction, expectedVersion int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saveCalls++
	if r.failSaves > 0 {
		r.failSaves--
		return 0, apperror.ErrStoreUnavailable
	}
	if r.versions[dateKey] != expectedVersion {
		return 0, apperror.ErrConflict
	}

	stored := make([]entity.Transaction, len(txns))
	copy(stored, txns)
	r.txns[dateKey] = stored
	r.versions[dateKey] = expectedVersion + 1
	return r.versions[dateKey], nil
}

func (r *fakeLedgerRepo) ListDates(ctx context.Context, params *pagination.PaginationParams) ([]string, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dates := make([]string, 0, len(r.txns))
	for key := range r.txns {
		dates = append(dates, key)
	}
	return dates, int64(len(dates)), nil
}

func newTestCheckoutService(repo *fakeLedgerRepo) *CheckoutService {
	svc := NewCheckoutService(
		repo,
		&config.ShopConfig{ReceiptPrefix: "KJM", ServiceFee: 500},
		&config.StoreConfig{Timeout: time.Second, RetryBackoff: time.Millisecond},
	)
	svc.now = func() time.Time {
		return time.Date(2026, 1, 15, 10, 30, 0, 0, time.Local)
	}
	svc.sleep = func(time.Duration) {}
	return svc
}

func sessionWithCart(t *testing.T) *entity.Session {
	t.Helper()
	session := entity.NewSession()
	session.Cart.AddLine(&entity.Product{Name: "Kaca Polos 5MM", BasePrice: 190000}, 100, 50, 2, 500)
	return session
}

func TestCheckoutRecordsTransaction(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestCheckoutService(repo)
	session := sessionWithCart(t)

	txn, err := svc.Checkout(context.Background(), session, enum.PaymentCash)
	require.NoError(t, err)

	assert.Equal(t, "KJM260115001", txn.ReceiptCode)
	assert.Equal(t, entity.TransactionSchemaVersion, txn.SchemaVersion)
	assert.Equal(t, enum.PaymentCash, txn.PaymentMethod)
	assert.Equal(t, 2, txn.TotalQty)
	assert.Equal(t, int64(191000), txn.Total)
	assert.True(t, session.Cart.IsEmpty(), "cart cleared after successful checkout")

	stored, err := svc.DayTransactions(context.Background(), "2026-01-15")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "KJM260115001", stored[0].ReceiptCode)
}

func TestCheckoutSequenceAdvancesPerDay(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestCheckoutService(repo)

	first, err := svc.Checkout(context.Background(), sessionWithCart(t), enum.PaymentCash)
	require.NoError(t, err)
	second, err := svc.Checkout(context.Background(), sessionWithCart(t), enum.PaymentTransfer)
	require.NoError(t, err)

	assert.Equal(t, "KJM260115001", first.ReceiptCode)
	assert.Equal(t, "KJM260115002", second.ReceiptCode)
}

func TestCheckoutEmptyCart(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestCheckoutService(repo)
	session := entity.NewSession()

	_, err := svc.Checkout(context.Background(), session, enum.PaymentCash)
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
	assert.Zero(t, repo.saveCalls, "nothing persisted for an empty cart")
}

func TestCheckoutUnsupportedPaymentMethod(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestCheckoutService(repo)
	session := sessionWithCart(t)

	_, err := svc.Checkout(context.Background(), session, enum.PaymentMethod("Barter"))
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.False(t, session.Cart.IsEmpty(), "cart untouched on rejected checkout")
}

func TestCheckoutRetriesOnceOnStoreFailure(t *testing.T) {
	repo := newFakeLedgerRepo()
	repo.failLoads = 1
	svc := newTestCheckoutService(repo)
	session := sessionWithCart(t)

	txn, err := svc.Checkout(context.Background(), session, enum.PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, "KJM260115001", txn.ReceiptCode)
	assert.Equal(t, 2, repo.loadCalls)
}

func TestCheckoutFailsAfterRetryExhausted(t *testing.T) {
	repo := newFakeLedgerRepo()
	repo.failSaves = 2
	svc := newTestCheckoutService(repo)
	session := sessionWithCart(t)

	_, err := svc.Checkout(context.Background(), session, enum.PaymentCash)
	require.Error(t, err)
	assert.True(t, apperror.IsStoreUnavailable(err))
	assert.Equal(t, 2, repo.saveCalls)
	assert.False(t, session.Cart.IsEmpty(), "cart preserved so the cashier can retry")
}

func TestCheckoutConflictNotRetried(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestCheckoutService(repo)
	session := sessionWithCart(t)

	repo.bumpAfterLoad = true

	_, err := svc.Checkout(context.Background(), session, enum.PaymentCash)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	assert.Equal(t, 1, repo.saveCalls, "a stale write is not retried")
	assert.False(t, session.Cart.IsEmpty())
}

func TestReceiptCodeFormat(t *testing.T) {
	svc := newTestCheckoutService(newFakeLedgerRepo())
	ts := time.Date(2025, 8, 31, 14, 0, 0, 0, time.Local)

	assert.Equal(t, "KJM250831001", svc.ReceiptCode(ts, 1))
	assert.Equal(t, "KJM250831042", svc.ReceiptCode(ts, 42))
	assert.Equal(t, "KJM250831120", svc.ReceiptCode(ts, 120))
}

func TestFindTransaction(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestCheckoutService(repo)
	_, err := svc.Checkout(context.Background(), sessionWithCart(t), enum.PaymentCash)
	require.NoError(t, err)

	txn, err := svc.FindTransaction(context.Background(), "2026-01-15", "KJM260115001")
	require.NoError(t, err)
	assert.Equal(t, "KJM260115001", txn.ReceiptCode)

	_, err = svc.FindTransaction(context.Background(), "2026-01-15", "KJM260115999")
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteTransactionPreservesOrder(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestCheckoutService(repo)
	for i := 0; i < 3; i++ {
		_, err := svc.Checkout(context.Background(), sessionWithCart(t), enum.PaymentCash)
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteTransaction(context.Background(), "2026-01-15", "KJM260115002"))

	txns, err := svc.DayTransactions(context.Background(), "2026-01-15")
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "KJM260115001", txns[0].ReceiptCode)
	assert.Equal(t, "KJM260115003", txns[1].ReceiptCode)
}

func TestDeleteTransactionUnknownCode(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := newTestCheckoutService(repo)
	_, err := svc.Checkout(context.Background(), sessionWithCart(t), enum.PaymentCash)
	require.NoError(t, err)

	err = svc.DeleteTransaction(context.Background(), "2026-01-15", "KJM260115999")
	assert.True(t, apperror.IsNotFound(err))
}

func TestDayTransactionsEmptyDay(t *testing.T) {
	svc := newTestCheckoutService(newFakeLedgerRepo())

	txns, err := svc.DayTransactions(context.Background(), "2026-01-14")
	require.NoError(t, err)
	assert.Empty(t, txns)
}
