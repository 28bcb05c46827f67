package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/yudhapane/kacapos/internal/domain/entity"
	domainRepo "github.com/yudhapane/kacapos/internal/domain/repository"
	"github.com/yudhapane/kacapos/pkg/apperror"
	"github.com/yudhapane/kacapos/pkg/pagination"
	"gorm.io/gorm"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new day-ledger repository
func NewLedgerRepository(db *gorm.DB) domainRepo.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Load(ctx context.Context, dateKey string) ([]entity.Transaction, int64, error) {
	var ledger entity.DayLedger
	err := r.db.WithContext(ctx).First(&ledger, "date_key = ?", dateKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No ledger yet is a normal state, distinct from a store failure.
		return []entity.Transaction{}, 0, nil
	}
	if err != nil {
		log.Printf("ledger load failed (date %s): %v", dateKey, err)
		return nil, 0, apperror.ErrStoreUnavailable
	}

	txns, err := ledger.Transactions()
	if err != nil {
		log.Printf("ledger blob corrupt (date %s): %v", dateKey, err)
		return nil, 0, apperror.NewPersistenceError("Ledger record for " + dateKey + " is unreadable")
	}
	return txns, ledger.Version, nil
}

func (r *ledgerRepository) Save(ctx context.Context, dateKey string, txns []entity.Transaction, expectedVersion int64) (int64, error) {
	blob, err := json.Marshal(txns)
	if err != nil {
		return 0, apperror.NewPersistenceError("Failed to encode ledger")
	}

	if expectedVersion == 0 {
		ledger := entity.DayLedger{
			DateKey: dateKey,
			Version: 1,
			Items:   blob,
		}
		err := r.db.WithContext(ctx).Create(&ledger).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Someone created the day's ledger between our Load and Save.
			return 0, apperror.ErrConflict
		}
		if err != nil {
			log.Printf("ledger create failed (date %s): %v", dateKey, err)
			return 0, apperror.ErrStoreUnavailable
		}
		return 1, nil
	}

	newVersion := expectedVersion + 1
	res := r.db.WithContext(ctx).
		Model(&entity.DayLedger{}).
		Where("date_key = ? AND version = ?", dateKey, expectedVersion).
		Updates(map[string]interface{}{
			"items":   blob,
			"version": newVersion,
		})
	if res.Error != nil {
		log.Printf("ledger update failed (date %s): %v", dateKey, res.Error)
		return 0, apperror.ErrStoreUnavailable
	}
	if res.RowsAffected == 0 {
		return 0, apperror.ErrConflict
	}
	return newVersion, nil
}

func (r *ledgerRepository) ListDates(ctx context.Context, params *pagination.PaginationParams) ([]string, int64, error) {
	params.Validate()

	var total int64
	query := r.db.WithContext(ctx).Model(&entity.DayLedger{})
	if err := query.Count(&total).Error; err != nil {
		log.Printf("ledger date count failed: %v", err)
		return nil, 0, apperror.ErrStoreUnavailable
	}

	var dates []string
	err := query.
		Order("date_key DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Pluck("date_key", &dates).Error
	if err != nil {
		log.Printf("ledger date list failed: %v", err)
		return nil, 0, apperror.ErrStoreUnavailable
	}
	return dates, total, nil
}
