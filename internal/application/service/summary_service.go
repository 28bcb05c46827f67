package service

import (
	"context"

	"github.com/yudhapane/kacapos/internal/domain/entity"
	"github.com/yudhapane/kacapos/internal/domain/enum"
)

// SummaryService aggregates a day's ledger by payment method for reporting
// and end-of-day closing.
type SummaryService struct {
	checkoutService *CheckoutService
}

// NewSummaryService creates a new summary service
func NewSummaryService(checkoutService *CheckoutService) *SummaryService {
	return &SummaryService{checkoutService: checkoutService}
}

// Summarize loads the day's ledger and groups it by payment method. Groups
// come in a fixed order: Cash, Transfer, then any method the current build
// does not recognize, in first-seen order. Unknown methods are reported, not
// dropped: an old record must still count toward the day's close.
func (s *SummaryService) Summarize(ctx context.Context, dateKey string) (*entity.DailySummary, error) {
	txns, err := s.checkoutService.DayTransactions(ctx, dateKey)
	if err != nil {
		return nil, err
	}
	return BuildSummary(dateKey, txns), nil
}

// BuildSummary groups transactions by payment method into a stable-ordered
// daily summary.
func BuildSummary(dateKey string, txns []entity.Transaction) *entity.DailySummary {
	order := make([]string, 0, len(enum.KnownMethods())+1)
	groups := make(map[string]*entity.SummaryGroup)

	for _, m := range enum.KnownMethods() {
		order = append(order, m.String())
		groups[m.String()] = &entity.SummaryGroup{Method: m.String(), Transactions: []entity.Transaction{}}
	}

	summary := &entity.DailySummary{DateKey: dateKey}

	for _, txn := range txns {
		method := txn.PaymentMethod.String()
		group, exists := groups[method]
		if !exists {
			group = &entity.SummaryGroup{Method: method, Transactions: []entity.Transaction{}}
			groups[method] = group
			order = append(order, method)
		}

		totalQty := txn.TotalQty
		if totalQty == 0 {
			for i := range txn.Items {
				totalQty += txn.Items[i].Quantity
			}
		}

		group.Transactions = append(group.Transactions, txn)
		group.TotalQty += totalQty
		group.Total += txn.Total

		summary.TransactionCount++
		summary.TotalQty += totalQty
		summary.Total += txn.Total
	}

	summary.Groups = make([]entity.SummaryGroup, 0, len(order))
	for _, method := range order {
		summary.Groups = append(summary.Groups, *groups[method])
	}
	return summary
}
