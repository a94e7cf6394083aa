package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/salonsync/salon_management_app/internal/core/domain"
	portsrepo "github.com/salonsync/salon_management_app/internal/core/ports/repositories"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type cashFlowService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	saleRepo        portsrepo.SaleReader

	// cutover marks the last physical cash recount; ledger history before it
	// is ignored for drawer purposes.
	cutover time.Time
}

// NewCashFlowService creates the drawer reconciliation service. The cutover
// date comes from configuration and is fixed for the life of the service.
func NewCashFlowService(transactionRepo portsrepo.TransactionReader, saleRepo portsrepo.SaleReader, cutover time.Time) portssvc.CashFlowSvcFacade {
	return &cashFlowService{
		transactionRepo: transactionRepo,
		saleRepo:        saleRepo,
		cutover:         cutover,
	}
}

var _ portssvc.CashFlowSvcFacade = (*cashFlowService)(nil)

// DrawerBalance computes the cash-on-hand estimate since the cutover.
//
// Cash sales already appear as auto-generated IN entries, so the sales
// subtotal is reported for display but never added to the balance. Payroll
// outflows (commission payments, advances) are excluded from the OUT total:
// they are settled by bank transfer, not from the drawer. Only COMPLETED
// OUT entries count; PENDING payables have not left the drawer yet.
func (s *cashFlowService) DrawerBalance(ctx context.Context) (*domain.DrawerBalance, error) {
	transactions, err := s.transactionRepo.FindTransactionsSince(ctx, s.cutover)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for drawer balance")
		return nil, fmt.Errorf("failed to load transactions since cutover: %w", err)
	}

	totalIn, totalOut := SumDrawerTotals(transactions)

	cashSales, err := s.saleRepo.SumCashSalesSince(ctx, s.cutover)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum cash sales for drawer breakdown")
		return nil, fmt.Errorf("failed to sum cash sales since cutover: %w", err)
	}

	balance := &domain.DrawerBalance{
		Balance: totalIn.Sub(totalOut),
		Breakdown: domain.DrawerBreakdown{
			Sales: cashSales,
			In:    totalIn,
			Out:   totalOut,
		},
	}

	s.LogInfo(ctx, "Drawer balance computed",
		slog.String("balance", balance.Balance.String()),
		slog.Time("cutover", s.cutover),
	)
	return balance, nil
}

// SumDrawerTotals folds ledger entries into the drawer IN and OUT totals.
// The fold is order-independent; callers may pass entries in any order.
func SumDrawerTotals(transactions []domain.Transaction) (totalIn, totalOut decimal.Decimal) {
	totalIn = decimal.Zero
	totalOut = decimal.Zero

	for _, txn := range transactions {
		if txn.DeletedAt != nil {
			continue
		}
		switch txn.Type {
		case domain.TransactionIn:
			totalIn = totalIn.Add(txn.Amount)
		case domain.TransactionOut:
			if txn.Status != domain.StatusCompleted {
				continue
			}
			if txn.Category.IsPayroll() {
				continue
			}
			totalOut = totalOut.Add(txn.Amount)
		}
	}
	return totalIn, totalOut
}
