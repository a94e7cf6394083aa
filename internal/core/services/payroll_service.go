package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/salonsync/salon_management_app/internal/apperrors"
	"github.com/salonsync/salon_management_app/internal/core/domain"
	portsrepo "github.com/salonsync/salon_management_app/internal/core/ports/repositories"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/dto"
	"github.com/shopspring/decimal"
)

type payrollService struct {
	BaseService
	saleRepo        portsrepo.SaleReader
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewPayrollService creates the commission-payable reconciliation service.
func NewPayrollService(saleRepo portsrepo.SaleReader, transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.PayrollSvcFacade {
	return &payrollService{saleRepo: saleRepo, transactionRepo: transactionRepo}
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

// Summary computes the payable statement for a fortnight. Sales are bucketed
// by fortnight (days 1-15 vs 16-end); payments and advances are matched
// against the whole calendar month, regardless of the fortnight split. The
// month-level payment granularity is the documented product behavior, kept
// deliberately even though it is asymmetric with the sales filter.
func (s *payrollService) Summary(ctx context.Context, query dto.PayrollQuery) (*domain.PayrollSummary, error) {
	year, month, err := parseMonth(query.Month)
	if err != nil {
		return nil, err
	}
	if query.Fortnight != 1 && query.Fortnight != 2 {
		return nil, fmt.Errorf("fortnight must be 1 or 2: %w", apperrors.ErrValidation)
	}

	sales, err := s.saleRepo.FindSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load sales for payroll summary")
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	transactions, err := s.transactionRepo.FindTransactions(ctx, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for payroll summary")
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	summary := ComputePayrollSummary(sales, transactions, query.ProfessionalID, year, month, query.Fortnight)

	s.LogInfo(ctx, "Payroll summary computed",
		slog.String("professional_id", query.ProfessionalID),
		slog.String("month", query.Month),
		slog.Int("fortnight", query.Fortnight),
		slog.String("total_to_pay", summary.TotalToPay.String()),
	)
	return summary, nil
}

// ComputePayrollSummary derives the payable statement from full record sets.
// Pure function: filtering and totals only, no storage access.
func ComputePayrollSummary(sales []domain.Sale, transactions []domain.Transaction, professionalID string, year int, month time.Month, fortnight int) *domain.PayrollSummary {
	periodSales := FilterSalesForFortnight(sales, professionalID, year, month, fortnight)
	payments := FilterPayrollPayments(transactions, professionalID, year, month)

	totalCommission := decimal.Zero
	totalTips := decimal.Zero
	for _, sale := range periodSales {
		totalCommission = totalCommission.Add(sale.CommissionAmount)
		totalTips = totalTips.Add(sale.TipAmount)
	}

	totalPaid := decimal.Zero
	for _, payment := range payments {
		totalPaid = totalPaid.Add(payment.Amount)
	}

	// May go negative when advances exceed earnings; surfaced as a debt.
	totalToPay := totalCommission.Add(totalTips).Sub(totalPaid)

	return &domain.PayrollSummary{
		TotalCommission: totalCommission,
		TotalTips:       totalTips,
		TotalPaid:       totalPaid,
		TotalToPay:      totalToPay,
		Sales:           periodSales,
		Payments:        payments,
	}
}

// FilterSalesForFortnight selects the sales of one professional (or all when
// professionalID is empty) whose date falls in the given fortnight of the
// given month. Fortnight 1 covers days 1-15, fortnight 2 days 16 to month end.
func FilterSalesForFortnight(sales []domain.Sale, professionalID string, year int, month time.Month, fortnight int) []domain.Sale {
	filtered := []domain.Sale{}
	for _, sale := range sales {
		if professionalID != "" && sale.ProfessionalID != professionalID {
			continue
		}
		if sale.Date.Year() != year || sale.Date.Month() != month {
			continue
		}
		day := sale.Date.Day()
		if fortnight == 1 && day > 15 {
			continue
		}
		if fortnight == 2 && day <= 15 {
			continue
		}
		filtered = append(filtered, sale)
	}
	return filtered
}

// FilterPayrollPayments selects the completed-or-not payroll OUT entries
// (commission payments and advances) of one professional within the whole
// calendar month.
func FilterPayrollPayments(transactions []domain.Transaction, professionalID string, year int, month time.Month) []domain.Transaction {
	filtered := []domain.Transaction{}
	for _, txn := range transactions {
		if txn.DeletedAt != nil {
			continue
		}
		if txn.Type != domain.TransactionOut {
			continue
		}
		if !txn.Category.IsPayroll() {
			continue
		}
		if professionalID != "" {
			if txn.ProfessionalID == nil || *txn.ProfessionalID != professionalID {
				continue
			}
		}
		if txn.Date.Year() != year || txn.Date.Month() != month {
			continue
		}
		filtered = append(filtered, txn)
	}
	return filtered
}

// Pay records a completed commission payment for the professional. The amount
// is the caller's: it may be the computed payable or an override.
func (s *payrollService) Pay(ctx context.Context, req dto.PayrollPaymentRequest, creatorUserID string) (*domain.Transaction, error) {
	description := string(domain.CategoryCommissionPayment)
	if year, month, err := parseMonth(req.Month); err == nil {
		description = fmt.Sprintf("%s - %s", domain.CategoryCommissionPayment, time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006"))
	}
	return s.createPayrollTransaction(ctx, req, domain.CategoryCommissionPayment, description, creatorUserID)
}

// Advance records a completed advance against future commissions.
func (s *payrollService) Advance(ctx context.Context, req dto.PayrollPaymentRequest, creatorUserID string) (*domain.Transaction, error) {
	description := fmt.Sprintf("%s - %s", domain.CategoryAdvance, time.Now().Format("02/01/2006"))
	return s.createPayrollTransaction(ctx, req, domain.CategoryAdvance, description, creatorUserID)
}

func (s *payrollService) createPayrollTransaction(ctx context.Context, req dto.PayrollPaymentRequest, category domain.TransactionCategory, description, creatorUserID string) (*domain.Transaction, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("payment amount must be positive: %w", apperrors.ErrValidation)
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Transferência"
	}

	now := time.Now()
	professionalID := req.ProfessionalID
	var userID *string
	if creatorUserID != "" {
		userID = &creatorUserID
	}

	transaction := domain.Transaction{
		TransactionID:  uuid.NewString(),
		Type:           domain.TransactionOut,
		Description:    description,
		Amount:         req.Amount,
		Category:       category,
		PaymentMethod:  paymentMethod,
		Status:         domain.StatusCompleted,
		Date:           now,
		UserID:         userID,
		ProfessionalID: &professionalID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, transaction); err != nil {
		s.LogError(ctx, err, "Failed to save payroll transaction", slog.String("category", string(category)))
		return nil, fmt.Errorf("failed to save payroll transaction: %w", err)
	}

	s.LogInfo(ctx, "Payroll transaction recorded",
		slog.String("transaction_id", transaction.TransactionID),
		slog.String("category", string(category)),
		slog.String("professional_id", req.ProfessionalID),
		slog.String("amount", req.Amount.String()),
	)
	return &transaction, nil
}

// parseMonth parses a "YYYY-MM" reference month.
func parseMonth(value string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("month must be in YYYY-MM format: %w", apperrors.ErrValidation)
	}
	return t.Year(), t.Month(), nil
}
