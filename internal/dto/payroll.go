package dto

import (
	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PayrollQuery defines the payroll summary filters. Month is "YYYY-MM";
// fortnight 1 covers days 1-15, fortnight 2 days 16 to month end.
type PayrollQuery struct {
	ProfessionalID string `form:"professional_id"`
	Month          string `form:"month" binding:"required"`
	Fortnight      int    `form:"fortnight" binding:"required,oneof=1 2"`
}

// PayrollPaymentRequest defines a commission payment or an advance. The
// amount is caller-chosen and not required to match the computed payable.
type PayrollPaymentRequest struct {
	ProfessionalID string          `json:"professional_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod  string          `json:"payment_method"`
	Month          string          `json:"month"` // "YYYY-MM", used in the payment description
}

// PayrollSummaryResponse is the commission-payable statement payload.
type PayrollSummaryResponse struct {
	TotalCommission decimal.Decimal       `json:"totalCommission"`
	TotalTips       decimal.Decimal       `json:"totalTips"`
	TotalPaid       decimal.Decimal       `json:"totalPaid"`
	TotalToPay      decimal.Decimal       `json:"totalToPay"`
	Sales           []SaleResponse        `json:"sales"`
	Payments        []TransactionResponse `json:"payments"`
}

// ToPayrollSummaryResponse converts a domain.PayrollSummary.
func ToPayrollSummaryResponse(s *domain.PayrollSummary) PayrollSummaryResponse {
	resp := PayrollSummaryResponse{
		TotalCommission: s.TotalCommission,
		TotalTips:       s.TotalTips,
		TotalPaid:       s.TotalPaid,
		TotalToPay:      s.TotalToPay,
		Sales:           make([]SaleResponse, len(s.Sales)),
		Payments:        make([]TransactionResponse, len(s.Payments)),
	}
	for i := range s.Sales {
		resp.Sales[i] = ToSaleResponse(&s.Sales[i])
	}
	for i := range s.Payments {
		resp.Payments[i] = ToTransactionResponse(&s.Payments[i])
	}
	return resp
}
