package services

import (
	"context"

	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/salonsync/salon_management_app/internal/dto"
)

// PayrollSvcFacade is the commission-payable reconciliation engine.
type PayrollSvcFacade interface {
	// Summary computes the payable statement for a professional (or all) over
	// a fortnight. Sales are bucketed by fortnight; payments by whole month.
	Summary(ctx context.Context, query dto.PayrollQuery) (*domain.PayrollSummary, error)

	// Pay records a completed commission payment for a professional.
	Pay(ctx context.Context, req dto.PayrollPaymentRequest, creatorUserID string) (*domain.Transaction, error)

	// Advance records a completed advance against future commissions.
	Advance(ctx context.Context, req dto.PayrollPaymentRequest, creatorUserID string) (*domain.Transaction, error)
}
