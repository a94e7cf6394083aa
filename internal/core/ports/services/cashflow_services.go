package services

import (
	"context"

	"github.com/salonsync/salon_management_app/internal/core/domain"
)

// CashFlowSvcFacade is the drawer reconciliation engine.
type CashFlowSvcFacade interface {
	// DrawerBalance computes the physical cash-on-hand estimate from ledger
	// entries dated at or after the configured cutover. Pure read, no side
	// effects.
	DrawerBalance(ctx context.Context) (*domain.DrawerBalance, error)
}
