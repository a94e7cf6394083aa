package dto

import (
	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DrawerBreakdownResponse carries the running totals behind the drawer balance.
type DrawerBreakdownResponse struct {
	Sales decimal.Decimal `json:"sales"`
	In    decimal.Decimal `json:"in"`
	Out   decimal.Decimal `json:"out"`
}

// DrawerBalanceResponse is the cash-flow balance payload.
type DrawerBalanceResponse struct {
	Balance   decimal.Decimal         `json:"balance"`
	Breakdown DrawerBreakdownResponse `json:"breakdown"`
}

// ToDrawerBalanceResponse converts a domain.DrawerBalance.
func ToDrawerBalanceResponse(b *domain.DrawerBalance) DrawerBalanceResponse {
	return DrawerBalanceResponse{
		Balance: b.Balance,
		Breakdown: DrawerBreakdownResponse{
			Sales: b.Breakdown.Sales,
			In:    b.Breakdown.In,
			Out:   b.Breakdown.Out,
		},
	}
}
