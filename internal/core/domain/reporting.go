package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DrawerBreakdown carries the running totals behind the drawer balance.
// Sales is the raw cash-sales subtotal, kept for display only: cash sales
// already appear in In as auto-generated ledger entries.
type DrawerBreakdown struct {
	Sales decimal.Decimal `json:"sales"`
	In    decimal.Decimal `json:"in"`
	Out   decimal.Decimal `json:"out"`
}

// DrawerBalance is the physical cash-on-hand estimate since the cutover date.
type DrawerBalance struct {
	Balance   decimal.Decimal `json:"balance"`
	Breakdown DrawerBreakdown `json:"breakdown"`
}

// PayrollSummary is the commission-payable statement for a professional over
// a period. TotalToPay may be negative when advances exceed earnings; the
// negative value is surfaced as a debt, never clamped.
type PayrollSummary struct {
	TotalCommission decimal.Decimal `json:"totalCommission"`
	TotalTips       decimal.Decimal `json:"totalTips"`
	TotalPaid       decimal.Decimal `json:"totalPaid"`
	TotalToPay      decimal.Decimal `json:"totalToPay"`
	Sales           []Sale          `json:"sales"`
	Payments        []Transaction   `json:"payments"`
}

// ProfessionalCommissionRow is one row of the per-professional commission
// aggregate shown on the dashboard.
type ProfessionalCommissionRow struct {
	ProfessionalID   string          `json:"professionalID"`
	ProfessionalName string          `json:"professionalName"`
	TotalCommission  decimal.Decimal `json:"totalCommission"`
	TotalSales       int64           `json:"totalSales"`
}

// ClientSummary aggregates the sale history of one client, grouped by
// normalized client name.
type ClientSummary struct {
	ClientName      string          `json:"clientName"`
	VisitCount      int             `json:"visitCount"`
	TotalSpent      decimal.Decimal `json:"totalSpent"`
	LastVisit       time.Time       `json:"lastVisit"`
	TopOrigin       string          `json:"topOrigin"`
	TopProfessional string          `json:"topProfessional"`
}

// VaultReport is the vault balance plus its movement history.
type VaultReport struct {
	Balance      decimal.Decimal    `json:"balance"`
	Transactions []VaultTransaction `json:"transactions"`
}
