package dto

import (
	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CommissionTotalResponse is one row of the per-professional commission aggregate.
type CommissionTotalResponse struct {
	ProfessionalID   string          `json:"professional_id"`
	ProfessionalName string          `json:"professional_name"`
	TotalCommission  decimal.Decimal `json:"total_commission"`
	TotalSales       int64           `json:"total_sales"`
}

// CommissionTotalsResponse wraps the dashboard commission aggregate.
type CommissionTotalsResponse struct {
	Commissions []CommissionTotalResponse `json:"commissions"`
}

// ToCommissionTotalsResponse converts the domain aggregate rows.
func ToCommissionTotalsResponse(rows []domain.ProfessionalCommissionRow) CommissionTotalsResponse {
	resp := CommissionTotalsResponse{Commissions: make([]CommissionTotalResponse, len(rows))}
	for i, r := range rows {
		resp.Commissions[i] = CommissionTotalResponse{
			ProfessionalID:   r.ProfessionalID,
			ProfessionalName: r.ProfessionalName,
			TotalCommission:  r.TotalCommission,
			TotalSales:       r.TotalSales,
		}
	}
	return resp
}

// ClientSummaryResponse aggregates one client's sale history.
type ClientSummaryResponse struct {
	ClientName      string          `json:"client_name"`
	VisitCount      int             `json:"visit_count"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
	LastVisit       string          `json:"last_visit"`
	TopOrigin       string          `json:"top_origin,omitempty"`
	TopProfessional string          `json:"top_professional,omitempty"`
}

// ClientSummariesResponse wraps the client analytics aggregate.
type ClientSummariesResponse struct {
	Clients []ClientSummaryResponse `json:"clients"`
}

// ToClientSummariesResponse converts the domain aggregate rows.
func ToClientSummariesResponse(rows []domain.ClientSummary) ClientSummariesResponse {
	resp := ClientSummariesResponse{Clients: make([]ClientSummaryResponse, len(rows))}
	for i, r := range rows {
		resp.Clients[i] = ClientSummaryResponse{
			ClientName:      r.ClientName,
			VisitCount:      r.VisitCount,
			TotalSpent:      r.TotalSpent,
			LastVisit:       r.LastVisit.Format("2006-01-02"),
			TopOrigin:       r.TopOrigin,
			TopProfessional: r.TopProfessional,
		}
	}
	return resp
}
