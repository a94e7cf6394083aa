package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/salonsync/salon_management_app/internal/core/domain"
	portsrepo "github.com/salonsync/salon_management_app/internal/core/ports/repositories"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type clientService struct {
	BaseService
	saleRepo portsrepo.SaleReader
}

// NewClientService creates the read-side client analytics service.
func NewClientService(saleRepo portsrepo.SaleReader) portssvc.ClientSvcFacade {
	return &clientService{saleRepo: saleRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// ClientSummaries groups the full sale set by normalized client name and
// returns per-client visit totals. Nothing is persisted; the aggregation is
// recomputed on every call.
func (s *clientService) ClientSummaries(ctx context.Context) ([]domain.ClientSummary, error) {
	sales, err := s.saleRepo.FindSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load sales for client summaries")
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	return AggregateClients(sales), nil
}

type clientAccumulator struct {
	displayName   string
	visitCount    int
	totalSpent    decimal.Decimal
	lastVisit     domain.Sale
	origins       *frequencyCounter
	professionals *frequencyCounter
}

// AggregateClients folds sales into per-client summaries, keyed by the
// trimmed, case-folded client name. Blank and placeholder names are skipped.
// Summaries come back in first-encountered order.
func AggregateClients(sales []domain.Sale) []domain.ClientSummary {
	byClient := map[string]*clientAccumulator{}
	order := []string{}

	for _, sale := range sales {
		key := normalizeClientName(sale.ClientName)
		if key == "" {
			continue
		}

		acc, ok := byClient[key]
		if !ok {
			acc = &clientAccumulator{
				displayName:   strings.TrimSpace(sale.ClientName),
				totalSpent:    decimal.Zero,
				lastVisit:     sale,
				origins:       newFrequencyCounter(),
				professionals: newFrequencyCounter(),
			}
			byClient[key] = acc
			order = append(order, key)
		}

		acc.visitCount++
		acc.totalSpent = acc.totalSpent.Add(sale.SalePrice).Add(sale.TipAmount)
		if sale.Date.After(acc.lastVisit.Date) {
			acc.lastVisit = sale
		}
		if origin := strings.TrimSpace(sale.ClientOrigin); origin != "" {
			acc.origins.Add(origin)
		}
		if sale.ProfessionalName != "" {
			acc.professionals.Add(sale.ProfessionalName)
		}
	}

	summaries := make([]domain.ClientSummary, 0, len(order))
	for _, key := range order {
		acc := byClient[key]
		summaries = append(summaries, domain.ClientSummary{
			ClientName:      acc.displayName,
			VisitCount:      acc.visitCount,
			TotalSpent:      acc.totalSpent,
			LastVisit:       acc.lastVisit.Date,
			TopOrigin:       acc.origins.Top(),
			TopProfessional: acc.professionals.Top(),
		})
	}
	return summaries
}

// normalizeClientName produces the grouping key. Placeholder entries used by
// walk-in sales are treated as anonymous and excluded.
func normalizeClientName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "", "-", "n/a", "cliente", "walk-in":
		return ""
	}
	return key
}

// frequencyCounter tracks occurrence counts with a stable first-encountered
// tie-break on Top.
type frequencyCounter struct {
	counts map[string]int
	order  []string
}

func newFrequencyCounter() *frequencyCounter {
	return &frequencyCounter{counts: map[string]int{}}
}

func (f *frequencyCounter) Add(value string) {
	if _, ok := f.counts[value]; !ok {
		f.order = append(f.order, value)
	}
	f.counts[value]++
}

func (f *frequencyCounter) Top() string {
	top := ""
	best := 0
	for _, value := range f.order {
		if f.counts[value] > best {
			top = value
			best = f.counts[value]
		}
	}
	return top
}
