package services

import (
	"context"

	"github.com/salonsync/salon_management_app/internal/core/domain"
)

// ClientSvcFacade defines read-side client analytics.
type ClientSvcFacade interface {
	// ClientSummaries groups the full sale set by normalized client name and
	// returns per-client totals. Recomputed on every call, nothing persisted.
	ClientSummaries(ctx context.Context) ([]domain.ClientSummary, error)
}
