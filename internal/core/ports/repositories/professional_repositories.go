package repositories

import (
	"context"

	"github.com/salonsync/salon_management_app/internal/core/domain"
)

// ProfessionalReader defines read operations for professional data.
type ProfessionalReader interface {
	// FindProfessionalByID retrieves a specific professional by ID.
	FindProfessionalByID(ctx context.Context, professionalID string) (*domain.Professional, error)

	// FindProfessionals retrieves all professionals ordered by name.
	FindProfessionals(ctx context.Context) ([]domain.Professional, error)
}

// ProfessionalWriter defines write operations for professional data.
type ProfessionalWriter interface {
	// SaveProfessional persists a new professional.
	SaveProfessional(ctx context.Context, professional domain.Professional) error

	// UpdateProfessional updates an existing professional.
	UpdateProfessional(ctx context.Context, professional domain.Professional) error
}

// ProfessionalLifecycleManager defines lifecycle operations.
type ProfessionalLifecycleManager interface {
	// DeleteProfessional removes a professional row. Sales referencing it are
	// left in place; display joins then show no name.
	DeleteProfessional(ctx context.Context, professionalID string) error
}

// ProfessionalRepositoryFacade combines all professional repository interfaces.
type ProfessionalRepositoryFacade interface {
	ProfessionalReader
	ProfessionalWriter
	ProfessionalLifecycleManager
}
