package services

import (
	"context"

	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/salonsync/salon_management_app/internal/dto"
)

// ProfessionalReaderSvc defines read operations for professionals.
type ProfessionalReaderSvc interface {
	// GetProfessionalByID retrieves a professional by ID.
	GetProfessionalByID(ctx context.Context, professionalID string) (*domain.Professional, error)

	// ListProfessionals retrieves all professionals ordered by name.
	ListProfessionals(ctx context.Context) ([]domain.Professional, error)
}

// ProfessionalWriterSvc defines write operations for professionals.
type ProfessionalWriterSvc interface {
	// CreateProfessional registers a new professional.
	CreateProfessional(ctx context.Context, req dto.CreateProfessionalRequest, creatorUserID string) (*domain.Professional, error)

	// UpdateProfessional updates an existing professional.
	UpdateProfessional(ctx context.Context, professionalID string, req dto.UpdateProfessionalRequest, updaterUserID string) (*domain.Professional, error)

	// DeleteProfessional removes a professional.
	DeleteProfessional(ctx context.Context, professionalID string) error
}

// ProfessionalSvcFacade combines all professional service interfaces.
type ProfessionalSvcFacade interface {
	ProfessionalReaderSvc
	ProfessionalWriterSvc
}
