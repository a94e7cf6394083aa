package services

import (
	"fmt"
	"time"

	"context"

	"github.com/google/uuid"
	"github.com/salonsync/salon_management_app/internal/core/domain"
	portsrepo "github.com/salonsync/salon_management_app/internal/core/ports/repositories"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/dto"
	"github.com/salonsync/salon_management_app/internal/utils/commission"
)

type professionalService struct {
	BaseService
	professionalRepo portsrepo.ProfessionalRepositoryFacade
}

// NewProfessionalService creates a new professional service.
func NewProfessionalService(repo portsrepo.ProfessionalRepositoryFacade) portssvc.ProfessionalSvcFacade {
	return &professionalService{professionalRepo: repo}
}

var _ portssvc.ProfessionalSvcFacade = (*professionalService)(nil)

func (s *professionalService) CreateProfessional(ctx context.Context, req dto.CreateProfessionalRequest, creatorUserID string) (*domain.Professional, error) {
	if err := commission.ValidateRate(req.ServiceCommissionRate); err != nil {
		return nil, err
	}
	if err := commission.ValidateRate(req.ProductCommissionRate); err != nil {
		return nil, err
	}

	now := time.Now()
	professional := domain.Professional{
		ProfessionalID:        uuid.NewString(),
		Name:                  req.Name,
		ServiceCommissionRate: req.ServiceCommissionRate,
		ProductCommissionRate: req.ProductCommissionRate,
		Active:                true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.professionalRepo.SaveProfessional(ctx, professional); err != nil {
		s.LogError(ctx, err, "Failed to save professional")
		return nil, fmt.Errorf("failed to create professional: %w", err)
	}

	return &professional, nil
}

func (s *professionalService) GetProfessionalByID(ctx context.Context, professionalID string) (*domain.Professional, error) {
	return s.professionalRepo.FindProfessionalByID(ctx, professionalID)
}

func (s *professionalService) ListProfessionals(ctx context.Context) ([]domain.Professional, error) {
	return s.professionalRepo.FindProfessionals(ctx)
}

func (s *professionalService) UpdateProfessional(ctx context.Context, professionalID string, req dto.UpdateProfessionalRequest, updaterUserID string) (*domain.Professional, error) {
	professional, err := s.professionalRepo.FindProfessionalByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		professional.Name = *req.Name
	}
	if req.ServiceCommissionRate != nil {
		if err := commission.ValidateRate(*req.ServiceCommissionRate); err != nil {
			return nil, err
		}
		professional.ServiceCommissionRate = *req.ServiceCommissionRate
	}
	if req.ProductCommissionRate != nil {
		if err := commission.ValidateRate(*req.ProductCommissionRate); err != nil {
			return nil, err
		}
		professional.ProductCommissionRate = *req.ProductCommissionRate
	}
	if req.Active != nil {
		professional.Active = *req.Active
	}

	professional.LastUpdatedAt = time.Now()
	professional.LastUpdatedBy = updaterUserID

	// Rate edits apply to future sales only: commission amounts already
	// frozen on past sales are historical facts.
	if err := s.professionalRepo.UpdateProfessional(ctx, *professional); err != nil {
		s.LogError(ctx, err, "Failed to update professional")
		return nil, fmt.Errorf("failed to update professional: %w", err)
	}

	return professional, nil
}

func (s *professionalService) DeleteProfessional(ctx context.Context, professionalID string) error {
	return s.professionalRepo.DeleteProfessional(ctx, professionalID)
}
