package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/salonsync/salon_management_app/internal/apperrors"
	"github.com/salonsync/salon_management_app/internal/core/domain"
	portsrepo "github.com/salonsync/salon_management_app/internal/core/ports/repositories"
	"github.com/salonsync/salon_management_app/internal/models"
)

type PgxProfessionalRepository struct {
	BaseRepository
}

func newPgxProfessionalRepository(db *pgxpool.Pool) portsrepo.ProfessionalRepositoryFacade {
	return &PgxProfessionalRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ProfessionalRepositoryFacade = (*PgxProfessionalRepository)(nil)

func toModelProfessional(d domain.Professional) models.Professional {
	return models.Professional{
		ProfessionalID:        d.ProfessionalID,
		Name:                  d.Name,
		ServiceCommissionRate: d.ServiceCommissionRate,
		ProductCommissionRate: d.ProductCommissionRate,
		Active:                d.Active,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainProfessional(m models.Professional) domain.Professional {
	return domain.Professional{
		ProfessionalID:        m.ProfessionalID,
		Name:                  m.Name,
		ServiceCommissionRate: m.ServiceCommissionRate,
		ProductCommissionRate: m.ProductCommissionRate,
		Active:                m.Active,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxProfessionalRepository) SaveProfessional(ctx context.Context, professional domain.Professional) error {
	m := toModelProfessional(professional)
	query := `
		INSERT INTO professionals (professional_id, name, service_commission_rate, product_commission_rate, active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProfessionalID,
		m.Name,
		m.ServiceCommissionRate,
		m.ProductCommissionRate,
		m.Active,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save professional: %w", err)
	}
	return nil
}

func (r *PgxProfessionalRepository) FindProfessionalByID(ctx context.Context, professionalID string) (*domain.Professional, error) {
	query := `
		SELECT professional_id, name, service_commission_rate, product_commission_rate, active, created_at, created_by, last_updated_at, last_updated_by
		FROM professionals
		WHERE professional_id = $1;
	`
	var m models.Professional
	err := r.Pool.QueryRow(ctx, query, professionalID).Scan(
		&m.ProfessionalID,
		&m.Name,
		&m.ServiceCommissionRate,
		&m.ProductCommissionRate,
		&m.Active,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find professional by ID %s: %w", professionalID, err)
	}

	d := toDomainProfessional(m)
	return &d, nil
}

func (r *PgxProfessionalRepository) FindProfessionals(ctx context.Context) ([]domain.Professional, error) {
	query := `
		SELECT professional_id, name, service_commission_rate, product_commission_rate, active, created_at, created_by, last_updated_at, last_updated_by
		FROM professionals
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query professionals: %w", err)
	}
	defer rows.Close()

	professionals := []domain.Professional{}
	for rows.Next() {
		var m models.Professional
		if err := rows.Scan(
			&m.ProfessionalID,
			&m.Name,
			&m.ServiceCommissionRate,
			&m.ProductCommissionRate,
			&m.Active,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan professional row: %w", err)
		}
		professionals = append(professionals, toDomainProfessional(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating professional rows: %w", err)
	}
	return professionals, nil
}

func (r *PgxProfessionalRepository) UpdateProfessional(ctx context.Context, professional domain.Professional) error {
	m := toModelProfessional(professional)
	query := `
		UPDATE professionals
		SET name = $2, service_commission_rate = $3, product_commission_rate = $4, active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE professional_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ProfessionalID,
		m.Name,
		m.ServiceCommissionRate,
		m.ProductCommissionRate,
		m.Active,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update professional: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProfessional removes the row. Historical sales keep their frozen
// commission amounts and simply lose the display name on joined reads.
func (r *PgxProfessionalRepository) DeleteProfessional(ctx context.Context, professionalID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM professionals WHERE professional_id = $1;`, professionalID)
	if err != nil {
		return fmt.Errorf("failed to delete professional: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
