package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopbook/shopbook_backend/internal/apperrors"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/models"
	"github.com/shopbook/shopbook_backend/internal/utils/mapping"
)

const serviceColumns = `service_id, name, default_price,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxServiceRepository implements ports.ServiceRepository using pgx.
type PgxServiceRepository struct {
	BaseRepository
}

// NewPgxServiceRepository creates a new catalog repository.
func NewPgxServiceRepository(pool *pgxpool.Pool) ports.ServiceRepository {
	return &PgxServiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func (r *PgxServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	m := mapping.ToModelService(service)

	query := `
		INSERT INTO services (` + serviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.Pool.Exec(ctx, query,
		m.ServiceID, m.Name, m.DefaultPrice,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("service %q: %w", service.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save service: %w", err)
	}
	return nil
}

func (r *PgxServiceRepository) ListServices(ctx context.Context) ([]domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY name`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		m, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, mapping.ToDomainService(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate services: %w", err)
	}
	return services, nil
}

func (r *PgxServiceRepository) DeleteService(ctx context.Context, serviceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM services WHERE service_id = $1`, serviceID)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("service %s: %w", serviceID, apperrors.ErrNotFound)
	}
	return nil
}

func scanService(row pgx.Row) (models.Service, error) {
	var m models.Service
	err := row.Scan(
		&m.ServiceID, &m.Name, &m.DefaultPrice,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
