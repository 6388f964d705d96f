package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/dto"
)

type catalogService struct {
	serviceRepo ports.ServiceRepository
}

// NewCatalogService creates the service-catalog service.
func NewCatalogService(serviceRepo ports.ServiceRepository) ports.CatalogService {
	return &catalogService{serviceRepo: serviceRepo}
}

var _ ports.CatalogService = (*catalogService)(nil)

func (s *catalogService) CreateService(ctx context.Context, req dto.CreateServiceRequest, actorID string) (*domain.Service, error) {
	now := time.Now().UTC()
	service := domain.Service{
		ServiceID:    uuid.NewString(),
		Name:         req.Name,
		DefaultPrice: req.DefaultPrice,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.serviceRepo.SaveService(ctx, service); err != nil {
		// ErrDuplicate passes through for the handler to map to a 409.
		return nil, fmt.Errorf("failed to save service %q: %w", req.Name, err)
	}
	return &service, nil
}

func (s *catalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.serviceRepo.ListServices(ctx)
}

func (s *catalogService) DeleteService(ctx context.Context, serviceID string) error {
	return s.serviceRepo.DeleteService(ctx, serviceID)
}
