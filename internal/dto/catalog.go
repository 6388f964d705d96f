package dto

import (
	"time"

	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceRequest adds an entry to the service catalog.
type CreateServiceRequest struct {
	Name         string          `json:"name" binding:"required"`
	DefaultPrice decimal.Decimal `json:"defaultPrice"`
}

// ServiceResponse is a catalog entry as returned by the API.
type ServiceResponse struct {
	ServiceID    string          `json:"serviceID"`
	Name         string          `json:"name"`
	DefaultPrice decimal.Decimal `json:"defaultPrice"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToServiceResponse converts a domain.Service to its response DTO.
func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ServiceID:    s.ServiceID,
		Name:         s.Name,
		DefaultPrice: s.DefaultPrice,
		CreatedAt:    s.CreatedAt,
	}
}

// ToListServiceResponse converts a slice of catalog entries.
func ToListServiceResponse(services []domain.Service) []ServiceResponse {
	res := make([]ServiceResponse, len(services))
	for i := range services {
		res[i] = ToServiceResponse(&services[i])
	}
	return res
}
