package mapping

import (
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/models"
)

// ToDomainService converts a catalog row to the domain representation.
func ToDomainService(m models.Service) domain.Service {
	return domain.Service{
		ServiceID:    m.ServiceID,
		Name:         m.Name,
		DefaultPrice: m.DefaultPrice,
		AuditFields:  toDomainAuditFields(m.AuditFields),
	}
}

// ToModelService converts a domain catalog entry to its storage shape.
func ToModelService(d domain.Service) models.Service {
	return models.Service{
		ServiceID:    d.ServiceID,
		Name:         d.Name,
		DefaultPrice: d.DefaultPrice,
		AuditFields:  toModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a users row to the domain representation.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		Role:         domain.UserRole(m.Role),
		AuditFields:  toDomainAuditFields(m.AuditFields),
	}
}

// ToModelUser converts a domain user to its storage shape.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		FullName:     d.FullName,
		Role:         string(d.Role),
		AuditFields:  toModelAuditFields(d.AuditFields),
	}
}
