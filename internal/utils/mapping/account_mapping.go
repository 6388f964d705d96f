package mapping

import (
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/models"
)

// ToDomainAccount converts a db row to the domain representation.
func ToDomainAccount(m models.Account) (domain.Account, error) {
	denoms, err := ToDomainDenominations(m.Denominations)
	if err != nil {
		return domain.Account{}, err
	}
	return domain.Account{
		AccountID:           m.AccountID,
		Name:                m.Name,
		HolderName:          m.HolderName,
		Kind:                domain.AccountKind(m.Kind),
		Balance:             m.Balance,
		InitialBalance:      m.InitialBalance,
		LowBalanceThreshold: m.LowBalanceThreshold,
		Denominations:       denoms,
		IsActive:            m.IsActive,
		AuditFields:         toDomainAuditFields(m.AuditFields),
	}, nil
}

// ToModelAccount converts a domain account to its storage shape.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:           d.AccountID,
		Name:                d.Name,
		HolderName:          d.HolderName,
		Kind:                models.AccountKind(d.Kind),
		Balance:             d.Balance,
		InitialBalance:      d.InitialBalance,
		LowBalanceThreshold: d.LowBalanceThreshold,
		Denominations:       ToModelDenominations(d.Denominations),
		IsActive:            d.IsActive,
		AuditFields:         toModelAuditFields(d.AuditFields),
	}
}
