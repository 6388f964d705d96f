package mapping

import (
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/models"
)

// ToDomainTransaction converts a db row to the domain representation.
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	inward, err := ToDomainDenominations(m.InwardDenominations)
	if err != nil {
		return domain.Transaction{}, err
	}
	outward, err := ToDomainDenominations(m.OutwardDenominations)
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		Type:                 domain.TransactionType(m.Type),
		PaymentMode:          domain.PaymentMode(m.PaymentMode),
		Category:             m.Category,
		Description:          m.Description,
		ClientName:           m.ClientName,
		ClientPhone:          m.ClientPhone,
		Amount:               m.Amount,
		CostPrice:            m.CostPrice,
		SellingPrice:         m.SellingPrice,
		Profit:               m.Profit,
		ServiceCharges:       m.ServiceCharges,
		TotalAmount:          m.TotalAmount,
		Status:               domain.TransactionStatus(m.Status),
		IsUrgent:             m.IsUrgent,
		InwardAccountID:      m.InwardAccountID,
		OutwardAccountID:     m.OutwardAccountID,
		InwardDenominations:  inward,
		OutwardDenominations: outward,
		IsHiddenFromAccount:  m.IsHiddenFromAccount,
		OccurredAt:           m.OccurredAt,
		AuditFields:          toDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainTransactionSlice converts a batch of rows, failing on the first bad row.
func ToDomainTransactionSlice(ms []models.Transaction) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ToModelTransaction converts a domain transaction to its storage shape.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:        d.TransactionID,
		Type:                 string(d.Type),
		PaymentMode:          string(d.PaymentMode),
		Category:             d.Category,
		Description:          d.Description,
		ClientName:           d.ClientName,
		ClientPhone:          d.ClientPhone,
		Amount:               d.Amount,
		CostPrice:            d.CostPrice,
		SellingPrice:         d.SellingPrice,
		Profit:               d.Profit,
		ServiceCharges:       d.ServiceCharges,
		TotalAmount:          d.TotalAmount,
		Status:               string(d.Status),
		IsUrgent:             d.IsUrgent,
		InwardAccountID:      d.InwardAccountID,
		OutwardAccountID:     d.OutwardAccountID,
		InwardDenominations:  ToModelDenominations(d.InwardDenominations),
		OutwardDenominations: ToModelDenominations(d.OutwardDenominations),
		IsHiddenFromAccount:  d.IsHiddenFromAccount,
		OccurredAt:           d.OccurredAt,
		AuditFields:          toModelAuditFields(d.AuditFields),
	}
}
