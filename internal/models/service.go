package models

import "github.com/shopspring/decimal"

// Service represents a row of the services catalog table.
type Service struct {
	ServiceID    string          `db:"service_id"`
	Name         string          `db:"name"`
	DefaultPrice decimal.Decimal `db:"default_price"`
	AuditFields
}
