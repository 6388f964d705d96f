package domain

import "github.com/shopspring/decimal"

// Service is a catalog entry: a named shop service with its default price.
type Service struct {
	ServiceID    string          `json:"serviceID"`
	Name         string          `json:"name"`
	DefaultPrice decimal.Decimal `json:"defaultPrice"`
	AuditFields
}
