package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryCount is one row of the pending-work breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// DailyIncome is one point of the last-7-days income series.
type DailyIncome struct {
	Date   time.Time       `json:"date"`
	Income decimal.Decimal `json:"income"`
}

// DenominationFlow is the denomination maps of a single transaction, used by
// the dashboard to aggregate today's physical cash movement.
type DenominationFlow struct {
	Inward  Denominations
	Outward Denominations
}
