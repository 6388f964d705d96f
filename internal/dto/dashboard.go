package dto

import (
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStats are the headline numbers for today.
type DashboardStats struct {
	TodayIncome      decimal.Decimal        `json:"todayIncome"`
	TodayClients     int64                  `json:"todayClients"`
	TodayProfit      decimal.Decimal        `json:"todayProfit"` // service profit minus today's expenses
	PendingWork      int64                  `json:"pendingWork"`
	PendingBreakdown []domain.CategoryCount `json:"pendingBreakdown"`
}

// DenominationFlowSummary totals one direction of today's physical cash movement.
type DenominationFlowSummary struct {
	Total         decimal.Decimal      `json:"total"`
	Denominations domain.Denominations `json:"denominations"`
}

// CashStats summarises the physical cash position across cash-kind accounts.
type CashStats struct {
	TotalCashInHand decimal.Decimal         `json:"totalCashInHand"`
	TotalNotesCount int64                   `json:"totalNotesCount"`
	TotalCashCounts domain.Denominations    `json:"totalCashCounts"`
	TodayInward     DenominationFlowSummary `json:"todayInward"`
	TodayOutward    DenominationFlowSummary `json:"todayOutward"`
}

// ChartPoint is one day of the income series.
type ChartPoint struct {
	Date   string          `json:"date"` // YYYY-MM-DD
	Income decimal.Decimal `json:"income"`
}

// DashboardResponse is the full rollup served by GET /dashboard.
type DashboardResponse struct {
	Accounts  []AccountResponse `json:"accounts"`
	Stats     DashboardStats    `json:"stats"`
	CashStats CashStats         `json:"cashStats"`
	ChartData []ChartPoint      `json:"chartData"`
}
