package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/dto"
	"github.com/shopbook/shopbook_backend/internal/utils/denominations"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	reportingRepo ports.ReportingRepository
	accountRepo   ports.AccountRepository
}

// NewReportingService creates the dashboard aggregator.
func NewReportingService(reportingRepo ports.ReportingRepository, accountRepo ports.AccountRepository) ports.ReportingService {
	return &reportingService{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
	}
}

var _ ports.ReportingService = (*reportingService)(nil)

// GetDashboard recomputes the whole rollup on each call. Reads are not
// isolated from concurrent postings; slightly stale numbers are acceptable.
func (s *reportingService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	today := time.Now().UTC()

	accounts, err := s.accountRepo.ListActiveAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for dashboard: %w", err)
	}

	todayIncome, err := s.reportingRepo.SumAmountForTypeOnDay(ctx, domain.ServiceIncome, today)
	if err != nil {
		return nil, err
	}
	todayExpenses, err := s.reportingRepo.SumAmountForTypeOnDay(ctx, domain.Expense, today)
	if err != nil {
		return nil, err
	}
	serviceProfit, err := s.reportingRepo.SumProfitOnDay(ctx, today)
	if err != nil {
		return nil, err
	}
	todayClients, err := s.reportingRepo.CountDistinctClientsOnDay(ctx, today)
	if err != nil {
		return nil, err
	}
	pendingCount, err := s.reportingRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	pendingBreakdown, err := s.reportingRepo.PendingBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	incomeSeries, err := s.reportingRepo.DailyIncomeSince(ctx, today.AddDate(0, 0, -6))
	if err != nil {
		return nil, err
	}
	flows, err := s.reportingRepo.DenominationFlowsOnDay(ctx, today)
	if err != nil {
		return nil, err
	}

	cashStats, err := buildCashStats(accounts, flows)
	if err != nil {
		return nil, err
	}

	chart := make([]dto.ChartPoint, len(incomeSeries))
	for i, point := range incomeSeries {
		chart[i] = dto.ChartPoint{
			Date:   point.Date.Format("2006-01-02"),
			Income: point.Income,
		}
	}

	return &dto.DashboardResponse{
		Accounts: dto.ToListAccountResponse(accounts),
		Stats: dto.DashboardStats{
			TodayIncome:      todayIncome,
			TodayClients:     todayClients,
			TodayProfit:      serviceProfit.Sub(todayExpenses),
			PendingWork:      pendingCount,
			PendingBreakdown: pendingBreakdown,
		},
		CashStats: cashStats,
		ChartData: chart,
	}, nil
}

// buildCashStats rolls up the physical cash position: the current inventory
// across cash-kind accounts plus today's note inflow/outflow.
func buildCashStats(accounts []domain.Account, flows []domain.DenominationFlow) (dto.CashStats, error) {
	totalCash := decimal.Zero
	totalCounts := make(domain.Denominations)
	var totalNotes int64

	for _, acc := range accounts {
		if !acc.Kind.IsCash() {
			continue
		}
		totalCash = totalCash.Add(acc.Balance)
		denominations.Merge(totalCounts, acc.Denominations)
		for _, count := range acc.Denominations {
			totalNotes += count
		}
	}

	inward := make(domain.Denominations)
	outward := make(domain.Denominations)
	for _, flow := range flows {
		denominations.Merge(inward, flow.Inward)
		denominations.Merge(outward, flow.Outward)
	}

	inwardTotal, err := denominations.TotalValue(inward)
	if err != nil {
		return dto.CashStats{}, err
	}
	outwardTotal, err := denominations.TotalValue(outward)
	if err != nil {
		return dto.CashStats{}, err
	}

	return dto.CashStats{
		TotalCashInHand: totalCash,
		TotalNotesCount: totalNotes,
		TotalCashCounts: totalCounts,
		TodayInward: dto.DenominationFlowSummary{
			Total:         inwardTotal,
			Denominations: inward,
		},
		TodayOutward: dto.DenominationFlowSummary{
			Total:         outwardTotal,
			Denominations: outward,
		},
	}, nil
}
