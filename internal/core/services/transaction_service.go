package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopbook/shopbook_backend/internal/apperrors"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// maxListRows caps transaction listings.
const maxListRows = 100

type transactionService struct {
	txnRepo     ports.TransactionRepository
	accountRepo ports.AccountRepository
	posting     ports.PostingService
}

// NewTransactionService creates the transaction recorder.
func NewTransactionService(txnRepo ports.TransactionRepository, accountRepo ports.AccountRepository, posting ports.PostingService) ports.TransactionService {
	return &transactionService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		posting:     posting,
	}
}

var _ ports.TransactionService = (*transactionService)(nil)

// RecordTransaction derives the computed fields, runs the posting engine and
// persists the record together with its balance/denomination deltas in one
// atomic unit. Nothing is written when any step rejects.
func (s *transactionService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, actorID string) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	total := req.TotalAmount
	if total.IsZero() {
		total = req.Amount.Add(req.ServiceCharges)
	}

	profit := decimal.Zero
	if req.Type == domain.ServiceIncome {
		profit = req.SellingPrice.Sub(req.CostPrice)
	}

	// Urgent work is done on the spot, so it's recorded as completed.
	status := domain.StatusCompleted
	if req.Status == domain.StatusPending && !req.IsUrgent {
		status = domain.StatusPending
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:        uuid.NewString(),
		Type:                 req.Type,
		PaymentMode:          req.PaymentMode,
		Category:             req.Category,
		Description:          req.Description,
		ClientName:           req.ClientName,
		ClientPhone:          req.ClientPhone,
		Amount:               req.Amount,
		CostPrice:            req.CostPrice,
		SellingPrice:         req.SellingPrice,
		Profit:               profit,
		ServiceCharges:       req.ServiceCharges,
		TotalAmount:          total,
		Status:               status,
		IsUrgent:             req.IsUrgent,
		InwardAccountID:      req.InwardAccountID,
		OutwardAccountID:     req.OutwardAccountID,
		InwardDenominations:  req.InwardDenominations.Clone(),
		OutwardDenominations: req.OutwardDenominations.Clone(),
		OccurredAt:           now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.checkAccount(ctx, txn.InwardAccountID); err != nil {
		return nil, err
	}
	if err := s.checkAccount(ctx, txn.OutwardAccountID); err != nil {
		return nil, err
	}

	decision, err := s.posting.Decide(txn)
	if err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn, decision); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return &txn, nil
}

// checkAccount rejects references to missing or deactivated accounts before
// anything is written.
func (s *transactionService) checkAccount(ctx context.Context, accountID *string) error {
	if accountID == nil || *accountID == "" {
		return nil
	}
	account, err := s.accountRepo.FindAccountByID(ctx, *accountID)
	if err != nil {
		return fmt.Errorf("failed to find account %s: %w", *accountID, err)
	}
	if !account.IsActive {
		return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, *accountID)
	}
	return nil
}

// GetTransactionByID fetches one transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

// SetStatus flips the work status. Idempotent: repeating a transition leaves
// the row unchanged and never re-posts balances.
func (s *transactionService) SetStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, actorID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, status, actorID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// ListTransactions returns the newest rows matching the conjunctive filters,
// capped at 100.
func (s *transactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactions(ctx, filter, maxListRows)
}

// BulkDelete removes matching rows and reports the count. It never reverses
// postings: clearing history does not move money.
func (s *transactionService) BulkDelete(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	return s.txnRepo.DeleteTransactions(ctx, filter)
}

// HideAccountHistory hides an account's rows from its detail view while
// keeping them in aggregate reports.
func (s *transactionService) HideAccountHistory(ctx context.Context, accountID string) (int64, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return 0, err
	}
	return s.txnRepo.HideTransactionsForAccount(ctx, accountID)
}
