package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopbook/shopbook_backend/internal/apperrors"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/dto"
	"github.com/shopbook/shopbook_backend/internal/handlers"
	"github.com/shopbook/shopbook_backend/internal/utils"
	"github.com/shopbook/shopbook_backend/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock TransactionService ---

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, actorID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) SetStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, actorID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, status, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) BulkDelete(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionService) HideAccountHistory(ctx context.Context, accountID string) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test setup ---

const testJWTSecret = "test-secret"

func setupRouter(t *testing.T, txnService ports.TransactionService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, dto.RegisterCustomValidators())

	cfg := &config.Config{
		JWTSecret:      testJWTSecret,
		LoginRateLimit: "10-M",
		IsProduction:   true, // skip swagger wiring
	}
	services := &ports.ServiceContainer{Transaction: txnService}

	r := gin.New()
	handlers.RegisterRoutes(r, cfg, services)
	return r
}

func authedRequest(t *testing.T, method, path string, body []byte) *http.Request {
	t.Helper()
	token, err := utils.GenerateJWT("admin-1", testJWTSecret, time.Hour, "shopbook-backend")
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func validCreateBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"type":              "deposit",
		"payment_mode":      "cash",
		"amount":            "500",
		"inward_account_id": "cash-hand",
		"inward_denominations": map[string]int64{
			"500": 1,
		},
	})
	require.NoError(t, err)
	return body
}

// --- Tests ---

func TestCreateTransaction_RequiresAuth(t *testing.T) {
	r := setupRouter(t, new(MockTransactionService))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(validCreateBody(t)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateTransaction_Success(t *testing.T) {
	mockSvc := new(MockTransactionService)
	r := setupRouter(t, mockSvc)

	want := &domain.Transaction{
		TransactionID: "txn-1",
		Type:          domain.Deposit,
		PaymentMode:   domain.ModeCash,
		Amount:        decimal.NewFromInt(500),
		TotalAmount:   decimal.NewFromInt(500),
		Status:        domain.StatusCompleted,
	}
	mockSvc.On("RecordTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest"), "admin-1").
		Return(want, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/v1/transactions", validCreateBody(t)))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "txn-1", resp.TransactionID)
	mockSvc.AssertExpectations(t)
}

func TestCreateTransaction_CashMismatchMaps400(t *testing.T) {
	mockSvc := new(MockTransactionService)
	r := setupRouter(t, mockSvc)

	mismatch := &apperrors.CashMismatchError{
		Received: decimal.NewFromInt(550),
		Returned: decimal.Zero,
		Net:      decimal.NewFromInt(550),
		Expected: decimal.NewFromInt(600),
	}
	mockSvc.On("RecordTransaction", mock.Anything, mock.Anything, "admin-1").Return(nil, mismatch).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/v1/transactions", validCreateBody(t)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// Both figures surface to the operator.
	assert.Contains(t, w.Body.String(), "550")
	assert.Contains(t, w.Body.String(), "600")
}

func TestCreateTransaction_NotFoundMaps404(t *testing.T) {
	mockSvc := new(MockTransactionService)
	r := setupRouter(t, mockSvc)

	mockSvc.On("RecordTransaction", mock.Anything, mock.Anything, "admin-1").
		Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/v1/transactions", validCreateBody(t)))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTransaction_ConflictMaps409(t *testing.T) {
	mockSvc := new(MockTransactionService)
	r := setupRouter(t, mockSvc)

	mockSvc.On("RecordTransaction", mock.Anything, mock.Anything, "admin-1").
		Return(nil, apperrors.ErrConflict).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/v1/transactions", validCreateBody(t)))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateTransaction_MalformedBodyMaps400(t *testing.T) {
	mockSvc := new(MockTransactionService)
	r := setupRouter(t, mockSvc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/v1/transactions", []byte(`{"type":"refund"`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "RecordTransaction")
}

func TestListTransactions_BadDateMaps400(t *testing.T) {
	mockSvc := new(MockTransactionService)
	r := setupRouter(t, mockSvc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/transactions?startDate=31-01-2025", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
}

func TestGetTransaction_Success(t *testing.T) {
	mockSvc := new(MockTransactionService)
	r := setupRouter(t, mockSvc)

	want := &domain.Transaction{
		TransactionID: "txn-1",
		Type:          domain.Deposit,
		PaymentMode:   domain.ModeCash,
		Amount:        decimal.NewFromInt(500),
		TotalAmount:   decimal.NewFromInt(500),
		Status:        domain.StatusCompleted,
	}
	mockSvc.On("GetTransactionByID", mock.Anything, "txn-1").Return(want, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/transactions/txn-1", nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "txn-1", resp.TransactionID)
	mockSvc.AssertExpectations(t)
}

func TestGetTransaction_NotFoundMaps404(t *testing.T) {
	mockSvc := new(MockTransactionService)
	r := setupRouter(t, mockSvc)

	mockSvc.On("GetTransactionByID", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/transactions/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBulkDelete_ReportsCount(t *testing.T) {
	mockSvc := new(MockTransactionService)
	r := setupRouter(t, mockSvc)

	mockSvc.On("BulkDelete", mock.Anything, domain.TransactionFilter{Type: domain.Expense}).
		Return(int64(4), nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(t, http.MethodDelete, "/api/v1/transactions?type=expense", nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.BulkDeleteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.Count)
}
