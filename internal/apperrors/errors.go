package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the operation lost a concurrency conflict (lock
// contention on an account balance) even after retrying.
var ErrConflict = errors.New("concurrency conflict")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrCashMismatch indicates that the physical notes exchanged in a cash
// transaction do not reconcile to the expected amount.
var ErrCashMismatch = errors.New("cash reconciliation mismatch")

// AppError wraps a lower-level error with an HTTP-ish status code and a
// message safe to log. Used mainly by the repository layer.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// CashMismatchError carries the figures that failed to reconcile so the
// operator sees exactly what was compared, not a generic failure.
type CashMismatchError struct {
	Received decimal.Decimal // value of notes handed over
	Returned decimal.Decimal // value of notes given back
	Net      decimal.Decimal // the side that matters for the transaction type
	Expected decimal.Decimal
}

func (e *CashMismatchError) Error() string {
	return fmt.Sprintf("cash mismatch: received (%s) - returned (%s) nets to %s, expected %s",
		e.Received.String(), e.Returned.String(), e.Net.String(), e.Expected.String())
}

// Is lets errors.Is(err, ErrCashMismatch) match the typed error.
func (e *CashMismatchError) Is(target error) bool {
	return target == ErrCashMismatch
}
