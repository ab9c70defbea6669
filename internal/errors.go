package internal

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrUnknownField    = errors.New("unknown field")
	ErrInvalidValue    = errors.New("invalid value")
	ErrOrderCompleted  = errors.New("payment order already completed")

	ErrHashMismatch          = errors.New("secure hash mismatch")
	ErrTransactionRejected   = errors.New("transaction rejected")
	ErrTransactionFailed     = errors.New("transaction failure")
	ErrMediumRiskTransaction = errors.New("medium risk transaction")
	ErrHighRiskTransaction   = errors.New("high risk transaction")
)

// RejectedError reports a non-zero processing code together with its reason.
type RejectedError struct {
	Code   string
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s (prc %s)", e.Reason, e.Code)
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrTransactionRejected
}
