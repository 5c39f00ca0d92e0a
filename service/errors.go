package service

import (
	"errors"
	"fmt"
)

// ErrBidExceedsBalance is matched by every *BidExceedsBalanceError.
var ErrBidExceedsBalance = errors.New("lance excede o saldo devedor na contemplação")

// BidExceedsBalanceError reports an own bid larger than the corrected
// outstanding balance at contemplation.
type BidExceedsBalanceError struct {
	Bid     float64
	Balance float64
}

func (e *BidExceedsBalanceError) Error() string {
	return fmt.Sprintf("o lance com recursos próprios (R$ %.2f) não pode ser maior que o saldo devedor na contemplação (R$ %.2f)", e.Bid, e.Balance)
}

func (e *BidExceedsBalanceError) Is(target error) bool {
	return target == ErrBidExceedsBalance
}

// ValidationError wraps input validation failures.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("entrada inválida: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
