package state

import (
	"errors"
	"fmt"
)

// Set of error variables for transaction admission and mining. All of
// them are recoverable; the caller corrects the input and retries.
var (
	// ErrUnknownSender is returned when the sending account has never
	// been registered with the ledger.
	ErrUnknownSender = errors.New("unknown sender account")

	// ErrInvalidSignature is returned when the stored signature can't be
	// reproduced from the registered secret.
	ErrInvalidSignature = errors.New("invalid transaction signature")

	// ErrInsufficientBalance is returned when the sender's confirmed
	// balance doesn't cover the transaction value.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrNoTransactions is returned when a block is requested to be
	// mined and the mempool is empty.
	ErrNoTransactions = errors.New("no transactions in mempool")
)

// ChainError reports the first block that failed chain verification.
// It signals corrupted or tampered state; the ledger does not attempt
// repair.
type ChainError struct {
	Number uint64
	Reason string
}

// Error implements the error interface.
func (ce *ChainError) Error() string {
	return fmt.Sprintf("block %d invalid: %s", ce.Number, ce.Reason)
}
