package state

import (
	"fmt"

	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/database"
	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/signature"
	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/wallet"
	"github.com/JBennack23/IXH25-UNIPG/foundation/validate"
)

// SubmitTransaction derives the sender from the specified secret, signs
// the transfer and validates it against the confirmed state. On success
// the transaction joins the mempool in submission order; on any failure
// the pool is untouched.
func (s *State) SubmitTransaction(senderSecret string, toID database.AccountID, value uint64) (database.Tx, error) {
	v := struct {
		ToID string `validate:"required,eth_addr"`
	}{
		ToID: string(toID),
	}
	if err := validate.Check(v); err != nil {
		return database.Tx{}, fmt.Errorf("to account is not properly formatted: %w", err)
	}

	w := wallet.FromSecret(senderSecret)
	tx := database.NewTx(database.AccountSender(w.AccountID()), toID, value).Sign(senderSecret)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateTransaction(tx); err != nil {
		s.evHandler("state: SubmitTransaction: REJECTED: tx[%s]: %s", tx, err)
		return database.Tx{}, err
	}

	s.mempool.Add(tx)
	s.evHandler("state: SubmitTransaction: accepted: tx[%s]: value[%d]", tx, value)

	return tx, nil
}

// validateTransaction applies the admission checks: mint transactions
// always pass, the sender must be registered, the signature must be
// reproducible from the registered secret and the confirmed balance must
// cover the value. The caller must hold the mutex.
func (s *State) validateTransaction(tx database.Tx) error {
	fromID, ok := tx.FromID.AccountID()
	if !ok {
		return nil
	}

	secret, exists := s.registry.Lookup(fromID)
	if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownSender, fromID)
	}

	if !signature.Verify(secret, tx.SignPayload(), tx.Signature) {
		return fmt.Errorf("%w: tx[%s]", ErrInvalidSignature, tx.ID)
	}

	// The balance is signed and the value is not; compare in uint64
	// space only once the balance is known non-negative.
	if bal := s.balanceOf(fromID); bal < 0 || uint64(bal) < tx.Value {
		return fmt.Errorf("%w: account[%s] bal[%d] needed[%d]", ErrInsufficientBalance, fromID, bal, tx.Value)
	}

	return nil
}
