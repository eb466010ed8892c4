package database

import (
	"encoding/json"
	"time"

	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/signature"
	"github.com/google/uuid"
)

// Tx is the transactional information between two parties. Once signed,
// a transaction is never mutated; signing and sealing operate on copies.
type Tx struct {
	ID        string    `json:"id"`                  // Unique id assigned at construction, bookkeeping only.
	FromID    Sender    `json:"sender"`              // Account sending the value, or the system minting authority.
	ToID      AccountID `json:"recipient"`           // Account receiving the value.
	Value     uint64    `json:"amount"`              // Units of value being transferred.
	TimeStamp uint64    `json:"timestamp"`           // Time the transaction was constructed.
	Signature string    `json:"signature,omitempty"` // Simulated signature, empty for mint transactions.
}

// NewTx constructs a new transaction, assigning it a unique id and the
// creation time. No validation is performed here; admission checks are
// the job of the ledger state.
func NewTx(from Sender, to AccountID, value uint64) Tx {
	return Tx{
		ID:        uuid.NewString(),
		FromID:    from,
		ToID:      to,
		Value:     value,
		TimeStamp: uint64(time.Now().UTC().Unix()),
	}
}

// Sign produces a copy of the transaction carrying the simulated
// signature for the specified wallet secret.
func (tx Tx) Sign(secret string) Tx {
	tx.Signature = signature.Sign(secret, tx.SignPayload())
	return tx
}

// SignPayload returns the canonical encoding used as the signing
// message. The signature field is always excluded.
func (tx Tx) SignPayload() string {
	return tx.canonicalPayload(false)
}

// HashPayload returns the canonical encoding used for content hashing.
// The signature is included when present.
func (tx Tx) HashPayload() string {
	return tx.canonicalPayload(true)
}

// Hash returns the unique content hash for the transaction.
func (tx Tx) Hash() string {
	return signature.Hash(tx.HashPayload())
}

// canonicalPayload renders the deterministic key-sorted form of the
// transaction. Marshaling a map keeps the keys sorted by name, so the
// encoding is independent of field order. The id is bookkeeping only
// and never part of the payload.
func (tx Tx) canonicalPayload(includeSignature bool) string {
	d := map[string]any{
		"sender":    tx.FromID.String(),
		"recipient": string(tx.ToID),
		"amount":    tx.Value,
		"timestamp": tx.TimeStamp,
	}
	if includeSignature && tx.Signature != "" {
		d["signature"] = tx.Signature
	}

	data, err := json.Marshal(d)
	if err != nil {
		return signature.ZeroHash
	}

	return string(data)
}

// String implements the fmt.Stringer interface for logging.
func (tx Tx) String() string {
	return tx.FromID.String() + ":" + tx.ID
}
