// Package wallet provides account identity support for the ledger
// simulation. A wallet holds a random secret and the address derived
// from it.
package wallet

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/database"
	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/signature"
)

// secretLength is the number of random bytes backing a wallet secret.
const secretLength = 32

// Wallet represents the identity for an account. The secret is exclusive
// to the wallet; the ledger mirrors it in its registry only so simulated
// signatures can be verified.
type Wallet struct {
	secret    string
	accountID database.AccountID
}

// New generates a wallet with a fresh random secret.
func New() (Wallet, error) {
	buf := make([]byte, secretLength)
	if _, err := rand.Read(buf); err != nil {
		return Wallet{}, fmt.Errorf("generating wallet secret: %w", err)
	}

	return FromSecret(hex.EncodeToString(buf)), nil
}

// FromSecret reconstructs the wallet for an existing secret. The address
// is a pure function of the secret.
func FromSecret(secret string) Wallet {
	return Wallet{
		secret:    secret,
		accountID: database.ToAccountIDFromSecret(secret),
	}
}

// AccountID returns the public address for the wallet.
func (w Wallet) AccountID() database.AccountID {
	return w.accountID
}

// Secret returns the wallet secret.
func (w Wallet) Secret() string {
	return w.secret
}

// Sign produces the simulated signature for the specified message.
func (w Wallet) Sign(message string) string {
	return signature.Sign(w.secret, message)
}

// String implements the fmt.Stringer interface. It never exposes the
// secret.
func (w Wallet) String() string {
	return fmt.Sprintf("Wallet(%s)", w.accountID)
}
