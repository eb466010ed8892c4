package database

import (
	"crypto/sha256"
	"fmt"
	"sort"

	"github.com/JBennack23/IXH25-UNIPG/foundation/validate"
	"github.com/ethereum/go-ethereum/common"
)

// AccountID represents the public address for an account. It is derived
// from the wallet secret and is associated with transactions on the chain.
type AccountID string

// ToAccountID validates a hex-encoded address string and converts it to
// an account id.
func ToAccountID(value string) (AccountID, error) {
	v := struct {
		ID string `validate:"required,eth_addr"`
	}{
		ID: value,
	}

	if err := validate.Check(v); err != nil {
		return "", fmt.Errorf("account id %q is not properly formatted: %w", value, err)
	}

	return AccountID(value), nil
}

// ToAccountIDFromSecret derives the account id for a wallet secret. The
// address is the first 20 bytes of the secret's digest. Being a pure
// function of the secret, the same secret always yields the same account.
func ToAccountIDFromSecret(secret string) AccountID {
	hash := sha256.Sum256([]byte(secret))
	return AccountID(common.BytesToAddress(hash[:common.AddressLength]).String())
}

// IsAccountID verifies whether the underlying data represents a valid
// hex-encoded account address.
func (a AccountID) IsAccountID() bool {
	_, err := ToAccountID(string(a))
	return err == nil
}

// =============================================================================

// Account represents the confirmed balance for an individual account.
// The balance is signed: a block can confirm more spending than the
// sender held when several transfers were admitted against the same
// confirmed balance. A negative balance blocks all further spending.
type Account struct {
	AccountID AccountID
	Balance   int64
}

// byAccount provides sorting support by the account id value.
type byAccount []Account

func (ba byAccount) Len() int           { return len(ba) }
func (ba byAccount) Less(i, j int) bool { return ba[i].AccountID < ba[j].AccountID }
func (ba byAccount) Swap(i, j int)      { ba[i], ba[j] = ba[j], ba[i] }

// SortAccounts orders the accounts by account id for stable reporting.
func SortAccounts(accounts []Account) []Account {
	sort.Sort(byAccount(accounts))
	return accounts
}
