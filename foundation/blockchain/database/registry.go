package database

import "sync"

// Registry maintains the address to wallet-secret mapping the ledger
// needs to verify simulated signatures. A real system would verify an
// asymmetric signature instead and would never hold account secrets.
type Registry struct {
	mu      sync.RWMutex
	secrets map[AccountID]string
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		secrets: make(map[AccountID]string),
	}
}

// Register stores the secret for the specified account.
func (r *Registry) Register(accountID AccountID, secret string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.secrets[accountID] = secret
}

// Lookup returns the secret for the specified account and whether the
// account is known.
func (r *Registry) Lookup(accountID AccountID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	secret, exists := r.secrets[accountID]
	return secret, exists
}

// Accounts returns the set of registered account ids.
func (r *Registry) Accounts() []AccountID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]AccountID, 0, len(r.secrets))
	for accountID := range r.secrets {
		accounts = append(accounts, accountID)
	}
	return accounts
}
