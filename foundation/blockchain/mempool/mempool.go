// Package mempool maintains the pool of transactions waiting to be
// mined. Submission order is preserved; a mined block carries the pool
// in exactly the order the transactions were accepted.
package mempool

import (
	"sync"

	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/database"
)

// Mempool represents the ordered pool of accepted, unconfirmed
// transactions.
type Mempool struct {
	mu   sync.RWMutex
	pool []database.Tx
}

// New constructs a new empty mempool.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the current number of transactions in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Add appends a transaction to the pool.
func (mp *Mempool) Add(tx database.Tx) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)
}

// Copy returns the pending transactions in submission order.
func (mp *Mempool) Copy() []database.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	cpy := make([]database.Tx, len(mp.pool))
	copy(cpy, mp.pool)
	return cpy
}

// Truncate clears the pool wholesale. This happens after a successful
// mine; there is only ever one in-flight batch.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = nil
}
