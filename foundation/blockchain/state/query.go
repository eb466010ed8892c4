package state

import (
	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/database"
	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/genesis"
)

// RetrieveGenesis returns the chain parameters.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}

// RetrieveLatestBlock returns the current tip of the chain.
func (s *State) RetrieveLatestBlock() database.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.chain[len(s.chain)-1]
}

// RetrieveBlocks returns a copy of the chain. The blocks themselves are
// sealed and safe to share.
func (s *State) RetrieveBlocks() []database.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	chain := make([]database.Block, len(s.chain))
	copy(chain, s.chain)
	return chain
}

// RetrieveMempool returns the pending transactions in submission order.
func (s *State) RetrieveMempool() []database.Tx {
	return s.mempool.Copy()
}

// MempoolLength returns the current length of the mempool.
func (s *State) MempoolLength() int {
	return s.mempool.Count()
}

// Registered returns the ids for every account known to the registry.
func (s *State) Registered() []database.AccountID {
	return s.registry.Accounts()
}
