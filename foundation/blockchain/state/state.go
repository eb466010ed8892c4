// Package state is the core API for the ledger and implements all the
// business rules and processing.
package state

import (
	"sync"

	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/database"
	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/genesis"
	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/mempool"
	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/signature"
)

// EventHandler defines a function that is called when events occur in
// the processing of accounts and blocks.
type EventHandler func(v string, args ...any)

// Worker interface represents the behavior required to be implemented
// by any package providing background mining support.
type Worker interface {
	Shutdown()
	SignalStartMining()
	SignalCancelMining()
}

// =============================================================================

// Config represents the configuration required to start the ledger.
type Config struct {
	Genesis   genesis.Genesis
	EvHandler EventHandler
}

// State manages the ledger: the chain of sealed blocks, the pool of
// pending transactions and the registry used for simulated signature
// verification. Submission, mining commits and verification are mutually
// exclusive through a single mutex.
type State struct {
	mu sync.Mutex

	genesis   genesis.Genesis
	evHandler EventHandler
	chain     []database.Block
	mempool   *mempool.Mempool
	registry  *database.Registry

	Worker Worker
}

// New constructs a ledger, sealing the genesis block directly.
func New(cfg Config) *State {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	s := State{
		genesis:   cfg.Genesis,
		evHandler: ev,
		mempool:   mempool.New(),
		registry:  database.NewRegistry(),
	}

	genesisBlock := database.SealDirect(0, signature.ZeroHash, nil)
	s.chain = append(s.chain, genesisBlock)

	ev("state: New: genesis block sealed: hash[%s]", genesisBlock.BlockHash)

	// The Worker is not set here. The call to worker.Run will assign
	// itself and start the background mining support.

	return &s
}

// Shutdown cleanly brings the ledger down, stopping any background
// mining activity.
func (s *State) Shutdown() {
	if s.Worker != nil {
		s.Worker.Shutdown()
	}
}
