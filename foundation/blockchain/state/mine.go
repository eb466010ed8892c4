package state

import (
	"context"
	"fmt"

	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/database"
)

// MineNewBlock packages the pending transactions, in submission order,
// into the next block and performs the proof of work search. On success
// the block is appended to the chain and the pool is cleared wholesale.
// The search can be cancelled through the context; the pending
// transactions then remain queued.
func (s *State) MineNewBlock(ctx context.Context) (database.Block, error) {
	s.evHandler("state: MineNewBlock: MINING: check mempool count")

	if s.mempool.Count() == 0 {
		return database.Block{}, ErrNoTransactions
	}

	trans := s.mempool.Copy()

	s.evHandler("state: MineNewBlock: MINING: perform POW: txs[%d]", len(trans))

	// The proof of work search runs without holding the mutex; sealed
	// blocks are immutable so reading the tip here is safe.
	block, err := database.POW(ctx, s.genesis.Difficulty, s.RetrieveLatestBlock(), trans, s.evHandler)
	if err != nil {
		return database.Block{}, err
	}

	// Just check one more time we were not cancelled.
	if ctx.Err() != nil {
		return database.Block{}, ctx.Err()
	}

	if err := s.commitBlock(block); err != nil {
		return database.Block{}, err
	}

	return block, nil
}

// commitBlock appends the mined block to the chain and clears the
// mempool. The block must extend the current tip; a block mined against
// a stale tip is rejected.
func (s *State) commitBlock(block database.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tip := s.chain[len(s.chain)-1]
	if err := block.ValidateBlock(tip); err != nil {
		return fmt.Errorf("commit block: %w", err)
	}

	s.chain = append(s.chain, block)
	s.mempool.Truncate()

	s.evHandler("state: commitBlock: blk[%d] appended: hash[%s] nonce[%d]", block.Header.Number, block.BlockHash, block.Header.Nonce)

	return nil
}
