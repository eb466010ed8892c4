package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/signature"
)

// BlockHeader represents the chain-linkage information for each block.
type BlockHeader struct {
	Number        uint64 `json:"number"`          // Position in the chain, genesis is 0.
	PrevBlockHash string `json:"prev_block_hash"` // Hash of the previous block, ZeroHash for genesis.
	TimeStamp     uint64 `json:"timestamp"`       // Time the block was constructed.
	Nonce         uint64 `json:"nonce"`           // Value discovered by the proof of work search, 0 for sealed-direct blocks.
}

// Block is an ordered group of transactions chained to its predecessor.
// A block is sealed once BlockHash is fixed, either directly (genesis and
// mint blocks) or by the proof of work search. Sealed blocks are treated
// as immutable.
type Block struct {
	Header    BlockHeader
	Trans     []Tx
	BlockHash string
}

// SealDirect constructs a block on the specified tip and fixes its hash
// immediately with a zero nonce. Genesis and account-mint blocks skip the
// proof of work so their transactions are confirmed at once. That is a
// bootstrap simplification, not a security property.
func SealDirect(number uint64, prevBlockHash string, trans []Tx) Block {
	b := Block{
		Header: BlockHeader{
			Number:        number,
			PrevBlockHash: prevBlockHash,
			TimeStamp:     uint64(time.Now().UTC().Unix()),
		},
		Trans: trans,
	}

	b.BlockHash = b.ContentHash()
	return b
}

// POW constructs the next block from the specified transactions and
// searches for a nonce whose content hash carries the required number of
// leading zero hex characters. The search is unbounded in the worst case;
// callers bound it with the context.
func POW(ctx context.Context, difficulty uint, prevBlock Block, trans []Tx, ev func(v string, args ...any)) (Block, error) {
	nb := Block{
		Header: BlockHeader{
			Number:        prevBlock.Header.Number + 1,
			PrevBlockHash: prevBlock.BlockHash,
			TimeStamp:     uint64(time.Now().UTC().Unix()),
			Nonce:         0,
		},
		Trans: trans,
	}

	if err := nb.performPOW(ctx, difficulty, ev); err != nil {
		return Block{}, err
	}

	return nb, nil
}

// performPOW does the work of mining to find a valid hash for the block.
// Pointer semantics are being used since a nonce is being discovered.
func (b *Block) performPOW(ctx context.Context, difficulty uint, ev func(v string, args ...any)) error {
	ev("database: performPOW: MINING: started: difficulty[%d]", difficulty)
	defer ev("database: performPOW: MINING: completed")

	var attempts uint64
	for {
		attempts++
		if attempts%1_000_000 == 0 {
			ev("database: performPOW: MINING: attempts[%d]", attempts)
		}

		// Did the caller cancel or time out the search.
		if ctx.Err() != nil {
			ev("database: performPOW: MINING: CANCELLED")
			return ctx.Err()
		}

		// Hash the block and check if we have solved the puzzle.
		hash := b.ContentHash()
		if !isHashSolved(difficulty, hash) {
			b.Header.Nonce++
			continue
		}

		ev("database: performPOW: MINING: SOLVED: prevBlk[%s]: newBlk[%s]", b.Header.PrevBlockHash, hash)
		ev("database: performPOW: MINING: attempts[%d]: nonce[%d]", attempts, b.Header.Nonce)

		b.BlockHash = hash
		return nil
	}
}

// ContentHash computes the digest over the header fields and the ordered
// transaction payloads. Transaction order is part of the hashed data, so
// reordering transactions changes the block hash.
func (b Block) ContentHash() string {
	payloads := make([]string, len(b.Trans))
	for i, tx := range b.Trans {
		payloads[i] = tx.HashPayload()
	}

	txData, err := json.Marshal(payloads)
	if err != nil {
		return signature.ZeroHash
	}

	blockString := fmt.Sprintf("%d%s%d%s%d", b.Header.Number, b.Header.PrevBlockHash, b.Header.TimeStamp, txData, b.Header.Nonce)
	return signature.Hash(blockString)
}

// ValidateBlock checks the block's stored hash and its link to the
// specified previous block.
func (b Block) ValidateBlock(prevBlock Block) error {
	if b.BlockHash != b.ContentHash() {
		return fmt.Errorf("stored hash does not match block contents, got %s, exp %s", b.BlockHash, b.ContentHash())
	}

	if b.Header.Number != prevBlock.Header.Number+1 {
		return fmt.Errorf("this block is not the next number, got %d, exp %d", b.Header.Number, prevBlock.Header.Number+1)
	}

	if b.Header.PrevBlockHash != prevBlock.BlockHash {
		return fmt.Errorf("previous block hash doesn't match our known previous, got %s, exp %s", b.Header.PrevBlockHash, prevBlock.BlockHash)
	}

	return nil
}

// isHashSolved checks the hash to make sure it complies with the POW
// rules. We need to match a difficulty number of 0's.
func isHashSolved(difficulty uint, hash string) bool {
	const match = "00000000000000000"

	if len(hash) != 64 || difficulty >= uint(len(match)) {
		return false
	}

	return hash[:difficulty] == match[:difficulty]
}
