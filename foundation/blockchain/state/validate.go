package state

import (
	"fmt"

	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/signature"
)

// ValidateChain walks the chain from the first block after genesis and
// rechecks every stored hash, every link to the previous block and every
// simulated signature against the registry. The first mismatch stops the
// walk and is reported with the offending block number. Balances are not
// replayed; solvency is enforced only at admission time and that weaker
// guarantee is deliberate.
func (s *State) ValidateChain() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evHandler("state: ValidateChain: started: blocks[%d]", len(s.chain))
	defer s.evHandler("state: ValidateChain: completed")

	for i := 1; i < len(s.chain); i++ {
		block := s.chain[i]
		prevBlock := s.chain[i-1]

		if block.BlockHash != block.ContentHash() {
			return &ChainError{
				Number: block.Header.Number,
				Reason: "stored hash does not match block contents",
			}
		}

		if block.Header.PrevBlockHash != prevBlock.BlockHash {
			return &ChainError{
				Number: block.Header.Number,
				Reason: "previous hash link broken",
			}
		}

		for _, tx := range block.Trans {
			fromID, ok := tx.FromID.AccountID()
			if !ok {
				continue
			}

			secret, exists := s.registry.Lookup(fromID)
			if !exists {
				return &ChainError{
					Number: block.Header.Number,
					Reason: fmt.Sprintf("unknown sender %s", fromID),
				}
			}

			if !signature.Verify(secret, tx.SignPayload(), tx.Signature) {
				return &ChainError{
					Number: block.Header.Number,
					Reason: fmt.Sprintf("invalid signature on tx %s", tx.ID),
				}
			}
		}
	}

	return nil
}
