// Package genesis maintains access to the chain parameters.
package genesis

import (
	"encoding/json"
	"os"
	"time"
)

// Genesis represents the fixed parameters the ledger runs with.
type Genesis struct {
	Date       time.Time `json:"date"`
	ChainID    uint16    `json:"chain_id"`    // Unique id for this running instance.
	Difficulty uint      `json:"difficulty"`  // Leading zero hex characters required of a mined block hash.
	MintAmount uint64    `json:"mint_amount"` // Units credited when an account is created.
}

// New returns the default parameters used by tests and tooling.
func New() Genesis {
	return Genesis{
		Date:       time.Now().UTC(),
		ChainID:    1,
		Difficulty: 3,
		MintAmount: 10,
	}
}

// Load opens and consumes the genesis file.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	var genesis Genesis
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}
