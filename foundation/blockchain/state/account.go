package state

import (
	"fmt"

	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/database"
	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/wallet"
)

// CreateAccount mints a new account: a wallet is generated, its identity
// is registered for signature verification and the starting balance is
// credited by a mint transaction confirmed immediately in its own
// directly-sealed block. Skipping the proof of work here keeps the new
// account spendable at once; it is a bootstrap simplification, not a
// security property.
func (s *State) CreateAccount() (wallet.Wallet, error) {
	w, err := wallet.New()
	if err != nil {
		return wallet.Wallet{}, fmt.Errorf("create account: %w", err)
	}

	s.registry.Register(w.AccountID(), w.Secret())

	tx := database.NewTx(database.SystemSender(), w.AccountID(), s.genesis.MintAmount)

	s.mu.Lock()
	defer s.mu.Unlock()

	tip := s.chain[len(s.chain)-1]
	block := database.SealDirect(tip.Header.Number+1, tip.BlockHash, []database.Tx{tx})
	s.chain = append(s.chain, block)

	s.evHandler("state: CreateAccount: account[%s] minted[%d] blk[%d]", w.AccountID(), s.genesis.MintAmount, block.Header.Number)

	return w, nil
}

// Balance returns the confirmed balance for the specified account by
// scanning every sealed block. Pending transactions never affect the
// result. The balance can go negative when a mined batch confirms more
// spending than the sender held at admission time; the account is then
// unable to spend until credited. The scan is O(total confirmed
// transactions); fine at this scale, a real system would maintain a
// running balance index.
func (s *State) Balance(accountID database.AccountID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.balanceOf(accountID)
}

// AllBalances returns the confirmed balance for every registered
// account, ordered by account id.
func (s *State) AllBalances() []database.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]database.Account, 0, len(s.registry.Accounts()))
	for _, accountID := range s.registry.Accounts() {
		accounts = append(accounts, database.Account{
			AccountID: accountID,
			Balance:   s.balanceOf(accountID),
		})
	}

	return database.SortAccounts(accounts)
}

// balanceOf performs the chain scan. The arithmetic is signed so an
// over-committed batch settles below zero instead of wrapping around.
// The caller must hold the mutex.
func (s *State) balanceOf(accountID database.AccountID) int64 {
	var balance int64

	for _, block := range s.chain {
		for _, tx := range block.Trans {
			if tx.ToID == accountID {
				balance += int64(tx.Value)
			}
			if fromID, ok := tx.FromID.AccountID(); ok && fromID == accountID {
				balance -= int64(tx.Value)
			}
		}
	}

	return balance
}
