package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/database"
	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/genesis"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_SignatureVerification(t *testing.T) {
	gen := genesis.Genesis{
		Date:       time.Now().UTC(),
		ChainID:    1,
		Difficulty: 1,
		MintAmount: 10,
	}

	st := New(Config{Genesis: gen})

	alice, err := st.CreateAccount()
	if err != nil {
		t.Fatalf("\t%s\tShould be able to create an account: %v", failed, err)
	}
	bob, err := st.CreateAccount()
	if err != nil {
		t.Fatalf("\t%s\tShould be able to create an account: %v", failed, err)
	}

	t.Log("Given the need to reject signatures that don't match the registered secret.")
	{
		t.Logf("\tTest 0:\tWhen a transaction is signed with the wrong secret.")
		{
			// Claims to be from alice but carries bob's signature.
			tx := database.NewTx(database.AccountSender(alice.AccountID()), bob.AccountID(), 1).Sign(bob.Secret())

			if err := st.validateTransaction(tx); !errors.Is(err, ErrInvalidSignature) {
				t.Fatalf("\t%s\tTest 0:\tShould reject with invalid signature: got %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould reject with invalid signature.", success)
		}

		t.Logf("\tTest 1:\tWhen a sealed block carries a forged signature.")
		{
			if _, err := st.SubmitTransaction(alice.Secret(), bob.AccountID(), 4); err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould accept the transfer: %v", failed, err)
			}

			block, err := st.MineNewBlock(context.Background())
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to mine the block: %v", failed, err)
			}

			// Swap in a signature produced with the wrong secret and
			// re-seal so the stored hash still matches the contents.
			// Only the signature check can catch this.
			n := block.Header.Number
			tampered := st.chain[n].Trans[0].Sign(bob.Secret())
			st.chain[n].Trans[0] = tampered
			st.chain[n].BlockHash = st.chain[n].ContentHash()

			err = st.ValidateChain()
			if err == nil {
				t.Fatalf("\t%s\tTest 1:\tShould detect the forged signature.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould detect the forged signature.", success)

			var ce *ChainError
			if !errors.As(err, &ce) || ce.Number != n {
				t.Fatalf("\t%s\tTest 1:\tShould report the offending block number: got %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould report the offending block number.", success)
		}
	}
}
