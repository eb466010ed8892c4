package database_test

import (
	"context"
	"strings"
	"testing"

	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/database"
	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/signature"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

const (
	aliceSecret = "1111111111111111111111111111111111111111111111111111111111111111"
	bobSecret   = "2222222222222222222222222222222222222222222222222222222222222222"
)

func noopEv(v string, args ...any) {}

func Test_AccountID(t *testing.T) {
	t.Log("Given the need to derive and validate account ids.")
	{
		t.Logf("\tTest 0:\tWhen deriving an account id from a wallet secret.")
		{
			a1 := database.ToAccountIDFromSecret(aliceSecret)
			a2 := database.ToAccountIDFromSecret(aliceSecret)

			if a1 != a2 {
				t.Fatalf("\t%s\tTest 0:\tShould derive the same id every time: got %s and %s", failed, a1, a2)
			}
			t.Logf("\t%s\tTest 0:\tShould derive the same id every time.", success)

			if !a1.IsAccountID() {
				t.Fatalf("\t%s\tTest 0:\tShould derive a properly formatted id: got %s", failed, a1)
			}
			t.Logf("\t%s\tTest 0:\tShould derive a properly formatted id.", success)

			if a1 == database.ToAccountIDFromSecret(bobSecret) {
				t.Fatalf("\t%s\tTest 0:\tShould derive distinct ids for distinct secrets.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould derive distinct ids for distinct secrets.", success)
		}

		t.Logf("\tTest 1:\tWhen validating malformed ids.")
		{
			if _, err := database.ToAccountID("not-an-address"); err == nil {
				t.Fatalf("\t%s\tTest 1:\tShould reject a malformed id.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould reject a malformed id.", success)
		}
	}
}

func Test_Transactions(t *testing.T) {
	alice := database.ToAccountIDFromSecret(aliceSecret)
	bob := database.ToAccountIDFromSecret(bobSecret)

	t.Log("Given the need to construct, sign and hash transactions.")
	{
		t.Logf("\tTest 0:\tWhen signing a transfer.")
		{
			tx := database.NewTx(database.AccountSender(alice), bob, 4)
			signedTx := tx.Sign(aliceSecret)

			if signedTx.Signature == "" {
				t.Fatalf("\t%s\tTest 0:\tShould carry a signature after signing.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould carry a signature after signing.", success)

			if tx.SignPayload() != signedTx.SignPayload() {
				t.Fatalf("\t%s\tTest 0:\tShould keep the signature out of the signing payload.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould keep the signature out of the signing payload.", success)

			if tx.HashPayload() == signedTx.HashPayload() {
				t.Fatalf("\t%s\tTest 0:\tShould include the signature in the hashed payload.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould include the signature in the hashed payload.", success)

			if !signature.Verify(aliceSecret, signedTx.SignPayload(), signedTx.Signature) {
				t.Fatalf("\t%s\tTest 0:\tShould verify the signature with the secret.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould verify the signature with the secret.", success)
		}

		t.Logf("\tTest 1:\tWhen rendering the canonical payload.")
		{
			tx := database.NewTx(database.SystemSender(), alice, 10)

			payload := tx.SignPayload()
			if !strings.Contains(payload, `"sender":"SYSTEM"`) {
				t.Fatalf("\t%s\tTest 1:\tShould render the system sender in wire form: %s", failed, payload)
			}
			t.Logf("\t%s\tTest 1:\tShould render the system sender in wire form.", success)

			// Keys sorted by name: amount, recipient, sender, timestamp.
			if !(strings.Index(payload, `"amount"`) < strings.Index(payload, `"recipient"`) &&
				strings.Index(payload, `"recipient"`) < strings.Index(payload, `"sender"`) &&
				strings.Index(payload, `"sender"`) < strings.Index(payload, `"timestamp"`)) {
				t.Fatalf("\t%s\tTest 1:\tShould sort the payload keys by name: %s", failed, payload)
			}
			t.Logf("\t%s\tTest 1:\tShould sort the payload keys by name.", success)

			if strings.Contains(payload, tx.ID) {
				t.Fatalf("\t%s\tTest 1:\tShould keep the bookkeeping id out of the payload.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould keep the bookkeeping id out of the payload.", success)
		}
	}
}

func Test_Blocks(t *testing.T) {
	alice := database.ToAccountIDFromSecret(aliceSecret)
	bob := database.ToAccountIDFromSecret(bobSecret)

	t.Log("Given the need to seal blocks directly and by proof of work.")
	{
		t.Logf("\tTest 0:\tWhen sealing the genesis block directly.")
		{
			gen := database.SealDirect(0, signature.ZeroHash, nil)

			if gen.BlockHash != gen.ContentHash() {
				t.Fatalf("\t%s\tTest 0:\tShould fix the hash to the block contents.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould fix the hash to the block contents.", success)

			if gen.Header.Nonce != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould keep a zero nonce: got %d", failed, gen.Header.Nonce)
			}
			t.Logf("\t%s\tTest 0:\tShould keep a zero nonce.", success)
		}

		t.Logf("\tTest 1:\tWhen mining a block with difficulty 1.")
		{
			gen := database.SealDirect(0, signature.ZeroHash, nil)
			trans := []database.Tx{database.NewTx(database.AccountSender(alice), bob, 4).Sign(aliceSecret)}

			block, err := database.POW(context.Background(), 1, gen, trans, noopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to mine the block: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould be able to mine the block.", success)

			if !strings.HasPrefix(block.BlockHash, "0") {
				t.Fatalf("\t%s\tTest 1:\tShould solve the leading zero target: got %s", failed, block.BlockHash)
			}
			t.Logf("\t%s\tTest 1:\tShould solve the leading zero target.", success)

			if err := block.ValidateBlock(gen); err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould link and hash correctly: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould link and hash correctly.", success)

			if block.Header.Number != 1 {
				t.Fatalf("\t%s\tTest 1:\tShould carry the next block number: got %d", failed, block.Header.Number)
			}
			t.Logf("\t%s\tTest 1:\tShould carry the next block number.", success)
		}

		t.Logf("\tTest 2:\tWhen reordering transactions inside a block.")
		{
			tx1 := database.NewTx(database.AccountSender(alice), bob, 4).Sign(aliceSecret)
			tx2 := database.NewTx(database.AccountSender(bob), alice, 2).Sign(bobSecret)

			b := database.Block{Trans: []database.Tx{tx1, tx2}}
			h1 := b.ContentHash()

			b.Trans = []database.Tx{tx2, tx1}
			h2 := b.ContentHash()

			if h1 == h2 {
				t.Fatalf("\t%s\tTest 2:\tShould change the hash when order changes.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould change the hash when order changes.", success)
		}

		t.Logf("\tTest 3:\tWhen the mining context is already cancelled.")
		{
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			gen := database.SealDirect(0, signature.ZeroHash, nil)
			trans := []database.Tx{database.NewTx(database.AccountSender(alice), bob, 4).Sign(aliceSecret)}

			if _, err := database.POW(ctx, 16, gen, trans, noopEv); err == nil {
				t.Fatalf("\t%s\tTest 3:\tShould stop the search with an error.", failed)
			}
			t.Logf("\t%s\tTest 3:\tShould stop the search with an error.", success)
		}
	}
}
