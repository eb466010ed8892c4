package signature_test

import (
	"testing"

	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/signature"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_Hash(t *testing.T) {
	t.Log("Given the need to produce deterministic content hashes.")
	{
		t.Logf("\tTest 0:\tWhen hashing the same canonical encoding twice.")
		{
			h1 := signature.Hash(`{"amount":4}`)
			h2 := signature.Hash(`{"amount":4}`)

			if h1 != h2 {
				t.Fatalf("\t%s\tTest 0:\tShould get the same digest: got %s and %s", failed, h1, h2)
			}
			t.Logf("\t%s\tTest 0:\tShould get the same digest.", success)

			if len(h1) != 64 {
				t.Fatalf("\t%s\tTest 0:\tShould get a 64 hex character digest: got %d", failed, len(h1))
			}
			t.Logf("\t%s\tTest 0:\tShould get a 64 hex character digest.", success)
		}

		t.Logf("\tTest 1:\tWhen hashing different encodings.")
		{
			if signature.Hash(`{"amount":4}`) == signature.Hash(`{"amount":5}`) {
				t.Fatalf("\t%s\tTest 1:\tShould get different digests.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould get different digests.", success)
		}
	}
}

func Test_SignVerify(t *testing.T) {
	const secret = "aa11bb22cc33dd44ee55ff66aa77bb88cc99dd00ee11ff22aa33bb44cc55dd66"
	const payload = `{"amount":4,"recipient":"x","sender":"y","timestamp":1}`

	t.Log("Given the need to sign and verify payloads with a shared secret.")
	{
		t.Logf("\tTest 0:\tWhen the verifier holds the signing secret.")
		{
			sig := signature.Sign(secret, payload)

			if !signature.Verify(secret, payload, sig) {
				t.Fatalf("\t%s\tTest 0:\tShould verify the signature.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould verify the signature.", success)
		}

		t.Logf("\tTest 1:\tWhen the payload or secret differ.")
		{
			sig := signature.Sign(secret, payload)

			if signature.Verify(secret, payload+"x", sig) {
				t.Fatalf("\t%s\tTest 1:\tShould reject a changed payload.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould reject a changed payload.", success)

			if signature.Verify("other"+secret, payload, sig) {
				t.Fatalf("\t%s\tTest 1:\tShould reject a different secret.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould reject a different secret.", success)
		}
	}
}
