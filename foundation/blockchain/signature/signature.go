// Package signature provides the hashing and simulated signing support
// for the ledger.
package signature

import (
	"crypto/sha256"
	"encoding/hex"
)

// ZeroHash represents a hash code of zeros. It is the previous block
// hash carried by the genesis block.
const ZeroHash string = "0000000000000000000000000000000000000000000000000000000000000000"

// Hash returns the hex encoded sha256 digest for the specified canonical
// encoding. The digest is always 64 hex characters.
func Hash(data string) string {
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// Sign produces the simulated signature for a payload by hashing the
// wallet secret prepended to the payload. Anyone holding the secret can
// reproduce it, which is why the ledger keeps a registry of secrets for
// verification. This stands in for an asymmetric signature and carries
// none of its guarantees.
func Sign(secret string, payload string) string {
	return Hash(secret + payload)
}

// Verify recomputes the simulated signature with the specified secret
// and reports whether it matches the stored signature.
func Verify(secret string, payload string, sig string) bool {
	return Sign(secret, payload) == sig
}
