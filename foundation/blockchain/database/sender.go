package database

import "fmt"

// systemTag is the wire form used by the system minting authority. It is
// kept only for serialization; code switches on the Sender value, never
// on the string.
const systemTag = "SYSTEM"

// Sender identifies who originated a transaction: the system minting
// authority or a registered account. The zero value is not valid; use
// SystemSender or AccountSender.
type Sender struct {
	accountID AccountID
	system    bool
}

// SystemSender returns the sender value for mint transactions.
func SystemSender() Sender {
	return Sender{system: true}
}

// AccountSender returns the sender value for the specified account.
func AccountSender(accountID AccountID) Sender {
	return Sender{accountID: accountID}
}

// IsSystem reports whether the sender is the minting authority.
func (s Sender) IsSystem() bool {
	return s.system
}

// AccountID returns the sending account and whether one exists. Mint
// transactions have no sending account.
func (s Sender) AccountID() (AccountID, bool) {
	if s.system {
		return "", false
	}
	return s.accountID, true
}

// String implements the fmt.Stringer interface and renders the wire form.
func (s Sender) String() string {
	if s.system {
		return systemTag
	}
	return string(s.accountID)
}

// MarshalText implements the encoding.TextMarshaler interface so the
// sender appears in JSON in its wire form.
func (s Sender) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (s *Sender) UnmarshalText(data []byte) error {
	value := string(data)

	if value == systemTag {
		*s = SystemSender()
		return nil
	}

	accountID, err := ToAccountID(value)
	if err != nil {
		return fmt.Errorf("unmarshal sender: %w", err)
	}

	*s = AccountSender(accountID)
	return nil
}
