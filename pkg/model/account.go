package model

// AccountID identifies a ledger participant. Identifiers arrive
// pre-authenticated from the sequencing host and are treated as opaque by the
// ledger; the only requirement is that they are non-empty and comparable.
type AccountID string

// EmptyAccountID is the zero value of an AccountID.
const EmptyAccountID = AccountID("")

func (a AccountID) String() string {
	return string(a)
}

// Bytes returns the raw byte representation used in snapshots.
func (a AccountID) Bytes() []byte {
	return []byte(a)
}

// AccountIDFromBytes restores an AccountID from its snapshot representation.
func AccountIDFromBytes(b []byte) AccountID {
	return AccountID(b)
}

// IsEmpty returns true if the AccountID carries no identifier.
func (a AccountID) IsEmpty() bool {
	return a == EmptyAccountID
}
