package model

// IdentityInfo is an account's on-chain identity metadata as observed at a
// block. Nil fields mean the account has cleared (or never set) that field;
// clearing is itself an observable change.
type IdentityInfo struct {
	Discord *string
	Display *string
}

// Equal reports whether both discord and display match.
func (i IdentityInfo) Equal(other IdentityInfo) bool {
	return strEqual(i.Discord, other.Discord) && strEqual(i.Display, other.Display)
}

func strEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// IdentityChange is one append-only history row: an observed change of an
// account's identity metadata at a block height.
type IdentityChange struct {
	ID              int64
	BlockHeight     uint64
	Author          string
	AuthorPublicKey string
	Discord         *string
	Display         *string
}

// Info returns the change's identity fields.
func (c IdentityChange) Info() IdentityInfo {
	return IdentityInfo{Discord: c.Discord, Display: c.Display}
}
