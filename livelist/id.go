package livelist

import (
	"github.com/oklog/ulid/v2"
)

// ID identifies one element of a live list for as long as it is in the list.
// IDs are minted in increasing order and never reused. The zero ID means "no
// predecessor" and is never minted.
type ID [16]byte

func NewID() ID {
	return ID(ulid.Make())
}

func (id ID) IsZero() bool {
	return id == ID{}
}

func (id ID) Compare(other ID) int {
	return ulid.ULID(id).Compare(ulid.ULID(other))
}

func (id ID) String() string {
	if id.IsZero() {
		return "<head>"
	}
	return ulid.ULID(id).String()
}
