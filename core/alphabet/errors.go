package alphabet

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned by Validate for a zero-length sequence.
var ErrEmpty = errors.New("empty sequence")

// IllegalCharacterError reports the first character outside the alphabet.
// Pos is a 0-based character (rune) index into the raw input.
type IllegalCharacterError struct {
	Pos  int
	Char rune
	Kind Kind
}

func (e *IllegalCharacterError) Error() string {
	allowed := "A C G T N"
	if e.Kind == RNA {
		allowed = "A C G U N"
	}
	return fmt.Sprintf("invalid %v base %q at %d; allowed: %s", e.Kind, e.Char, e.Pos, allowed)
}

// ContractViolation means an internal operation received a symbol its caller
// promised could not occur. It signals a broken invariant upstream; the
// operation fails but the process does not.
type ContractViolation struct {
	Op     string
	Detail string
}

func (e *ContractViolation) Error() string {
	return "contract violation in " + e.Op + ": " + e.Detail
}
