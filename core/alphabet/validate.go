package alphabet

// Validate checks raw against the alphabet of kind. Case is ignored; nothing
// is stripped, so whitespace, digits and punctuation are rejected.
func Validate(raw string, kind Kind) error {
	if raw == "" {
		return ErrEmpty
	}
	t := TableFor(kind)
	pos := 0
	for _, r := range raw {
		if !t.Legal(r) {
			return &IllegalCharacterError{Pos: pos, Char: r, Kind: kind}
		}
		pos++
	}
	return nil
}

// Encode maps validated input to base symbols, one per character.
//
// Callers must have run Validate first. A character outside the alphabet
// here is a programming error and panics with a *ContractViolation; use
// Table.Encode for the checked form.
func Encode(raw string, kind Kind) []Base {
	seq, err := TableFor(kind).Encode(raw)
	if err != nil {
		panic(err)
	}
	return seq
}
