// Package alphabet defines the base symbols of DNA and RNA, the per-kind
// tables that map characters to symbols and complements, and the validator
// and encoder that turn raw text into typed sequences.
package alphabet

import "fmt"

// Kind selects the alphabet a sequence is checked against.
type Kind uint8

const (
	DNA Kind = iota
	RNA
)

func (k Kind) String() string {
	switch k {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Base is one symbol of a nucleic acid sequence. The zero value is not a
// valid base.
type Base uint8

const (
	invalid Base = iota
	Adenine
	Cytosine
	Guanine
	Thymine
	Uracil
	Wildcard
)

var baseLetters = [...]byte{
	invalid:  '?',
	Adenine:  'A',
	Cytosine: 'C',
	Guanine:  'G',
	Thymine:  'T',
	Uracil:   'U',
	Wildcard: 'N',
}

// Letter returns the canonical uppercase letter for b ('?' if b is invalid).
func (b Base) Letter() byte {
	if int(b) >= len(baseLetters) {
		return '?'
	}
	return baseLetters[b]
}

func (b Base) String() string { return string(b.Letter()) }

// IsWildcard reports whether b is the ambiguous N symbol.
func (b Base) IsWildcard() bool { return b == Wildcard }

// Table is the per-kind base table: which letters are legal, which symbol
// each maps to, and what each pairs with. DNA and RNA differ only here.
type Table struct {
	kind       Kind
	symbols    [256]Base
	complement [256]byte
}

func newTable(kind Kind, pairs map[byte]byte, symbols map[byte]Base) *Table {
	t := &Table{kind: kind}
	for c, s := range symbols {
		t.symbols[c] = s
		t.symbols[c+'a'-'A'] = s
	}
	for c, p := range pairs {
		t.complement[c] = p
		t.complement[c+'a'-'A'] = p
	}
	return t
}

var (
	dnaTable = newTable(DNA,
		map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'N': 'N'},
		map[byte]Base{'A': Adenine, 'C': Cytosine, 'G': Guanine, 'T': Thymine, 'N': Wildcard},
	)
	rnaTable = newTable(RNA,
		map[byte]byte{'A': 'U', 'U': 'A', 'C': 'G', 'G': 'C', 'N': 'N'},
		map[byte]Base{'A': Adenine, 'C': Cytosine, 'G': Guanine, 'U': Uracil, 'N': Wildcard},
	)
)

// DNATable returns the table for {A,C,G,T,N}.
func DNATable() *Table { return dnaTable }

// RNATable returns the table for {A,C,G,U,N}.
func RNATable() *Table { return rnaTable }

// TableFor returns the table for kind. It panics on an unknown kind.
func TableFor(kind Kind) *Table {
	switch kind {
	case DNA:
		return dnaTable
	case RNA:
		return rnaTable
	}
	panic(&ContractViolation{Op: "TableFor", Detail: fmt.Sprintf("unknown kind %v", kind)})
}

func (t *Table) Kind() Kind { return t.kind }

// Symbol maps r (any case) to its base. ok is false for letters outside the
// table.
func (t *Table) Symbol(r rune) (Base, bool) {
	if r < 0 || r > 0xff {
		return invalid, false
	}
	s := t.symbols[r]
	return s, s != invalid
}

// Legal reports whether r belongs to the table, ignoring case.
func (t *Table) Legal(r rune) bool {
	_, ok := t.Symbol(r)
	return ok
}

// ComplementLetter returns the uppercase pairing partner of r. Letters outside
// the table yield a *ContractViolation.
func (t *Table) ComplementLetter(r rune) (rune, error) {
	if r < 0 || r > 0xff || t.complement[r] == 0 {
		return 0, &ContractViolation{
			Op:     "complement",
			Detail: fmt.Sprintf("%q is not a %v base", r, t.kind),
		}
	}
	return rune(t.complement[r]), nil
}

// ComplementSymbol returns the pairing partner of b within this table.
func (t *Table) ComplementSymbol(b Base) (Base, error) {
	c, err := t.ComplementLetter(rune(b.Letter()))
	if err != nil {
		return invalid, err
	}
	s, _ := t.Symbol(c)
	return s, nil
}

// Encode is the checked form of the package-level Encode: it maps every
// character of raw and fails on the first one outside the table.
func (t *Table) Encode(raw string) ([]Base, error) {
	out := make([]Base, 0, len(raw))
	pos := 0
	for _, r := range raw {
		s, ok := t.Symbol(r)
		if !ok {
			return nil, &ContractViolation{
				Op:     "encode",
				Detail: fmt.Sprintf("%q at %d is not a %v base", r, pos, t.kind),
			}
		}
		out = append(out, s)
		pos++
	}
	return out, nil
}
