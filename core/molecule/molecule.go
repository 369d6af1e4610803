// Package molecule holds the DNA and RNA types. Both are thin wrappers around
// one shared strand implementation; each supplies only its alphabet table.
//
// Strand orientation: the stored sequence is the top strand read 5'→3'. The
// bottom strand is its complement read antiparallel, so the bottom 5' end
// pairs with the top 3' end and vice versa.
package molecule

import (
	"strings"

	"nucleo-core/alphabet"
)

// NucleicAcid is the capability shared by DNA and RNA.
type NucleicAcid interface {
	Name() string
	Kind() alphabet.Kind
	Shape() Shape
	Len() int
	RawSequence() string
	Sequence() []alphabet.Base

	// EncodeSequence maps raw with this molecule's alphabet.
	EncodeSequence(raw string) ([]alphabet.Base, error)
	// ComplementBase returns the uppercase pairing partner of r.
	ComplementBase(r rune) (rune, error)
	// ComplementRawSequence complements every character of the raw
	// sequence, position for position, in uppercase.
	ComplementRawSequence() (string, error)

	FivePrimeTop() alphabet.Base
	ThreePrimeTop() alphabet.Base
	FivePrimeBottom() (alphabet.Base, error)
	ThreePrimeBottom() (alphabet.Base, error)
}

type strand struct {
	name  string
	raw   string
	seq   []alphabet.Base
	shape Shape
	table *alphabet.Table
}

func newStrand(table *alphabet.Table, name, raw string, shape Shape, opts []Option) (strand, error) {
	o := collect(opts)
	kind := table.Kind()
	if err := alphabet.Validate(raw, kind); err != nil {
		if o.observer != nil {
			o.observer.Rejected(kind, name, err)
		}
		return strand{}, err
	}
	s := strand{
		name:  name,
		raw:   raw,
		seq:   alphabet.Encode(raw, kind),
		shape: shape,
		table: table,
	}
	if o.observer != nil {
		o.observer.Created(kind, name, len(s.seq))
	}
	return s, nil
}

func (s *strand) Name() string        { return s.name }
func (s *strand) Kind() alphabet.Kind { return s.table.Kind() }
func (s *strand) Shape() Shape        { return s.shape }
func (s *strand) Len() int            { return len(s.seq) }
func (s *strand) RawSequence() string { return s.raw }

// Sequence returns a copy of the encoded symbols.
func (s *strand) Sequence() []alphabet.Base {
	return append([]alphabet.Base(nil), s.seq...)
}

// SetShape changes the topology. The sequence is untouched.
func (s *strand) SetShape(shape Shape) { s.shape = shape }

func (s *strand) EncodeSequence(raw string) ([]alphabet.Base, error) {
	return s.table.Encode(raw)
}

func (s *strand) ComplementBase(r rune) (rune, error) {
	return s.table.ComplementLetter(r)
}

func (s *strand) ComplementRawSequence() (string, error) {
	var b strings.Builder
	b.Grow(len(s.raw))
	for _, r := range s.raw {
		c, err := s.table.ComplementLetter(r)
		if err != nil {
			return "", err
		}
		b.WriteRune(c)
	}
	return b.String(), nil
}

func (s *strand) FivePrimeTop() alphabet.Base  { return s.seq[0] }
func (s *strand) ThreePrimeTop() alphabet.Base { return s.seq[len(s.seq)-1] }

// FivePrimeBottom is the complement of the top strand's 3' base.
func (s *strand) FivePrimeBottom() (alphabet.Base, error) {
	return s.bottomAt(len(s.raw) - 1)
}

// ThreePrimeBottom is the complement of the top strand's 5' base.
func (s *strand) ThreePrimeBottom() (alphabet.Base, error) {
	return s.bottomAt(0)
}

func (s *strand) bottomAt(i int) (alphabet.Base, error) {
	comp, err := s.ComplementRawSequence()
	if err != nil {
		return 0, err
	}
	b, err := s.table.Encode(comp[i : i+1])
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// DNA is a validated deoxyribonucleic acid strand over {A,C,G,T,N}.
type DNA struct{ strand }

// NewDNA validates raw and builds a DNA molecule. On failure it returns
// alphabet.ErrEmpty or an *alphabet.IllegalCharacterError and no molecule.
func NewDNA(name, raw string, shape Shape, opts ...Option) (*DNA, error) {
	s, err := newStrand(alphabet.DNATable(), name, raw, shape, opts)
	if err != nil {
		return nil, err
	}
	return &DNA{s}, nil
}

// RNA is a validated ribonucleic acid strand over {A,C,G,U,N}.
type RNA struct{ strand }

// NewRNA validates raw and builds an RNA molecule.
func NewRNA(name, raw string, shape Shape, opts ...Option) (*RNA, error) {
	s, err := newStrand(alphabet.RNATable(), name, raw, shape, opts)
	if err != nil {
		return nil, err
	}
	return &RNA{s}, nil
}

// New builds a DNA or RNA molecule depending on kind.
func New(kind alphabet.Kind, name, raw string, shape Shape, opts ...Option) (NucleicAcid, error) {
	switch kind {
	case alphabet.RNA:
		m, err := NewRNA(name, raw, shape, opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		m, err := NewDNA(name, raw, shape, opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

var (
	_ NucleicAcid = (*DNA)(nil)
	_ NucleicAcid = (*RNA)(nil)
)
