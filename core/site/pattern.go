// Package site finds restriction-enzyme recognition sites on DNA and RNA
// molecules. Patterns may carry IUPAC ambiguity codes; circular molecules
// are scanned as rings.
package site

import (
	"fmt"
	"strings"

	"nucleo-core/iupac"
)

// Pattern is an enzyme's recognition site and the offset within the site
// where the top strand is cut. 0 <= CutOffset <= len(Site).
type Pattern struct {
	Name      string
	Site      string
	CutOffset int

	mask []uint8
}

// StripCaret removes "^" from recog and returns (cleanSite, cutOffset).
// Without a caret the cut defaults to mid-site.
func StripCaret(recog string) (string, int) {
	if i := strings.IndexByte(recog, '^'); i >= 0 {
		return recog[:i] + recog[i+1:], i
	}
	return recog, len(recog) / 2
}

// NewPattern parses a recognition string such as "G^AATTC" or "GATNNNNATC".
func NewPattern(name, recog string) (Pattern, error) {
	if strings.Count(recog, "^") > 1 {
		return Pattern{}, fmt.Errorf("pattern %s: more than one cut mark in %q", name, recog)
	}
	s, cut := StripCaret(recog)
	return NewPatternAt(name, s, cut)
}

// NewPatternAt builds a pattern with an explicit cut offset.
func NewPatternAt(name, s string, cut int) (Pattern, error) {
	s = strings.ToUpper(s)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(iupac.Codes, s[i]) < 0 {
			return Pattern{}, fmt.Errorf("pattern %s: invalid IUPAC base %q at %d; allowed: %s",
				name, s[i], i, strings.Join(strings.Split(iupac.Codes, ""), " "))
		}
	}
	if cut < 0 || cut > len(s) {
		return Pattern{}, fmt.Errorf("pattern %s: cut offset %d outside [0,%d]", name, cut, len(s))
	}
	m, _ := iupac.Compile(s)
	return Pattern{Name: name, Site: s, CutOffset: cut, mask: m}, nil
}

// MustPattern is NewPattern for fixed, known-good inputs.
func MustPattern(name, recog string) Pattern {
	p, err := NewPattern(name, recog)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of positions in the site.
func (p Pattern) Len() int { return len(p.Site) }

// Recognition renders the site with a caret at the cut.
func (p Pattern) Recognition() string {
	return p.Site[:p.CutOffset] + "^" + p.Site[p.CutOffset:]
}

// IsPalindromic reports whether the site equals its own reverse complement,
// in which case both strands share every hit.
func (p Pattern) IsPalindromic() bool {
	n := len(p.Site)
	for i := 0; i < n; i++ {
		if complementCode[p.Site[i]] != p.Site[n-1-i] {
			return false
		}
	}
	return true
}

func (p Pattern) masks() []uint8 {
	if p.mask == nil && p.Site != "" {
		m, ok := iupac.Compile(p.Site)
		if ok {
			return m
		}
	}
	return p.mask
}

var complementCode [256]byte

func init() {
	pairs := "AT CG GC TA RY YR SS WW KM MK BV VB DH HD NN"
	for _, pr := range strings.Fields(pairs) {
		complementCode[pr[0]] = pr[1]
	}
}
