package writers

import (
	"strconv"

	"nucleo/pkg/api"
)

// Columns describes how a row type flattens into text and table cells.
type Columns[T any] struct {
	Header []string
	Row    func(T) []string
}

func itoa(n int) string { return strconv.Itoa(n) }

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

var siteColumns = Columns[api.SiteV1]{
	Header: []string{"sequence_id", "enzyme", "site", "start", "end", "cut", "wraps", "match"},
	Row: func(s api.SiteV1) []string {
		return []string{s.SequenceID, s.Enzyme, s.Site, itoa(s.Start), itoa(s.End), itoa(s.Cut), yesNo(s.Wraps), s.Match}
	},
}

var fragmentColumns = Columns[api.FragmentV1]{
	Header: []string{"sequence_id", "start", "end", "length", "wraps", "seq"},
	Row: func(f api.FragmentV1) []string {
		return []string{f.SequenceID, itoa(f.Start), itoa(f.End), itoa(f.Length), yesNo(f.Wraps), f.Seq}
	},
}

var complementColumns = Columns[api.ComplementV1]{
	Header: []string{"sequence_id", "kind", "shape", "length", "sequence", "complement", "five_prime_bottom", "three_prime_bottom"},
	Row: func(c api.ComplementV1) []string {
		return []string{c.SequenceID, c.Kind, c.Shape, itoa(c.Length), c.Sequence, c.Complement, c.FivePrime, c.ThreePrime}
	},
}

var enzymeColumns = Columns[api.EnzymeV1]{
	Header: []string{"name", "recognition", "site", "cut", "palindromic"},
	Row: func(e api.EnzymeV1) []string {
		return []string{e.Name, e.Recognition, e.Site, itoa(e.Cut), yesNo(e.Palindromic)}
	},
}
