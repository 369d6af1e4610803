// Package digest turns cut coordinates into fragments.
package digest

import (
	"sort"

	"nucleo-core/molecule"
	"nucleo-core/site"
)

// Fragment is half-open, 0-based [Start, End). On a circular molecule the
// fragment spanning the origin has Wraps set and End < Start (or End ==
// Start for a single cut, which opens the ring into one full-length piece).
type Fragment struct {
	Start  int
	End    int
	Length int
	Wraps  bool
}

// Fragments splits a molecule of length n at cuts. cuts need not be sorted
// or unique. Linear: pieces between 0, each cut and n, skipping empty ones.
// Circular: pieces between consecutive cuts, the last wrapping; no cuts
// leaves the ring intact as one fragment.
func Fragments(n int, shape molecule.Shape, cuts []int) []Fragment {
	if n <= 0 {
		return nil
	}
	cs := normalize(n, shape, cuts)

	if shape == molecule.Circular {
		if len(cs) == 0 {
			return []Fragment{{Start: 0, End: n, Length: n}}
		}
		out := make([]Fragment, 0, len(cs))
		for i := 0; i+1 < len(cs); i++ {
			out = append(out, Fragment{Start: cs[i], End: cs[i+1], Length: cs[i+1] - cs[i]})
		}
		last, first := cs[len(cs)-1], cs[0]
		out = append(out, Fragment{Start: last, End: first, Length: n - last + first, Wraps: true})
		return out
	}

	out := make([]Fragment, 0, len(cs)+1)
	prev := 0
	for _, c := range append(cs, n) {
		if c > prev {
			out = append(out, Fragment{Start: prev, End: c, Length: c - prev})
		}
		prev = c
	}
	return out
}

func normalize(n int, shape molecule.Shape, cuts []int) []int {
	cs := make([]int, 0, len(cuts))
	for _, c := range cuts {
		if shape == molecule.Circular {
			c %= n
			if c < 0 {
				c += n
			}
		} else if c <= 0 || c >= n {
			continue
		}
		cs = append(cs, c)
	}
	sort.Ints(cs)
	w := 0
	for i, c := range cs {
		if i == 0 || c != cs[w-1] {
			cs[w] = c
			w++
		}
	}
	return cs[:w]
}

// Digest cuts m with every pattern and returns the resulting fragments.
func Digest(m molecule.NucleicAcid, patterns ...site.Pattern) []Fragment {
	var cuts []int
	for _, p := range patterns {
		cuts = append(cuts, site.Cuts(m, p)...)
	}
	return Fragments(m.Len(), m.Shape(), cuts)
}

// Filter keeps fragments with min <= Length <= max. max <= 0 means no upper
// bound.
func Filter(frags []Fragment, min, max int) []Fragment {
	out := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if f.Length < min || (max > 0 && f.Length > max) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Sequence extracts a fragment's bases from raw, joining across the origin
// for wrapping fragments.
func Sequence(raw string, f Fragment) string {
	if !f.Wraps {
		return raw[f.Start:f.End]
	}
	return raw[f.Start:] + raw[:f.End]
}
