package site

import (
	"sort"

	"nucleo-core/iupac"
	"nucleo-core/molecule"
)

// FindSites returns the 0-based start offsets of every window of m that p
// matches, ascending, overlaps included. Linear molecules only yield windows
// that fit entirely; circular molecules yield windows that wrap past the end.
// Comparison is by IUPAC class, so a molecule N matches every pattern code.
// An empty pattern, or one longer than the molecule, yields nil.
func FindSites(m molecule.NucleicAcid, p Pattern) []int {
	return findSites(m.RawSequence(), m.Shape() == molecule.Circular, p.masks())
}

func findSites(seq string, circular bool, mask []uint8) []int {
	n, pl := len(seq), len(mask)
	if pl == 0 || pl > n {
		return nil
	}
	last := n - pl
	if circular {
		last = n - 1
	}
	var out []int
window:
	for pos := 0; pos <= last; pos++ {
		for j := 0; j < pl; j++ {
			k := pos + j
			if k >= n {
				k -= n
			}
			if mask[j]&iupac.Mask(seq[k]) == 0 {
				continue window
			}
		}
		out = append(out, pos)
	}
	return out
}

// Cuts returns the top-strand cut coordinates for every hit of p on m:
// start+CutOffset, reduced modulo the length on circular molecules. The
// result is ascending with duplicates removed.
func Cuts(m molecule.NucleicAcid, p Pattern) []int {
	return cutsFromHits(FindSites(m, p), p.CutOffset, m.Len(), m.Shape() == molecule.Circular)
}

func cutsFromHits(hits []int, offset, n int, circular bool) []int {
	if len(hits) == 0 {
		return nil
	}
	out := make([]int, 0, len(hits))
	for _, h := range hits {
		c := h + offset
		if circular && c >= n {
			c -= n
		}
		out = append(out, c)
	}
	if circular {
		sort.Ints(out)
	}
	return dedupSorted(out)
}

func dedupSorted(xs []int) []int {
	if len(xs) < 2 {
		return xs
	}
	w := 1
	for i := 1; i < len(xs); i++ {
		if xs[i] != xs[w-1] {
			xs[w] = xs[i]
			w++
		}
	}
	return xs[:w]
}
