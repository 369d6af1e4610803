// Package iupac holds the IUPAC nucleotide class-membership table used for
// ambiguity-aware comparison.
package iupac

/* -------------------------- IUPAC lookup table -------------------------- */

var mask [256]uint8 // bit0=A bit1=C bit2=G bit3=T/U

const any4 = 1 | 2 | 4 | 8

func init() {
	set := func(c byte, bits uint8) {
		mask[c] = bits
		mask[c+'a'-'A'] = bits
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('U', 8)       // RNA uracil pairs like T
	set('R', 1|4)     // A/G purine
	set('Y', 2|8)     // C/T pyrimidine
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // not A
	set('D', 1|4|8)   // not C
	set('H', 1|2|8)   // not G
	set('V', 1|2|4)   // not T
	set('N', any4)    // any
}

// Codes lists the accepted pattern letters.
const Codes = "ACGTRYSWKMBDHVN"

// Mask returns the 4-bit class of c (any case), or 0 if c is not a code.
func Mask(c byte) uint8 { return mask[c] }

// Valid reports whether c is an IUPAC nucleotide code (U included).
func Valid(c byte) bool { return mask[c] != 0 }

// Match reports whether pattern code p admits sequence base s. Either side
// being N matches anything; otherwise the classes must overlap.
func Match(p, s byte) bool {
	return mask[p]&mask[s] != 0
}

// Compile converts a recognition string to per-position masks. ok is false
// if any character is not a code.
func Compile(site string) (m []uint8, ok bool) {
	m = make([]uint8, len(site))
	for i := 0; i < len(site); i++ {
		b := mask[site[i]]
		if b == 0 {
			return nil, false
		}
		m[i] = b
	}
	return m, true
}
