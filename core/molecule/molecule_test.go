package molecule

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nucleo-core/alphabet"
)

func TestDNAComplementSequence(t *testing.T) {
	tests := []struct{ raw, want string }{
		{"ACTG", "TGAC"},
		{"TTAA", "AATT"},
		{"GCCGTTACGGCCAA", "CGGCAATGCCGGTT"},
		{"A", "T"},
		{"N", "N"},
		{"a", "T"},
		{"aattccgg", "TTAAGGCC"},
		{"nNatcgatt", "NNTAGCTAA"},
		{"AANTT", "TTNAA"},
	}
	for _, tc := range tests {
		d, err := NewDNA("test", tc.raw, Linear)
		require.NoError(t, err, tc.raw)
		got, err := d.ComplementRawSequence()
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "complement of %q", tc.raw)
	}
}

func TestRNAComplementSequence(t *testing.T) {
	tests := []struct{ raw, want string }{
		{"ACUG", "UGAC"},
		{"UUAA", "AAUU"},
		{"GCCGUUACGGCCAA", "CGGCAAUGCCGGUU"},
		{"A", "U"},
		{"N", "N"},
		{"a", "U"},
		{"aauuucccg", "UUAAAGGGC"},
		{"aunNnnn", "UANNNNN"},
		{"AUNGC", "UANCG"},
	}
	for _, tc := range tests {
		r, err := NewRNA("test", tc.raw, Linear)
		require.NoError(t, err, tc.raw)
		got, err := r.ComplementRawSequence()
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "complement of %q", tc.raw)
	}
}

func TestConstructorsReject(t *testing.T) {
	bad := []string{"", "FFF", "123", "--++", "AA TT", "AA NTT"}
	for _, raw := range bad {
		d, err := NewDNA("err", raw, Linear)
		assert.Nil(t, d, raw)
		assert.Error(t, err, raw)

		r, err := NewRNA("err", strings.ReplaceAll(raw, "T", "U"), Linear)
		assert.Nil(t, r, raw)
		assert.Error(t, err, raw)
	}

	_, err := NewDNA("empty", "", Circular)
	assert.ErrorIs(t, err, alphabet.ErrEmpty)

	_, err = NewRNA("t-in-rna", "ACGT", Linear)
	var ice *alphabet.IllegalCharacterError
	require.True(t, errors.As(err, &ice))
	assert.Equal(t, 3, ice.Pos)
	assert.Equal(t, 'T', ice.Char)
}

func TestSequenceMatchesRaw(t *testing.T) {
	raws := []string{"a", "ACGTN", "acgtnACGTN", "GgGgGgNnNn", strings.Repeat("tAcN", 50)}
	for _, raw := range raws {
		d, err := NewDNA("x", raw, Linear)
		require.NoError(t, err)
		seq := d.Sequence()
		require.Len(t, seq, len(raw))
		assert.Equal(t, d.Len(), len(seq))
		for i, b := range seq {
			assert.Equal(t, strings.ToUpper(raw[i:i+1]), b.String(), "%q[%d]", raw, i)
		}
		assert.Equal(t, raw, d.RawSequence())
	}
}

func TestSequenceReturnsCopy(t *testing.T) {
	d, err := NewDNA("x", "ACGT", Linear)
	require.NoError(t, err)
	seq := d.Sequence()
	seq[0] = alphabet.Guanine
	assert.Equal(t, alphabet.Adenine, d.Sequence()[0])
}

func TestComplementInvolution(t *testing.T) {
	for _, raw := range []string{"ACGTN", "aacgtNNtt", "GATTACA"} {
		d, err := NewDNA("x", raw, Linear)
		require.NoError(t, err)
		c1, err := d.ComplementRawSequence()
		require.NoError(t, err)
		d2, err := NewDNA("x'", c1, Linear)
		require.NoError(t, err)
		c2, err := d2.ComplementRawSequence()
		require.NoError(t, err)
		assert.Equal(t, strings.ToUpper(raw), c2)
	}
	for _, raw := range []string{"ACGUN", "aacguNNuu"} {
		r, err := NewRNA("x", raw, Linear)
		require.NoError(t, err)
		c1, err := r.ComplementRawSequence()
		require.NoError(t, err)
		r2, err := NewRNA("x'", c1, Linear)
		require.NoError(t, err)
		c2, err := r2.ComplementRawSequence()
		require.NoError(t, err)
		assert.Equal(t, strings.ToUpper(raw), c2)
	}
}

func TestComplementBase(t *testing.T) {
	d, err := NewDNA("x", "A", Linear)
	require.NoError(t, err)

	c, err := d.ComplementBase('g')
	require.NoError(t, err)
	assert.Equal(t, 'C', c)

	_, err = d.ComplementBase('U')
	var cv *alphabet.ContractViolation
	assert.ErrorAs(t, err, &cv)

	r, err := NewRNA("x", "A", Linear)
	require.NoError(t, err)
	c, err = r.ComplementBase('a')
	require.NoError(t, err)
	assert.Equal(t, 'U', c)
}

func TestEncodeSequence(t *testing.T) {
	r, err := NewRNA("x", "A", Linear)
	require.NoError(t, err)
	seq, err := r.EncodeSequence("gUn")
	require.NoError(t, err)
	assert.Equal(t, []alphabet.Base{alphabet.Guanine, alphabet.Uracil, alphabet.Wildcard}, seq)

	_, err = r.EncodeSequence("T")
	assert.Error(t, err)
}

func TestStrandEnds(t *testing.T) {
	d, err := NewDNA("x", "ACGG", Linear)
	require.NoError(t, err)

	assert.Equal(t, alphabet.Adenine, d.FivePrimeTop())
	assert.Equal(t, alphabet.Guanine, d.ThreePrimeTop())

	// complement TGCC: bottom 5' pairs with top 3' (G -> C), bottom 3' with top 5' (A -> T)
	b5, err := d.FivePrimeBottom()
	require.NoError(t, err)
	assert.Equal(t, alphabet.Cytosine, b5)
	b3, err := d.ThreePrimeBottom()
	require.NoError(t, err)
	assert.Equal(t, alphabet.Thymine, b3)

	d, err = NewDNA("x", "ACGT", Linear)
	require.NoError(t, err)
	b5, err = d.FivePrimeBottom()
	require.NoError(t, err)
	assert.Equal(t, alphabet.Adenine, b5)
	b3, err = d.ThreePrimeBottom()
	require.NoError(t, err)
	assert.Equal(t, alphabet.Thymine, b3)

	r, err := NewRNA("x", "aGCn", Linear)
	require.NoError(t, err)
	b5, err = r.FivePrimeBottom()
	require.NoError(t, err)
	assert.Equal(t, alphabet.Wildcard, b5)
	b3, err = r.ThreePrimeBottom()
	require.NoError(t, err)
	assert.Equal(t, alphabet.Uracil, b3)
}

func TestSingleBase(t *testing.T) {
	d, err := NewDNA("x", "A", Linear)
	require.NoError(t, err)
	c, err := d.ComplementRawSequence()
	require.NoError(t, err)
	assert.Equal(t, "T", c)
	assert.Equal(t, d.FivePrimeTop(), d.ThreePrimeTop())

	n, err := NewDNA("x", "N", Linear)
	require.NoError(t, err)
	c, err = n.ComplementRawSequence()
	require.NoError(t, err)
	assert.Equal(t, "N", c)
}

func TestSetShape(t *testing.T) {
	r, err := NewRNA("plasmid", "acgu", Linear)
	require.NoError(t, err)
	before := r.Sequence()

	r.SetShape(Circular)
	assert.Equal(t, Circular, r.Shape())
	assert.Equal(t, "acgu", r.RawSequence())
	assert.Equal(t, before, r.Sequence())
	assert.Equal(t, "plasmid", r.Name())
}

func TestNewByKind(t *testing.T) {
	m, err := New(alphabet.RNA, "r", "ACGU", Circular)
	require.NoError(t, err)
	assert.Equal(t, alphabet.RNA, m.Kind())
	assert.Equal(t, Circular, m.Shape())

	m, err = New(alphabet.DNA, "d", "ACGU", Linear)
	assert.Nil(t, m)
	assert.Error(t, err)
}

type recordingObserver struct {
	created  []string
	rejected []error
}

func (o *recordingObserver) Created(_ alphabet.Kind, name string, _ int) {
	o.created = append(o.created, name)
}

func (o *recordingObserver) Rejected(_ alphabet.Kind, _ string, err error) {
	o.rejected = append(o.rejected, err)
}

func TestObserver(t *testing.T) {
	obs := &recordingObserver{}
	_, err := NewDNA("ok", "ACGT", Linear, WithObserver(obs))
	require.NoError(t, err)
	_, err = NewDNA("bad", "AC-GT", Linear, WithObserver(obs))
	require.Error(t, err)

	assert.Equal(t, []string{"ok"}, obs.created)
	require.Len(t, obs.rejected, 1)
	assert.Equal(t, err, obs.rejected[0])
}

func TestParseShape(t *testing.T) {
	s, err := ParseShape(" Circular ")
	require.NoError(t, err)
	assert.Equal(t, Circular, s)

	_, err = ParseShape("helix")
	assert.Error(t, err)

	var sh Shape
	require.NoError(t, sh.UnmarshalText([]byte("LINEAR")))
	assert.Equal(t, Linear, sh)
	b, err := Circular.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "circular", string(b))
}
