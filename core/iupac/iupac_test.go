package iupac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestN_MatchesAny(t *testing.T) {
	for _, b := range []byte("ACGTUacgtu") {
		assert.True(t, Match('N', b), "N should match %c", b)
		assert.True(t, Match(b, 'n'), "sequence n should match %c", b)
	}
}

func TestPurinePyrimidine(t *testing.T) {
	assert.True(t, Match('R', 'A'))
	assert.True(t, Match('R', 'g'))
	assert.False(t, Match('R', 'C'))
	assert.False(t, Match('R', 'T'))

	assert.True(t, Match('Y', 'C'))
	assert.True(t, Match('Y', 'T'))
	assert.True(t, Match('Y', 'U'))
	assert.False(t, Match('Y', 'A'))
}

func TestNonCodesNeverMatch(t *testing.T) {
	assert.False(t, Match('A', '-'))
	assert.False(t, Match('X', 'A'))
	assert.False(t, Valid('x'))
	assert.True(t, Valid('w'))
}

func TestCompile(t *testing.T) {
	m, ok := Compile("RcgY")
	assert.True(t, ok)
	assert.Equal(t, []uint8{5, 2, 4, 10}, m)

	_, ok = Compile("GA^TC")
	assert.False(t, ok)

	for i := 0; i < len(Codes); i++ {
		assert.True(t, Valid(Codes[i]), "%c", Codes[i])
	}
}
