package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexFromSymbols_KnownDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, IndexFromSymbols("[C]"))
	assert.Equal(t, 1, IndexFromSymbols("[Ring1]"))
	assert.Equal(t, 4, IndexFromSymbols("[=Branch1]"))
	assert.Equal(t, 15, IndexFromSymbols("[P]"))
	// Two digits: 1*16 + 4.
	assert.Equal(t, 20, IndexFromSymbols("[Ring1]", "[=Branch1]"))
}

func TestIndexFromSymbols_UnknownSymbolsReadAsZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, IndexFromSymbols("[Xyz]"))
	assert.Equal(t, 16, IndexFromSymbols("[Ring1]", "[Xyz]"))
	assert.Equal(t, 0, IndexFromSymbols())
}

func TestSymbolsFromIndex_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 15, 16, 17, 255, 256, 4095, 4096, 123456} {
		digits := SymbolsFromIndex(n)
		assert.Equal(t, n, IndexFromSymbols(digits...), "n=%d digits=%v", n, digits)
	}
}

func TestSymbolsFromIndex_CanonicalForms(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"[C]"}, SymbolsFromIndex(0))
	require.Equal(t, []string{"[=Branch1]"}, SymbolsFromIndex(4))
	require.Equal(t, []string{"[Ring1]", "[C]"}, SymbolsFromIndex(16))
}

//Personal.AI order the ending
