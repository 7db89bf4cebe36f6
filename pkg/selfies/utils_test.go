package selfies_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/go-selfies/pkg/selfies"
)

func TestLenSelfies(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, selfies.LenSelfies(""))
	assert.Equal(t, 2, selfies.LenSelfies("[C][O]"))
	assert.Equal(t, 4, selfies.LenSelfies("[C][C].[O]"))
}

func TestSplitSelfies(t *testing.T) {
	t.Parallel()

	symbols, err := selfies.SplitSelfies("[C][=C].[O]")
	require.NoError(t, err)
	assert.Equal(t, []string{"[C]", "[=C]", ".", "[O]"}, symbols)

	_, err = selfies.SplitSelfies("[C][=C")
	assert.Error(t, err)
}

func TestGetAlphabetFromSelfies(t *testing.T) {
	t.Parallel()

	alphabet, err := selfies.GetAlphabetFromSelfies([]string{
		"[C][=C][C]",
		"[C][O].[F]",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"[=C]", "[C]", "[F]", "[O]"}, alphabet,
		"sorted and deduplicated, without the dot separator")
}

//Personal.AI order the ending
