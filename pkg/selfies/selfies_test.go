package selfies_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/go-selfies/pkg/errors"
	"github.com/turtacn/go-selfies/pkg/selfies"
)

func resetConstraints(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		require.NoError(t, selfies.SetSemanticConstraintsPreset("default"))
	})
}

func TestEncoderDecoder_Benzene(t *testing.T) {
	out, err := selfies.Encoder("c1ccccc1")
	require.NoError(t, err)
	assert.Equal(t, "[C][=C][C][=C][C][=C][Ring1][=Branch1]", out)

	smiles, err := selfies.Decoder(out)
	require.NoError(t, err)
	assert.Equal(t, "C1=CC=CC=C1", smiles)
}

func TestEncoder_Errors(t *testing.T) {
	_, err := selfies.Encoder("C(F)(F)(F)(F)(F)F")
	assert.True(t, errors.IsEncoderError(err))

	_, err = selfies.Encoder("C1CC")
	assert.True(t, errors.IsEncoderError(err))
}

func TestDecoder_Errors(t *testing.T) {
	_, err := selfies.Decoder("[O][=C][O][C][C][C][C][O][N][Branch2_3")
	assert.True(t, errors.IsDecoderError(err))
}

func TestDecoder_ConstraintSwap(t *testing.T) {
	resetConstraints(t)

	out, err := selfies.Decoder("[C][#C]")
	require.NoError(t, err)
	assert.Equal(t, "C#C", out)

	table := selfies.GetSemanticConstraints()
	table["C"] = 1
	require.NoError(t, selfies.SetSemanticConstraints(table))

	out, err = selfies.Decoder("[C][#C]")
	require.NoError(t, err)
	assert.Equal(t, "CC", out)
}

func TestGetSemanticConstraints_FreshCopy(t *testing.T) {
	resetConstraints(t)

	a := selfies.GetSemanticConstraints()
	a["C"] = 99
	b := selfies.GetSemanticConstraints()
	assert.Equal(t, 4, b["C"], "mutating the returned table must not affect process state")
}

func TestSetSemanticConstraints_ValueEquality(t *testing.T) {
	resetConstraints(t)

	want, err := selfies.GetPresetConstraints("octet_rule")
	require.NoError(t, err)
	require.NoError(t, selfies.SetSemanticConstraints(want))
	assert.Equal(t, want, selfies.GetSemanticConstraints())
}

func TestSetSemanticConstraints_Validation(t *testing.T) {
	resetConstraints(t)

	err := selfies.SetSemanticConstraints(map[string]int{"C": 4})
	assert.True(t, errors.IsCode(err, errors.ErrCodeConstraintMissingCatch))

	err = selfies.SetSemanticConstraints(map[string]int{"?": 8, "zz": 1})
	assert.True(t, errors.IsCode(err, errors.ErrCodeConstraintInvalidKey))
}

func TestRobustAlphabet_DecodeEncodeNeverFails(t *testing.T) {
	resetConstraints(t)

	// Deterministic pseudo-random soups drawn from the robust alphabet.
	alphabet := selfies.GetSemanticRobustAlphabet()
	require.NotEmpty(t, alphabet)

	seed := uint64(0x5eed)
	next := func(n int) int {
		seed = seed*6364136223846793005 + 1442695040888963407
		return int((seed >> 33) % uint64(n))
	}

	for trial := 0; trial < 50; trial++ {
		s := ""
		for i := 0; i < 1+next(20); i++ {
			s += alphabet[next(len(alphabet))]
		}
		smiles, err := selfies.Decoder(s)
		require.NoError(t, err, "decoder must be total on %q", s)
		if smiles == "" {
			continue
		}
		_, err = selfies.Encoder(smiles)
		assert.NoError(t, err, "re-encoding decoder output %q of %q", smiles, s)
	}
}

func TestDecoderAttributed(t *testing.T) {
	smiles, attrs, err := selfies.DecoderAttributed("[C][N]")
	require.NoError(t, err)
	assert.Equal(t, "CN", smiles)
	require.Len(t, attrs, 2)
	assert.Equal(t, "N", attrs[1].Token)
	require.NotEmpty(t, attrs[1].Attributes)
	assert.Equal(t, "[N]", attrs[1].Attributes[0].Token)
}

//Personal.AI order the ending
