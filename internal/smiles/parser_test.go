package smiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/go-selfies/internal/chem"
	"github.com/turtacn/go-selfies/pkg/errors"
)

func TestParse_SimpleChain(t *testing.T) {
	t.Parallel()

	g, err := Parse("CCO", false)
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())
	assert.Equal(t, "C", g.Atom(0).Element)
	assert.Equal(t, "O", g.Atom(2).Element)
	assert.Equal(t, []int{0}, g.Roots())

	b, ok := g.GetDirBond(0, 1)
	require.True(t, ok)
	assert.Equal(t, chem.OrderSingle, b.Order)
}

func TestParse_BondOrdersAndStereo(t *testing.T) {
	t.Parallel()

	g, err := Parse("F/C=C/F", false)
	require.NoError(t, err)
	require.Equal(t, 4, g.Len())

	b, _ := g.GetDirBond(0, 1)
	assert.Equal(t, "/", b.Stereo)
	b, _ = g.GetDirBond(1, 2)
	assert.Equal(t, chem.OrderDouble, b.Order)
	b, _ = g.GetDirBond(2, 3)
	assert.Equal(t, "/", b.Stereo)

	g, err = Parse("C#N", false)
	require.NoError(t, err)
	b, _ = g.GetDirBond(0, 1)
	assert.Equal(t, chem.OrderTriple, b.Order)
}

func TestParse_Branches(t *testing.T) {
	t.Parallel()

	g, err := Parse("CC(C)(C)C", false)
	require.NoError(t, err)
	require.Equal(t, 5, g.Len())
	assert.Len(t, g.OutBonds(1), 3, "the quaternary carbon carries three outgoing bonds")
	assert.Equal(t, 4.0, g.BondCount(1))
}

func TestParse_TwoLetterAndBracketAtoms(t *testing.T) {
	t.Parallel()

	g, err := Parse("ClCBr", false)
	require.NoError(t, err)
	assert.Equal(t, "Cl", g.Atom(0).Element)
	assert.Equal(t, "Br", g.Atom(2).Element)

	g, err = Parse("[13C@@H2+2]", false)
	require.NoError(t, err)
	a := g.Atom(0)
	assert.Equal(t, 13, a.Isotope)
	assert.Equal(t, "@@", a.Chirality)
	assert.Equal(t, 2, a.HCount())
	assert.Equal(t, 2, a.Charge())

	g, err = Parse("[NH4+]", false)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Atom(0).HCount())
	assert.Equal(t, 1, g.Atom(0).Charge())

	g, err = Parse("[O--]", false)
	require.NoError(t, err)
	assert.Equal(t, -2, g.Atom(0).Charge())

	g, err = Parse("[Fe+3]", false)
	require.NoError(t, err)
	assert.Equal(t, "Fe", g.Atom(0).Element)
	assert.Equal(t, 3, g.Atom(0).Charge())
}

func TestParse_BracketAtomHasZeroImplicitHydrogens(t *testing.T) {
	t.Parallel()

	g, err := Parse("[C]", false)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Atom(0).HCount())

	g, err = Parse("C", false)
	require.NoError(t, err)
	assert.Equal(t, chem.HImplicit, g.Atom(0).HCount())
}

func TestParse_AromaticPromotion(t *testing.T) {
	t.Parallel()

	g, err := Parse("c1ccccc1", false)
	require.NoError(t, err)
	require.Equal(t, 6, g.Len())
	assert.False(t, g.IsKekulized())
	for i := 0; i < 6; i++ {
		assert.True(t, g.Atom(i).Aromatic)
	}
	b, ok := g.GetDirBond(0, 5)
	require.True(t, ok)
	assert.Equal(t, chem.OrderAromatic, b.Order)
	assert.True(t, b.Ring)

	// Explicit single bond between aromatic systems stays order 1.
	g, err = Parse("c1ccccc1-c1ccccc1", false)
	require.NoError(t, err)
	b, ok = g.GetDirBond(5, 6)
	require.True(t, ok)
	assert.Equal(t, chem.OrderSingle, b.Order)
}

func TestParse_RingAdjacencyOrderMatchesNotation(t *testing.T) {
	t.Parallel()

	// The ring digit is written directly after the first atom, so the ring
	// bond must occupy the first adjacency slot.
	g, err := Parse("C1CCCCC1", false)
	require.NoError(t, err)
	bonds := g.OutBonds(0)
	require.Len(t, bonds, 2)
	assert.True(t, bonds[0].Ring)
	assert.Equal(t, 5, bonds[0].Dst)
	assert.False(t, bonds[1].Ring)
}

func TestParse_Fragments(t *testing.T) {
	t.Parallel()

	g, err := Parse("C.O", false)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, g.Roots())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		smiles string
		code   errors.ErrorCode
	}{
		{"C(C", errors.ErrCodeSMILESParseFailed},
		{"CC)", errors.ErrCodeSMILESParseFailed},
		{"C1CC", errors.ErrCodeSMILESUnclosedRing},
		{"[CH3", errors.ErrCodeSMILESUnclosedBracket},
		{"CX", errors.ErrCodeSMILESUnknownElement},
		{"[Xx]", errors.ErrCodeSMILESUnknownElement},
		{"C*", errors.ErrCodeSMILESUnsupported},
		{"C%10CC%10", errors.ErrCodeSMILESUnsupported},
		{"[C@TB1]", errors.ErrCodeSMILESUnsupported},
		{"C==C", errors.ErrCodeSMILESParseFailed},
		{"C=", errors.ErrCodeSMILESParseFailed},
		{"", errors.ErrCodeSMILESParseFailed},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.smiles, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tc.smiles, false)
			if tc.smiles == "" {
				// The empty string parses to an empty graph; the encoder is
				// the layer that rejects it.
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tc.code),
				"smiles=%q got code %s", tc.smiles, errors.GetCode(err))
		})
	}
}

func TestParse_Attribution(t *testing.T) {
	t.Parallel()

	g, err := Parse("C[NH2]O", true)
	require.NoError(t, err)
	store := g.Attributions()
	require.NotNil(t, store)

	attrs := store.Atom(1)
	require.Len(t, attrs, 1)
	assert.Equal(t, 1, attrs[0].Index)
	assert.Equal(t, "[NH2]", attrs[0].Token)
}

//Personal.AI order the ending
