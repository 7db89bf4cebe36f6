package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/go-selfies/internal/constraints"
)

func TestAddAtom_AssignsDenseIndices(t *testing.T) {
	g := NewGraph(false)
	a := NewAtom("C", false)
	b := NewAtom("O", false)

	assert.Equal(t, -1, a.Index())
	assert.Equal(t, 0, g.AddAtom(a, true))
	assert.Equal(t, 1, g.AddAtom(b, false))
	assert.Equal(t, 0, a.Index())
	assert.Equal(t, 1, b.Index())
	assert.Equal(t, []int{0}, g.Roots())
	assert.Equal(t, 2, g.Len())
}

func TestAddBond_UpdatesBothEndpointCounts(t *testing.T) {
	g := NewGraph(false)
	g.AddAtom(NewAtom("C", false), true)
	g.AddAtom(NewAtom("O", false), false)

	g.AddBond(0, 1, OrderDouble, "")

	assert.Equal(t, 2.0, g.BondCount(0))
	assert.Equal(t, 2.0, g.BondCount(1))
	assert.True(t, g.HasBond(0, 1))
	assert.True(t, g.HasBond(1, 0))
	require.Len(t, g.OutBonds(0), 1)
	assert.Empty(t, g.OutBonds(1), "non-ring bonds live only on the source adjacency")
}

func TestGetDirBond_SynthesizesReverse(t *testing.T) {
	g := NewGraph(false)
	g.AddAtom(NewAtom("C", false), true)
	g.AddAtom(NewAtom("C", false), false)
	g.AddBond(0, 1, OrderSingle, "/")

	fwd, ok := g.GetDirBond(0, 1)
	require.True(t, ok)
	assert.Equal(t, "/", fwd.Stereo)

	rev, ok := g.GetDirBond(1, 0)
	require.True(t, ok)
	assert.Equal(t, 1, rev.Src)
	assert.Equal(t, 0, rev.Dst)
	assert.Equal(t, "\\", rev.Stereo, "stereo mirrors on the reversed view")

	_, ok = g.GetDirBond(0, 5)
	assert.False(t, ok)
}

func TestAddRingBond_StoresBothDirections(t *testing.T) {
	g := NewGraph(false)
	for i := 0; i < 3; i++ {
		g.AddAtom(NewAtom("C", false), i == 0)
	}
	g.AddBond(0, 1, OrderSingle, "")
	g.AddBond(1, 2, OrderSingle, "")
	g.AddRingBond(0, 2, OrderSingle, "", "", -1, -1)

	assert.True(t, g.HasOutRingBond(0))
	assert.True(t, g.HasOutRingBond(2))
	assert.False(t, g.HasOutRingBond(1))
	assert.Equal(t, 2.0, g.BondCount(0))
	assert.Equal(t, 2.0, g.BondCount(2))

	fwd, ok := g.GetDirBond(0, 2)
	require.True(t, ok)
	rev, ok := g.GetDirBond(2, 0)
	require.True(t, ok)
	assert.True(t, fwd.Ring)
	assert.True(t, rev.Ring)
}

func TestAddRingBond_PositionalInsert(t *testing.T) {
	g := NewGraph(false)
	for i := 0; i < 3; i++ {
		g.AddAtom(NewAtom("C", false), i == 0)
	}
	g.AddBond(0, 1, OrderSingle, "")
	g.AddBond(1, 2, OrderSingle, "")
	// Reserve slot 0: the ring bond appears before the chain bond, as it
	// would for a ring digit written directly after the atom.
	g.AddRingBond(0, 2, OrderSingle, "", "", 0, -1)

	bonds := g.OutBonds(0)
	require.Len(t, bonds, 2)
	assert.True(t, bonds[0].Ring)
	assert.False(t, bonds[1].Ring)
}

func TestUpdateBondOrder_RingBondUpdatesBothOrientations(t *testing.T) {
	g := NewGraph(false)
	for i := 0; i < 2; i++ {
		g.AddAtom(NewAtom("C", false), i == 0)
	}
	g.AddRingBond(0, 1, OrderSingle, "", "", -1, -1)

	g.UpdateBondOrder(0, 1, OrderDouble)

	fwd, _ := g.GetDirBond(0, 1)
	rev, _ := g.GetDirBond(1, 0)
	assert.Equal(t, OrderDouble, fwd.Order)
	assert.Equal(t, OrderDouble, rev.Order)
	assert.Equal(t, 2.0, g.BondCount(0))
	assert.Equal(t, 2.0, g.BondCount(1))
}

func TestAromaticSubgraphTracking(t *testing.T) {
	g := NewGraph(false)
	for i := 0; i < 3; i++ {
		g.AddAtom(NewAtom("C", true), i == 0)
	}
	g.AddBond(0, 1, OrderAromatic, "")
	g.AddBond(1, 2, OrderAromatic, "")

	assert.False(t, g.IsKekulized())
	assert.Equal(t, []int{0, 1, 2}, g.AromaticVertices())
	assert.Equal(t, []int{0, 2}, g.AromaticNeighbors(1))
}

func TestBondingCapacity_MemoInvalidation(t *testing.T) {
	t.Cleanup(func() { _ = constraints.InstallPreset(constraints.PresetDefault) })

	a := NewAtom("C", false)
	assert.Equal(t, 4, a.BondingCapacity())

	a.SetHCount(3)
	assert.Equal(t, 1, a.BondingCapacity())

	a.SetCharge(1)
	assert.Equal(t, 2, a.BondingCapacity(), "C+1 allows five bonds, minus three hydrogens")

	require.NoError(t, constraints.Install(constraints.Table{"?": 8, "C+1": 3}))
	assert.Equal(t, 0, a.BondingCapacity(), "table swap invalidates the memo")
}

func TestAtomBody(t *testing.T) {
	a := NewAtom("C", false)
	assert.Equal(t, "C", a.Body())
	assert.False(t, a.NeedsBrackets())

	a.Isotope = 13
	a.Chirality = "@@"
	a.SetHCount(1)
	a.SetCharge(-2)
	assert.Equal(t, "13C@@H-2", a.Body())
	assert.True(t, a.NeedsBrackets())

	b := NewAtom("N", false)
	b.SetHCount(4)
	b.SetCharge(1)
	assert.Equal(t, "NH4+", b.Body())

	w := NewAtom("W", false)
	assert.True(t, w.NeedsBrackets(), "non organic-subset elements are bracketed")
}

//Personal.AI order the ending
