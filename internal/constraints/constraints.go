// Package constraints maintains the semantic bond-constraints table: the
// process-wide mapping from an atom key (element name, optionally with a
// signed charge suffix) to the maximum sum of bond orders that atom may carry.
// The table drives bond-order clamping in the decoder and capacity checks in
// the encoder.  Three presets are provided; arbitrary tables can be installed
// as long as they carry the "?" fallback key.
package constraints

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/turtacn/go-selfies/pkg/errors"
)

// Table maps atom keys ("C", "N-1", "?") to a non-negative maximum bond-order
// sum.  Tables are plain values; installing one into the process registry
// always copies it.
type Table map[string]int

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Presets
// ─────────────────────────────────────────────────────────────────────────────

// Preset names accepted by FromPreset and the public SetSemanticConstraints.
const (
	PresetDefault     = "default"
	PresetOctetRule   = "octet_rule"
	PresetHypervalent = "hypervalent"
)

// defaultTable is the standard constraint set: common organic elements at
// their usual valences, hypervalent S and P allowed, eight bonds for anything
// unknown.
var defaultTable = Table{
	"H": 1, "F": 1, "Cl": 1, "Br": 1, "I": 1,
	"B": 3, "B+1": 2, "B-1": 4,
	"O": 2, "O+1": 3, "O-1": 1,
	"N": 3, "N+1": 4, "N-1": 2,
	"C": 4, "C+1": 5, "C-1": 3,
	"P": 5, "P+1": 6, "P-1": 4,
	"S": 6, "S+1": 7, "S-1": 5,
	"?": 8,
}

// FromPreset returns a fresh copy of the named preset table.
func FromPreset(name string) (Table, error) {
	switch name {
	case PresetDefault:
		return defaultTable.Clone(), nil
	case PresetOctetRule:
		t := defaultTable.Clone()
		t["S"], t["S+1"], t["S-1"] = 2, 3, 1
		t["P"], t["P+1"], t["P-1"] = 3, 4, 2
		return t, nil
	case PresetHypervalent:
		t := defaultTable.Clone()
		t["Cl"], t["Br"], t["I"] = 7, 7, 7
		t["N"] = 5
		return t, nil
	default:
		return nil, errors.New(errors.ErrCodeConstraintUnknownPreset,
			"unknown constraint preset").WithDetail("preset=" + name)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Key validation
// ─────────────────────────────────────────────────────────────────────────────

// validElements is the full periodic-table symbol set accepted in atom keys
// and atom symbols.
var validElements = map[string]bool{
	"H": true, "He": true, "Li": true, "Be": true, "B": true, "C": true,
	"N": true, "O": true, "F": true, "Ne": true, "Na": true, "Mg": true,
	"Al": true, "Si": true, "P": true, "S": true, "Cl": true, "Ar": true,
	"K": true, "Ca": true, "Sc": true, "Ti": true, "V": true, "Cr": true,
	"Mn": true, "Fe": true, "Co": true, "Ni": true, "Cu": true, "Zn": true,
	"Ga": true, "Ge": true, "As": true, "Se": true, "Br": true, "Kr": true,
	"Rb": true, "Sr": true, "Y": true, "Zr": true, "Nb": true, "Mo": true,
	"Tc": true, "Ru": true, "Rh": true, "Pd": true, "Ag": true, "Cd": true,
	"In": true, "Sn": true, "Sb": true, "Te": true, "I": true, "Xe": true,
	"Cs": true, "Ba": true, "La": true, "Ce": true, "Pr": true, "Nd": true,
	"Pm": true, "Sm": true, "Eu": true, "Gd": true, "Tb": true, "Dy": true,
	"Ho": true, "Er": true, "Tm": true, "Yb": true, "Lu": true, "Hf": true,
	"Ta": true, "W": true, "Re": true, "Os": true, "Ir": true, "Pt": true,
	"Au": true, "Hg": true, "Tl": true, "Pb": true, "Bi": true, "Po": true,
	"At": true, "Rn": true, "Fr": true, "Ra": true, "Ac": true, "Th": true,
	"Pa": true, "U": true, "Np": true, "Pu": true, "Am": true, "Cm": true,
	"Bk": true, "Cf": true, "Es": true, "Fm": true, "Md": true, "No": true,
	"Lr": true, "Rf": true, "Db": true, "Sg": true, "Bh": true, "Hs": true,
	"Mt": true, "Ds": true, "Rg": true, "Cn": true, "Nh": true, "Fl": true,
	"Mc": true, "Lv": true, "Ts": true, "Og": true,
}

// IsElement reports whether sym is a known periodic-table element symbol.
func IsElement(sym string) bool {
	return validElements[sym]
}

var reConstraintKey = regexp.MustCompile(`^([A-Z][a-z]?)([+-][0-9]+)?$`)

// Validate checks that the table carries the "?" fallback, that every key is
// an element name or <element><signed integer>, and that every value is
// non-negative.
func (t Table) Validate() error {
	if _, ok := t["?"]; !ok {
		return errors.New(errors.ErrCodeConstraintMissingCatch,
			"constraint table must contain the '?' key")
	}
	for key, val := range t {
		if val < 0 {
			return errors.New(errors.ErrCodeConstraintInvalidValue,
				"constraint value must be non-negative").
				WithDetail(fmt.Sprintf("key=%s value=%d", key, val))
		}
		if key == "?" {
			continue
		}
		m := reConstraintKey.FindStringSubmatch(key)
		if m == nil || !validElements[m[1]] {
			return errors.New(errors.ErrCodeConstraintInvalidKey,
				"constraint key must be an element name with optional signed charge").
				WithDetail("key=" + key)
		}
		if m[2] != "" {
			if _, err := strconv.Atoi(m[2]); err != nil {
				return errors.New(errors.ErrCodeConstraintInvalidKey,
					"constraint key charge suffix is not an integer").
					WithDetail("key=" + key)
			}
		}
	}
	return nil
}

// AtomKey formats the lookup key for an element with the given charge:
// "C" for charge 0, "N+1" / "O-1" otherwise.
func AtomKey(element string, charge int) string {
	if charge == 0 {
		return element
	}
	return fmt.Sprintf("%s%+d", element, charge)
}

// Capacity resolves the maximum bond-order sum for (element, charge) against
// the table: exact charged key first, then the neutral element key when the
// charge is zero, then the "?" fallback.
func (t Table) Capacity(element string, charge int) int {
	if v, ok := t[AtomKey(element, charge)]; ok {
		return v
	}
	return t["?"]
}

//Personal.AI order the ending
