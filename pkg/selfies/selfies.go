// Package selfies is the public surface of the go-selfies codec: a
// bidirectional, lossless translator between SMILES and SELFIES molecular
// string notations.  The decoder is total — every finite symbol sequence
// drawn from the SELFIES alphabet decodes to a chemically valid molecular
// graph — while the encoder guards its SMILES input strictly.
package selfies

import (
	"github.com/turtacn/go-selfies/internal/constraints"
	"github.com/turtacn/go-selfies/internal/decoder"
	"github.com/turtacn/go-selfies/internal/encoder"
	attr "github.com/turtacn/go-selfies/pkg/types/attribution"
)

// AttributionMap links every output token of a translation to the input
// symbols that produced it.
type AttributionMap = attr.Map

// Attribution is one input-symbol reference inside an AttributionMap.
type Attribution = attr.Attribution

// DecodeOptions selects decoder behavior.
type DecodeOptions struct {
	// Compatible accepts legacy v1-era symbol spellings.
	Compatible bool
}

// Encoder translates a SMILES string into a SELFIES string.  It returns an
// encoder error (SMI_* codes) on malformed SMILES, kekulization failure, or
// a bond-constraint violation.
func Encoder(smiles string) (string, error) {
	out, _, err := encoder.Encode(smiles, false)
	return out, err
}

// EncoderAttributed is Encoder with the attribution side-channel enabled:
// every emitted SELFIES token is linked back to the SMILES atom that caused
// it.
func EncoderAttributed(smiles string) (string, AttributionMap, error) {
	return encoder.Encode(smiles, true)
}

// Decoder translates a SELFIES string into a SMILES string.  The empty
// string decodes to "C"; any other input either decodes (bond orders are
// clamped, impossible rings skipped) or fails with a decoder error (SFS_*
// codes) on a structurally malformed symbol.
func Decoder(selfies string) (string, error) {
	out, _, err := decoder.Decode(selfies, decoder.Options{})
	return out, err
}

// DecoderAttributed is Decoder with the attribution side-channel enabled.
func DecoderAttributed(selfies string) (string, AttributionMap, error) {
	return decoder.Decode(selfies, decoder.Options{Attribute: true})
}

// DecoderWithOptions decodes with explicit options; attribution is enabled
// when the attributed result is wanted via DecoderAttributed instead.
func DecoderWithOptions(selfies string, opts DecodeOptions) (string, error) {
	out, _, err := decoder.Decode(selfies, decoder.Options{Compatible: opts.Compatible})
	return out, err
}

// ─────────────────────────────────────────────────────────────────────────────
// Semantic constraints
// ─────────────────────────────────────────────────────────────────────────────

// GetPresetConstraints returns a fresh copy of the named preset constraint
// table; name is one of "default", "octet_rule", "hypervalent".
func GetPresetConstraints(name string) (map[string]int, error) {
	t, err := constraints.FromPreset(name)
	if err != nil {
		return nil, err
	}
	return map[string]int(t), nil
}

// GetSemanticConstraints returns a fresh copy of the installed constraint
// table; mutating the result does not affect the process state.
func GetSemanticConstraints() map[string]int {
	return map[string]int(constraints.Current())
}

// SetSemanticConstraints installs a custom constraint table.  The table must
// contain the "?" fallback key; keys must be an element name or
// <element><signed integer>; values must be non-negative.  Installation
// atomically invalidates the robust-alphabet and bonding-capacity caches.
func SetSemanticConstraints(table map[string]int) error {
	return constraints.Install(constraints.Table(table))
}

// SetSemanticConstraintsPreset installs one of the named presets.
func SetSemanticConstraintsPreset(name string) error {
	return constraints.InstallPreset(name)
}

// GetSemanticRobustAlphabet returns the sorted set of SELFIES symbols the
// codec currently considers valid under the installed constraints.
func GetSemanticRobustAlphabet() []string {
	return constraints.RobustAlphabet()
}

//Personal.AI order the ending
