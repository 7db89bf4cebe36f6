// Package decoder translates SELFIES strings into molecular graphs and then
// SMILES.  The derivation engine is total by construction: bond orders are
// clamped against the remaining capacity of the current atom, index tails
// never fail to read, and ring bonds that cannot be placed are skipped.  The
// only errors are structural: a hanging bracket, or an unknown symbol at a
// derivation position.
package decoder

import (
	"github.com/turtacn/go-selfies/internal/chem"
	"github.com/turtacn/go-selfies/internal/grammar"
	"github.com/turtacn/go-selfies/internal/smiles"
	"github.com/turtacn/go-selfies/pkg/errors"
	attr "github.com/turtacn/go-selfies/pkg/types/attribution"
)

// Options selects decoder behavior.
type Options struct {
	// Attribute enables the attribution side-channel.
	Attribute bool
	// Compatible rewrites legacy symbol spellings (e.g. "[Branch1_2]",
	// "[ExplRing1]", "[Cexpl]") into their current forms before derivation.
	Compatible bool
}

// stateNone is the terminated derivation state: no further bonds are emitted
// in the frame.  It is entered only through epsilon-family symbols.
const stateNone = -1

// maxBudget is the symbol budget of a top-level fragment frame.
const maxBudget = int(^uint(0) >> 1)

// Decode translates a SELFIES string into a SMILES string.  The empty string
// decodes to "C" so the function is total over string inputs.
func Decode(selfies string, opts Options) (string, attr.Map, error) {
	if selfies == "" {
		return "C", nil, nil
	}

	tokens, err := grammar.Tokenize(selfies)
	if err != nil {
		return "", nil, err
	}
	if opts.Compatible {
		tokens = rewriteLegacy(tokens)
	}

	g := chem.NewGraph(opts.Attribute)
	d := &deriver{
		g:     g,
		input: selfies,
		opts:  opts,
	}

	// Fragments derive independently; deferred ring bonds resolve bilocally
	// over the whole graph afterwards.
	frag := make([]grammar.Token, 0, len(tokens))
	flush := func() error {
		if len(frag) == 0 {
			return nil
		}
		d.stream = &cursor{tokens: frag}
		if err := d.derive(maxBudget, 0, -1); err != nil {
			return err
		}
		frag = frag[:0]
		return nil
	}
	for _, tok := range tokens {
		switch tok.Text {
		case grammar.Dot:
			if err := flush(); err != nil {
				return "", nil, err
			}
		case "[nop]":
			// Filtered before derivation: a no-op wherever it appears, and
			// never counted against a frame budget or an index tail.
		default:
			frag = append(frag, tok)
		}
	}
	if err := flush(); err != nil {
		return "", nil, err
	}

	d.resolveRings()

	out, attrs := smiles.Write(g)
	return out, attrs, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Symbol stream
// ─────────────────────────────────────────────────────────────────────────────

// cursor is the forward-only symbol stream shared between a fragment frame
// and its recursive branch frames.
type cursor struct {
	tokens []grammar.Token
	pos    int
}

func (c *cursor) hasNext() bool { return c.pos < len(c.tokens) }

func (c *cursor) next() grammar.Token {
	t := c.tokens[c.pos]
	c.pos++
	return t
}

// ─────────────────────────────────────────────────────────────────────────────
// Derivation
// ─────────────────────────────────────────────────────────────────────────────

// ringEntry is a deferred ring bond, attempted after traversal completes.
type ringEntry struct {
	left, right int
	order       int
	leftStereo  string
	rightStereo string
	attrs       []attr.Attribution
}

type deriver struct {
	g      *chem.Graph
	stream *cursor
	input  string
	opts   Options
	rings  []ringEntry

	attrStack []attr.Attribution
}

// derive consumes up to budget symbols from the shared stream, maintaining
// state = bonds remaining on prev (stateNone once emission has terminated).
// Branch symbols recurse with a sub-budget decoded from their index tail.
// Consumption is measured on the shared cursor, so index tails and recursive
// branch frames all count against the enclosing budget.
func (d *deriver) derive(budget int, state, prev int) error {
	start := d.stream.pos
	for d.stream.pos-start < budget && d.stream.hasNext() {
		tok := d.stream.next()
		sym := grammar.Parse(tok.Text)

		switch sym.Kind {
		case grammar.KindAtom:
			if state == stateNone {
				continue
			}
			atom := sym.Atom.NewAtom()
			capacity := atom.BondingCapacity()
			order := int(sym.Atom.Order)
			if order > state {
				order = state
			}
			if order > capacity {
				order = capacity
			}
			var idx int
			if order == 0 {
				idx = d.g.AddAtom(atom, true)
			} else {
				idx = d.g.AddAtom(atom, false)
				d.g.AddBond(prev, idx, float64(order), sym.Atom.Stereo)
				d.g.AttributeBond(prev, idx, d.stacked(tok))
			}
			d.g.AttributeAtom(idx, d.stacked(tok))
			prev = idx
			state = capacity - order

		case grammar.KindBranch:
			digits := d.readIndex(sym.Branch.L)
			if state == stateNone || state <= 1 {
				continue
			}
			q := grammar.IndexFromSymbols(digits...)
			binit := state - 1
			if binit > sym.Branch.Order {
				binit = sym.Branch.Order
			}
			d.pushAttr(tok)
			err := d.derive(q+1, binit, prev)
			d.popAttr()
			if err != nil {
				return err
			}
			state -= binit

		case grammar.KindRing:
			digits := d.readIndex(sym.Ring.L)
			if state == stateNone || state == 0 {
				continue
			}
			q := grammar.IndexFromSymbols(digits...)
			order := int(sym.Ring.Order)
			if order > state {
				order = state
			}
			left := prev - (q + 1)
			if left < 0 {
				left = 0
			}
			d.rings = append(d.rings, ringEntry{
				left:        left,
				right:       prev,
				order:       order,
				leftStereo:  sym.Ring.LeftStereo,
				rightStereo: sym.Ring.RightStereo,
				attrs:       d.stacked(tok),
			})
			state -= order

		case grammar.KindEpsilon:
			if state != 0 {
				state = stateNone
			}

		case grammar.KindNop:
			// Already filtered before derivation; nothing to do.

		default:
			return errors.DecoderErr(errors.ErrCodeSELFIESUnknownSymbol,
				"unknown symbol at derivation position", tok.Text, d.input)
		}
	}
	return nil
}

// readIndex consumes up to l symbols as an index tail.  Missing symbols at
// the end of the stream read as absent digits; unknown symbols read as zero
// inside IndexFromSymbols.  An index tail never fails.
func (d *deriver) readIndex(l int) []string {
	var digits []string
	for i := 0; i < l && d.stream.hasNext(); i++ {
		digits = append(digits, d.stream.next().Text)
	}
	return digits
}

// resolveRings wires the deferred ring bonds.  Each entry is handled
// independently: the order is reduced to the smaller free capacity of the two
// endpoints, entries with a saturated endpoint or a self-loop are skipped,
// and duplicate pairs raise the existing bond order (capped at a triple bond).
func (d *deriver) resolveRings() {
	for _, r := range d.rings {
		if r.left == r.right {
			continue
		}
		freeL := d.g.Atom(r.left).BondingCapacity() - int(d.g.BondCount(r.left))
		freeR := d.g.Atom(r.right).BondingCapacity() - int(d.g.BondCount(r.right))
		if freeL <= 0 || freeR <= 0 {
			continue
		}
		order := r.order
		if order > freeL {
			order = freeL
		}
		if order > freeR {
			order = freeR
		}
		if existing, ok := d.g.GetDirBond(r.left, r.right); ok {
			raised := existing.Order + float64(order)
			if raised > chem.OrderTriple {
				raised = chem.OrderTriple
			}
			d.g.UpdateBondOrder(r.left, r.right, raised)
			continue
		}
		d.g.AddRingBond(r.left, r.right, float64(order), r.leftStereo, r.rightStereo, -1, -1)
		if d.opts.Attribute {
			d.g.AttributeBond(r.left, r.right, r.attrs)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Attribution stack
// ─────────────────────────────────────────────────────────────────────────────

func (d *deriver) pushAttr(tok grammar.Token) {
	if d.opts.Attribute {
		d.attrStack = append(d.attrStack, attr.Attribution{Index: tok.Index, Token: tok.Text})
	}
}

func (d *deriver) popAttr() {
	if d.opts.Attribute && len(d.attrStack) > 0 {
		d.attrStack = d.attrStack[:len(d.attrStack)-1]
	}
}

// stacked returns the active attribution stack plus the triggering token.
func (d *deriver) stacked(tok grammar.Token) []attr.Attribution {
	if !d.opts.Attribute {
		return nil
	}
	out := make([]attr.Attribution, 0, len(d.attrStack)+1)
	out = append(out, d.attrStack...)
	out = append(out, attr.Attribution{Index: tok.Index, Token: tok.Text})
	return out
}

//Personal.AI order the ending
