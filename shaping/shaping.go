package shaping

import (
	"github.com/npillmayer/reelshape/bidi"
	"github.com/npillmayer/reelshape/script"
)

// Shaper shapes Arabic text with a given form table. The zero value is not
// usable; create shapers with New. A Shaper holds no mutable state and may be
// shared between goroutines.
type Shaper struct {
	table FormTable
}

// Option configures a Shaper.
type Option func(*Shaper)

// WithFormTable sets the form table to map visual forms to output runes.
// A nil table selects IdentityTable.
func WithFormTable(table FormTable) Option {
	return func(sh *Shaper) {
		if table == nil {
			table = IdentityTable
		}
		sh.table = table
	}
}

// New creates a Shaper. Without options, the Shaper uses IdentityTable.
func New(opts ...Option) *Shaper {
	sh := &Shaper{table: IdentityTable}
	for _, opt := range opts {
		opt(sh)
	}
	return sh
}

var defaultShaper = New()

// Shape shapes text with IdentityTable and brings it into visual order.
//
// Every rune of the Arabic block is classified by its neighbours and mapped
// to its visual form. If the result contains a right-to-left character, it is
// reversed as a whole. The result has exactly as many runes as text.
func Shape(text string) string {
	return defaultShaper.Shape(text)
}

// ShapeRunes shapes runes with IdentityTable, without reordering.
func ShapeRunes(runes []rune) []rune {
	return defaultShaper.ShapeRunes(runes)
}

// Shape shapes text and brings it into visual order.
func (sh *Shaper) Shape(text string) string {
	if text == "" {
		return text
	}
	shaped := sh.ShapeRunes([]rune(text))
	shaped, dir := bidi.Reorder(shaped)
	tracer().Debugf("shaped %d runes, direction is %s", len(shaped), dir)
	return string(shaped)
}

// ShapeRunes maps every rune of the Arabic block to the output rune for its
// visual form. Other runes are copied unchanged. ShapeRunes does not reorder,
// and it does not modify runes; the result is a new slice of equal length.
func (sh *Shaper) ShapeRunes(runes []rune) []rune {
	shaped := make([]rune, len(runes))
	for i, r := range runes {
		if !script.InArabicBlock(r) {
			shaped[i] = r
			continue
		}
		f := FormFor(Context(runes, i))
		shaped[i] = sh.table.Select(r, f)
		tracer().Debugf("%#U at %d is %s", r, i, f)
	}
	return shaped
}

// Context computes the joining context of the rune at position i.
// A neighbour counts as connecting if it is itself a connecting letter
// (see script.IsConnecting), regardless of the rune at position i.
// Positions outside of runes have no neighbours.
func Context(runes []rune, i int) JoiningContext {
	var ctx JoiningContext
	if i < 0 || i >= len(runes) {
		return ctx
	}
	if i > 0 {
		ctx.FromPrevious = script.IsConnecting(runes[i-1])
	}
	if i+1 < len(runes) {
		ctx.ToNext = script.IsConnecting(runes[i+1])
	}
	return ctx
}

// Forms returns the visual form for every rune of text, in logical order.
// Runes outside the Arabic block get NoForm.
func Forms(text string) []Form {
	runes := []rune(text)
	forms := make([]Form, len(runes))
	for i, r := range runes {
		if !script.InArabicBlock(r) {
			forms[i] = NoForm
			continue
		}
		forms[i] = FormFor(Context(runes, i))
	}
	return forms
}
