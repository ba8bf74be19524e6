/*
Package script classifies code-points of the Arabic script.

The classification is deliberately coarse. A code-point either is or is not
a member of the Arabic block, and an Arabic letter either connects or does
not. The joining types of ArabicShaping.txt (right-joining, dual-joining,
join-causing, transparent) are not modelled.

All predicates depend on the code-point only and are safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package script

import (
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/rangetable"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Arabic is the Arabic block U+0600..U+06FF.
var Arabic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0600, 0x06ff, 1},
	},
}

// ArabicLetters is the range of Arabic base letters U+0621 (HAMZA) to
// U+064A (YEH). Letters in this range are candidates for connecting
// to their neighbours.
var ArabicLetters = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0621, 0x064a, 1},
	},
}

// NonConnecting holds the letters which never connect to a following letter:
// ALEF, DAL, THAL, REH, ZAIN and WAW.
var NonConnecting = rangetable.New(
	'ا', // ARABIC LETTER ALEF
	'د', // ARABIC LETTER DAL
	'ذ', // ARABIC LETTER THAL
	'ر', // ARABIC LETTER REH
	'ز', // ARABIC LETTER ZAIN
	'و', // ARABIC LETTER WAW
)

// rtlSupplements are the ranges besides the Arabic block which mark a text as
// right-to-left.
var rtlSupplements = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0750, 0x077f, 1}, // Arabic Supplement
		{0xfb50, 0xfdff, 1}, // Arabic Presentation Forms-A
		{0xfe70, 0xfeff, 1}, // Arabic Presentation Forms-B
	},
}

// RTL is the union of all ranges which flag a text as right-to-left.
var RTL = rangetable.Merge(Arabic, rtlSupplements)

// InArabicBlock returns true if r is a member of the Arabic block U+0600..U+06FF.
// Only runes of this block take part in shaping.
func InArabicBlock(r rune) bool {
	return unicode.Is(Arabic, r)
}

// IsConnecting returns true if r is an Arabic letter which connects to
// its neighbours, i.e. a letter in U+0621..U+064A which is not contained in
// NonConnecting.
func IsConnecting(r rune) bool {
	return unicode.Is(ArabicLetters, r) && !unicode.Is(NonConnecting, r)
}

// IsRTL returns true if r is contained in one of the right-to-left ranges:
//
//   U+0600..U+06FF  Arabic
//   U+0750..U+077F  Arabic Supplement
//   U+FB50..U+FDFF  Arabic Presentation Forms-A
//   U+FE70..U+FEFF  Arabic Presentation Forms-B
//
func IsRTL(r rune) bool {
	return unicode.Is(RTL, r)
}

// Classification bundles the properties of a single rune. It is meant for
// diagnostics; shaping itself uses the predicates directly.
type Classification struct {
	Rune       rune
	Arabic     bool // in the Arabic block
	Connecting bool // connects to its neighbours
	RTL        bool // in one of the right-to-left ranges
}

// Classify returns the classification of r.
func Classify(r rune) Classification {
	c := Classification{
		Rune:       r,
		Arabic:     InArabicBlock(r),
		Connecting: IsConnecting(r),
		RTL:        IsRTL(r),
	}
	tracer().Debugf("classify %#U: arabic=%v, connecting=%v, rtl=%v", r, c.Arabic, c.Connecting, c.RTL)
	return c
}
