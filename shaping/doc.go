/*
Package shaping resolves contextual forms of Arabic letters.

Every letter of the Arabic block is given one of four visual forms, depending
on whether its immediate neighbours connect:

	previous connects   next connects   form
	        no                no         isolated
	        no                yes        initial
	        yes               yes        medial
	        yes               no         final

Connectivity is decided by package script for the neighbour itself, within a
window of a single rune to either side. Runes outside the Arabic block are
left untouched, but they take part in the context of their neighbours.

The form of a letter is mapped to an output rune by a FormTable. The default
table, IdentityTable, maps every form to the letter itself: shaping does
classify, but it does not substitute presentation forms. Clients which need
glyph substitution may install a table of their own with WithFormTable.

After shaping, a text containing right-to-left characters is reversed as a
whole (see package bidi). Shaping never changes the number of runes.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package shaping

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
