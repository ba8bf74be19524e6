package bidi

import (
	"strconv"

	"golang.org/x/text/unicode/bidi"
)

// ClassOf returns the Unicode Bidi_Class of r. Classes are reported for
// diagnostic purposes only, they do not take part in Reorder.
func ClassOf(r rune) bidi.Class {
	props, sz := bidi.LookupRune(r)
	if sz == 0 {
		return ILLEGAL
	}
	return props.Class()
}

// ILLEGAL is an in-band value denoting an illegal class.
const ILLEGAL bidi.Class = 999

const claszname = "LRENESETANCSBSWSONBNNSMALControlNumLRORLOLRERLEPDFLRIRLIFSIPDI"

var claszindex = [...]uint8{0, 1, 2, 4, 6, 8, 10, 12, 13, 14, 16, 18, 20, 23, 25, 32, 35, 38, 41, 44, 47, 50, 53, 56, 59, 62}

// ClassString returns the short name of a Bidi_Class, e.g. "AL" for
// Arabic letters.
func ClassString(c bidi.Class) string {
	if c == ILLEGAL {
		return "bidi_class(none)"
	}
	if c > bidi.PDI {
		return "bidi_class(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	return claszname[claszindex[c]:claszindex[c+1]]
}
