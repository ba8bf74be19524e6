package bidi

import (
	"github.com/npillmayer/reelshape/script"
)

// Direction is the visual writing direction of a piece of text.
type Direction int8

// Directions of text.
const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	}
	return "Direction(?)"
}

// DirectionOf decides the direction of a sequence of runes. It is RightToLeft
// as soon as a single rune is contained in one of the right-to-left ranges
// of package script, LeftToRight otherwise.
//
// There are no embedding levels: a string containing one Arabic letter within
// a Latin sentence is RightToLeft as a whole.
func DirectionOf(runes []rune) Direction {
	for _, r := range runes {
		if script.IsRTL(r) {
			return RightToLeft
		}
	}
	return LeftToRight
}

// Reverse reverses runes in place and returns it.
func Reverse(runes []rune) []rune {
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return runes
}

// Reorder brings runes from logical order into visual order. If the runes'
// direction is RightToLeft, runes will be reversed as a whole (in place),
// otherwise they are returned unchanged. The decision is made once for the
// complete sequence; runs of different direction are not treated separately.
func Reorder(runes []rune) ([]rune, Direction) {
	dir := DirectionOf(runes)
	if dir == RightToLeft {
		T().Debugf("reorder: reversing %d runes", len(runes))
		return Reverse(runes), dir
	}
	return runes, dir
}
