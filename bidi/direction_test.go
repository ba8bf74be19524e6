package bidi

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/bidi"
)

func TestDirection(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	inputs := []string{
		"",
		"Hello World",
		"123 + 456",
		"\u0633\u0644\u0627\u0645",     // Arabic
		"car \u0633\u0644\u0627\u0645", // Latin with Arabic
		"\u0750",                       // Arabic Supplement
		"x\ufb50",                      // Presentation Forms-A
		"x\ufeff",                      // Presentation Forms-B
		"\u05e9\u05dc\u05d5\u05dd",     // Hebrew is not in one of the ranges
	}
	dirs := []Direction{
		LeftToRight, LeftToRight, LeftToRight,
		RightToLeft, RightToLeft, RightToLeft, RightToLeft, RightToLeft,
		LeftToRight,
	}
	for i, input := range inputs {
		if d := DirectionOf([]rune(input)); d != dirs[i] {
			t.Errorf("expected direction of %q to be %s, is %s", input, dirs[i], d)
		}
	}
}

func TestReverse(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, x := range []struct{ in, out string }{
		{"", ""},
		{"a", "a"},
		{"ab", "ba"},
		{"abc", "cba"},
		{"aبc", "cبa"},
	} {
		if r := string(Reverse([]rune(x.in))); r != x.out {
			t.Errorf("expected reverse(%q) to be %q, is %q", x.in, x.out, r)
		}
	}
}

func TestReorder(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	runes, dir := Reorder([]rune("Hello"))
	if dir != LeftToRight || string(runes) != "Hello" {
		t.Errorf("expected 'Hello' to stay unchanged, have %q (%s)", string(runes), dir)
	}
	// whole string is reversed, including the Latin run and the digits
	runes, dir = Reorder([]rune("ab بت 12"))
	if dir != RightToLeft {
		t.Errorf("expected direction to be RightToLeft, is %s", dir)
	}
	if string(runes) != "21 تب ba" {
		t.Errorf("expected string to be reversed as a whole, is %q", string(runes))
	}
	runes, dir = Reorder([]rune{})
	if dir != LeftToRight || len(runes) != 0 {
		t.Errorf("expected empty input to yield empty LeftToRight output")
	}
}

func TestClassString(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if s := ClassString(ClassOf('a')); s != "L" {
		t.Errorf("expected class of 'a' to be L, is %s", s)
	}
	if s := ClassString(ClassOf(0x0628)); s != "AL" {
		t.Errorf("expected class of BEH to be AL, is %s", s)
	}
	if s := ClassString(ClassOf(0x05d0)); s != "R" {
		t.Errorf("expected class of ALEF (Hebrew) to be R, is %s", s)
	}
	if s := ClassString(bidi.PDI); s != "PDI" {
		t.Errorf("expected name of PDI to be PDI, is %s", s)
	}
	if s := ClassString(ILLEGAL); s != "bidi_class(none)" {
		t.Errorf("expected name of illegal class to be bidi_class(none), is %s", s)
	}
}
