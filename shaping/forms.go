package shaping

// Form is the visual form of an Arabic letter.
type Form int8

// Visual forms. NoForm is reported for runes which do not take part in shaping.
const (
	NoForm Form = iota - 1
	Isolated
	Initial
	Medial
	Final
)

const formnames = "isolatedinitialmedialfinal"

var formindex = [...]uint8{0, 8, 15, 21, 26}

func (f Form) String() string {
	if f < Isolated || f > Final {
		return "none"
	}
	return formnames[formindex[f]:formindex[f+1]]
}

// JoiningContext tells if the neighbours of a rune connect.
type JoiningContext struct {
	FromPrevious bool // previous rune is a connecting letter
	ToNext       bool // next rune is a connecting letter
}

// FormFor selects the visual form for a joining context.
func FormFor(ctx JoiningContext) Form {
	switch {
	case ctx.FromPrevious && ctx.ToNext:
		return Medial
	case ctx.FromPrevious:
		return Final
	case ctx.ToNext:
		return Initial
	}
	return Isolated
}

// FormTable maps a letter in a given visual form to the rune to output.
type FormTable interface {
	Select(r rune, f Form) rune
}

// FormTableFunc is an adapter to use an ordinary function as a FormTable.
type FormTableFunc func(rune, Form) rune

// Select calls f(r, form).
func (f FormTableFunc) Select(r rune, form Form) rune {
	return f(r, form)
}

// IdentityTable is the default form table. It returns r for every form.
//
// TODO replace by presentation forms (U+FE70..U+FEFF) once glyph
// substitution is a goal; callers currently rely on letters passing through.
var IdentityTable FormTable = identityTable{}

type identityTable struct{}

func (identityTable) Select(r rune, f Form) rune {
	return r
}
