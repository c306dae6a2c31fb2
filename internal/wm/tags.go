package wm

// NumTags is the number of workspace tags ("bitmask
// over the nine tags"). TagAll has every bit set; actionView substitutes
// it for an empty mask, so a view binding with no tag shows every tag.
const NumTags = 9

const TagAll uint32 = (1 << NumTags) - 1

// Arg is the tagged-union-by-convention action payload, per a design note,
// expressed as a Go discriminated union: exactly
// one of the typed fields is meaningful for a given action, selected
// by the action function itself (not by a Kind tag) the same way
// dwm's C union relies on each function only reading the member it
// expects.
type Arg struct {
	UInt  uint32  // tag/view/toggletag/toggleview masks
	Int   int     // focusstack/focusmon/tagmon direction (+1/-1)
	Float float64 // setmfact delta or absolute value
	Str   []string // spawn argv
	Layout *Layout // setlayout target (nil means "toggle")
}
