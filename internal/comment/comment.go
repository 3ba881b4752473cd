// Package comment recognizes and classifies block-comment delimiters in
// source text. A block comment whose opener is followed (optionally after
// ASCII spaces) by one or two colons is a marker comment: its body is real
// syntax for a comment-aware reader, while a comment-oblivious runtime
// still sees an ordinary comment.
package comment

// Kind classifies a recorded delimiter event.
type Kind int

const (
	// OpenPlain is the "/*" of an ordinary block comment, including a
	// stray opener seen inside a marker region.
	OpenPlain Kind = iota
	// OpenMarker is the "/*" of a single- or double-marker comment.
	OpenMarker
	// SingleTick marks a one-colon opener. Recorded just past the colon;
	// the colon itself stays available as a real character.
	SingleTick
	// DoubleTick marks a two-colon opener, recorded just past both colons.
	DoubleTick
	// Close is a "*/", recorded at its final "/" character.
	Close
)

func (k Kind) String() string {
	switch k {
	case OpenPlain:
		return "open-plain"
	case OpenMarker:
		return "open-marker"
	case SingleTick:
		return "single-marker-tick"
	case DoubleTick:
		return "double-marker-tick"
	case Close:
		return "close"
	}
	return "unknown"
}

// Opener describes the colon shape of a block-comment opener.
type Opener struct {
	Colons int // 0 = plain, 1 or 2 = marker, 3 = three or more (unrecognized)
	Tick   int // offset of the first colon, when Colons is 1 or 2
	After  int // first offset past the opener characters and colons
}

// ClassifyOpener inspects the characters following the "/*" at `at`,
// skipping ASCII spaces, and counts consecutive colons. Three or more
// colons are not a recognized marker shape and report as 3.
func ClassifyOpener(src string, at, end int) Opener {
	j := at + 2
	for j < end && src[j] == ' ' {
		j++
	}
	k := j
	for k < end && k-j < 3 && src[k] == ':' {
		k++
	}
	switch k - j {
	case 1:
		return Opener{Colons: 1, Tick: j, After: j + 1}
	case 2:
		return Opener{Colons: 2, Tick: j, After: j + 2}
	case 0:
		return Opener{After: at + 2}
	default:
		return Opener{Colons: 3, After: at + 2}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// skipLine advances past the remainder of a line comment, leaving the
// terminating newline for ordinary whitespace handling.
func skipLine(src string, pos, end int) int {
	for pos < end && src[pos] != '\n' {
		pos++
	}
	return pos
}
