package comment

import "strings"

// Mode describes where in the text a walk currently sits.
type Mode int

const (
	ModeOutside Mode = iota
	ModePlain        // inside an ordinary block comment
	ModeMarked       // inside a marker comment; the body is significant
)

// Walker is a resumable forward scan over source text. It skips whitespace
// and line comments, classifies every block-comment delimiter it meets, and
// records the delimiters into the shared Recorder. A walker only ever moves
// forward; lookahead happens on a Clone.
type Walker struct {
	src     string
	rec     *Recorder
	pos     int
	mode    Mode
	wrapped bool // the current plain comment sits inside a marker region
	// plainSkipped counts significant characters fast-forwarded over
	// while outside any marker region.
	plainSkipped int
}

// NewWalker creates a walker at offset 0, outside any comment.
func NewWalker(src string, rec *Recorder) *Walker {
	return &Walker{src: src, rec: rec}
}

func (w *Walker) Pos() int   { return w.pos }
func (w *Walker) Mode() Mode { return w.mode }

// PlainSkipped returns how many significant characters have been
// fast-forwarded over outside any marker region. Comparing the count
// across a "stop on nothing" scan tells whether the skipped stretch was
// marker syntax through and through.
func (w *Walker) PlainSkipped() int { return w.plainSkipped }

// InMarked reports whether the walker currently sits inside a marker
// region, counting an ordinary comment embedded in one.
func (w *Walker) InMarked() bool {
	return w.mode == ModeMarked || (w.mode == ModePlain && w.wrapped)
}

// Clone returns an independent walker at the same position and mode. Both
// walkers keep recording into the same Recorder, so whatever the clone
// discovers ahead stays discovered.
func (w *Walker) Clone() *Walker {
	c := *w
	return &c
}

// Bump advances past one significant character without classifying it.
func (w *Walker) Bump() {
	if w.pos < len(w.src) {
		w.pos++
	}
}

// Skip moves the walker to an already-lexed boundary without classifying
// the skipped text. The mode is unchanged: a token never doubles as a
// comment delimiter. Skip never moves backwards.
func (w *Walker) Skip(to int) {
	if to > len(w.src) {
		to = len(w.src)
	}
	if to > w.pos {
		w.pos = to
	}
}

// Scan advances toward end, skipping whitespace and line comments and
// classifying block-comment delimiters along the way. With stopOnSignificant
// it returns as soon as it reaches a character that is neither whitespace
// nor part of a recognized comment; otherwise ordinary text is skipped like
// whitespace and the scan runs to end. Returns the offset scanning stopped
// at. Scan never fails: malformed delimiter text degrades to ordinary text
// and the walker always advances.
func (w *Walker) Scan(end int, stopOnSignificant bool) int {
	if end > len(w.src) {
		end = len(w.src)
	}
	for w.pos < end {
		if w.mode == ModePlain {
			i := strings.Index(w.src[w.pos:end], "*/")
			if i < 0 {
				w.pos = end
				break
			}
			w.rec.Record(w.pos+i+1, Close)
			w.pos += i + 2
			if w.wrapped {
				w.mode = ModeMarked
				w.wrapped = false
			} else {
				w.mode = ModeOutside
			}
			continue
		}
		c := w.src[w.pos]
		switch {
		case isSpace(c):
			w.pos++
		case c == '/' && w.pos+1 < end && w.src[w.pos+1] == '/':
			w.pos = skipLine(w.src, w.pos+2, end)
		case c == '/' && w.pos+1 < end && w.src[w.pos+1] == '*':
			w.openComment(end)
		case c == '*' && w.pos+1 < end && w.src[w.pos+1] == '/':
			// Closes the marker region when inside one; outside it is a
			// stray close, recorded anyway and skipped.
			w.rec.Record(w.pos+1, Close)
			w.pos += 2
			if w.mode == ModeMarked {
				w.mode = ModeOutside
			}
		default:
			if stopOnSignificant {
				return w.pos
			}
			if !w.InMarked() {
				w.plainSkipped++
			}
			w.pos++
		}
	}
	return w.pos
}

func (w *Walker) openComment(end int) {
	op := ClassifyOpener(w.src, w.pos, end)
	if w.mode == ModeMarked {
		// Block comments cannot nest, so an opener inside a marker
		// region never opens a real comment. A colon-bearing one is a
		// region re-opener (the "*//*::" seam used to embed doc
		// comments): swallow it and keep scanning the body. A plain one
		// starts an embedded comment that runs to the next "*/".
		w.rec.Record(w.pos, OpenPlain)
		if op.Colons == 1 || op.Colons == 2 {
			w.pos = op.After
			return
		}
		w.pos += 2
		w.mode = ModePlain
		w.wrapped = true
		return
	}
	switch op.Colons {
	case 1:
		w.rec.Record(w.pos, OpenMarker)
		w.rec.Record(op.After, SingleTick)
		// The colon stays unconsumed so whoever lexes the region body
		// sees it as a real colon.
		w.pos = op.Tick
		w.mode = ModeMarked
	case 2:
		w.rec.Record(w.pos, OpenMarker)
		w.rec.Record(op.After, DoubleTick)
		w.pos = op.After
		w.mode = ModeMarked
	default:
		// Plain comment; three or more colons is demoted to one.
		w.rec.Record(w.pos, OpenPlain)
		w.pos += 2
		w.mode = ModePlain
		w.wrapped = false
	}
}

// Scan is the standalone classifier entry point: it walks src from start
// toward end, starting outside any comment, and returns the offset it
// stopped at. Delimiter events are recorded into rec.
func Scan(src string, start, end int, stopOnSignificant bool, rec *Recorder) int {
	w := NewWalker(src, rec)
	w.pos = start
	return w.Scan(end, stopOnSignificant)
}
