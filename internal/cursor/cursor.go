// Package cursor offers forward-only navigation over source text for
// conversion tooling that needs exact character offsets rather than parsed
// tokens. A cursor classifies comments and whitespace as it moves and keeps
// every delimiter it sees in a shared per-file recorder, from which the
// complete marked-comment spans can be reconstructed once the whole file
// has been walked.
package cursor

import (
	"strings"

	"github.com/theScottyJam/BuildlessTypeScript/internal/comment"
)

// Cursor is a resumable, clonable forward cursor. Every public operation is
// monotonic: a request that points behind the current position is answered
// with a no-op false rather than an error, since editor-driven re-scans
// routinely re-request already-visited ranges.
type Cursor struct {
	src string
	rec *comment.Recorder
	w   *comment.Walker
}

// New creates a cursor at offset 0 recording into rec.
func New(src string, rec *comment.Recorder) *Cursor {
	return &Cursor{src: src, rec: rec, w: comment.NewWalker(src, rec)}
}

// Pos returns the current offset.
func (c *Cursor) Pos() int { return c.w.Pos() }

// InMarked reports whether the cursor currently sits inside a marker
// comment region.
func (c *Cursor) InMarked() bool { return c.w.InMarked() }

// Clone returns an independent cursor at the same position and mode.
// Advancing the clone does not move the original, but delimiter discoveries
// the clone makes are still recorded globally, so speculative lookahead
// loses nothing.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{src: c.src, rec: c.rec, w: c.w.Clone()}
}

// AdvanceThroughNode classifies trivia up to nodeStart, then fast-forwards
// across the node text itself, which an earlier token pass has already
// lexed. It reports whether the cursor sits inside a marker comment at
// nodeEnd. An already-visited node is a no-op returning false.
func (c *Cursor) AdvanceThroughNode(nodeStart, nodeEnd int) bool {
	if nodeEnd <= c.w.Pos() {
		return false
	}
	if nodeStart > c.w.Pos() {
		c.w.Scan(nodeStart, true)
	}
	c.w.Scan(nodeEnd, false)
	return c.w.InMarked()
}

// AdvanceTo locates the first significant character before end, then treats
// everything up to end as significant. It returns true only if that
// significant portion lay inside a marker comment. A bound at or behind the
// current position is a no-op returning false.
func (c *Cursor) AdvanceTo(end int) bool {
	if end <= c.w.Pos() {
		return false
	}
	sig := c.w.Scan(end, true)
	in := c.w.InMarked()
	if sig < end {
		// The fast-forward may leave the region partway; any significant
		// character skipped outside it disqualifies the whole portion.
		before := c.w.PlainSkipped()
		c.w.Scan(end, false)
		in = in && c.w.PlainSkipped() == before
	}
	return in
}

// AdvanceToNextSignificant advances past whitespace and comments only,
// stopping at the first significant character or at max. It reports the
// cursor's marker-comment membership where it stopped.
func (c *Cursor) AdvanceToNextSignificant(max int) bool {
	c.w.Scan(max, true)
	return c.w.InMarked()
}

// AdvanceUntilAtChar moves forward, transparent to comments and
// whitespace, until the current character is one of chars. It reports
// whether a match was found before max; on false the cursor rests at max.
func (c *Cursor) AdvanceUntilAtChar(chars string, max int) bool {
	if max > len(c.src) {
		max = len(c.src)
	}
	for {
		pos := c.w.Scan(max, true)
		if pos >= max {
			return false
		}
		if strings.IndexByte(chars, c.src[pos]) >= 0 {
			return true
		}
		c.w.Bump()
	}
}

// AdvanceUntilPastChar behaves like AdvanceUntilAtChar and additionally
// consumes the matched character.
func (c *Cursor) AdvanceUntilPastChar(chars string, max int) bool {
	if !c.AdvanceUntilAtChar(chars, max) {
		return false
	}
	c.w.Bump()
	return true
}

// MarkedSpans reconstructs the complete marked-comment spans recorded so
// far, in document order. The caller is expected to have walked the whole
// file first.
func (c *Cursor) MarkedSpans() []comment.MarkedSpan {
	return c.rec.Spans()
}
