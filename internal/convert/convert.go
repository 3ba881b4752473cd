// Package convert performs the source-to-source surgery between the plain
// form, where richer type syntax hides inside marker comments, and the
// direct form, where the same syntax stands unwrapped. Both directions work
// on exact character offsets: unwrapping re-derives marked-comment spans
// from the raw text, wrapping partitions the file around declared
// marker-only ranges.
package convert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theScottyJam/BuildlessTypeScript/internal/classify"
	"github.com/theScottyJam/BuildlessTypeScript/internal/comment"
	"github.com/theScottyJam/BuildlessTypeScript/internal/scan"
)

// Warning is a non-fatal diagnostic tied to a byte offset. Conversion is
// best-effort on possibly mid-edit source, so problems surface as warnings
// while the output still gets produced.
type Warning struct {
	Offset int
	Msg    string
}

func (w Warning) String() string {
	return fmt.Sprintf("offset %d: %s", w.Offset, w.Msg)
}

// cut is a half-open byte range to drop from the output.
type cut struct{ start, end int }

// Unwrap converts marked source to its direct form: a single-marker
// comment "/*: T */" becomes ": T" and a double-marker comment loses its
// opener and closer, leaving the body in place. Formatting inside the body
// is preserved, including ordinary comments embedded through the
// close-and-reopen seam. Unterminated regions are left untouched and
// reported as warnings.
func Unwrap(src string) (string, []Warning) {
	rec := comment.NewRecorder(src)
	s := scan.New(src, rec)
	for {
		if tok := s.Next(); tok.Kind == scan.EOF {
			break
		}
	}

	var (
		cuts  []cut
		warns []Warning
	)
	for _, sp := range rec.Spans() {
		if sp.Unterminated {
			warns = append(warns, Warning{Offset: sp.Open, Msg: "unterminated marker comment"})
			continue
		}
		openEnd := sp.ColonOffset
		if sp.ColonCount == 1 {
			// Keep the colon: it is the annotation's own colon.
			openEnd = sp.ColonOffset - 1
		}
		cuts = append(cuts, cut{sp.Open, openEnd})
		if sp.ContainedInnerOpener {
			cuts = append(cuts, reopenerCuts(rec, sp)...)
		}
		cuts = append(cuts, cut{sp.Close - 1, sp.Close + 1})
	}
	return apply(src, cuts), warns
}

// reopenerCuts drops the colon-bearing re-openers inside a span, the
// "*//*::" seams that keep a region going past an embedded comment. The
// embedded comment itself, closer included, stays in the output.
func reopenerCuts(rec *comment.Recorder, sp comment.MarkedSpan) []cut {
	var cuts []cut
	for _, ev := range rec.Events() {
		if ev.Offset <= sp.Open || ev.Offset >= sp.Close || ev.Kind != comment.OpenPlain {
			continue
		}
		if op := comment.ClassifyOpener(rec.Src(), ev.Offset, sp.Close); op.Colons == 1 || op.Colons == 2 {
			cuts = append(cuts, cut{ev.Offset, op.After})
		}
	}
	return cuts
}

func apply(src string, cuts []cut) string {
	if len(cuts) == 0 {
		return src
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i].start < cuts[j].start })
	var b strings.Builder
	b.Grow(len(src))
	pos := 0
	for _, c := range cuts {
		if c.start > pos {
			b.WriteString(src[pos:c.start])
		}
		if c.end > pos {
			pos = c.end
		}
	}
	if pos < len(src) {
		b.WriteString(src[pos:])
	}
	return b.String()
}

// Range is a declared marker-only span, as produced by an external parse
// tree walk over the direct form.
type Range struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Wrap converts direct source to the marked form by wrapping every
// declared marker-only range in a double-marker comment. Touching or
// overlapping declarations merge into one wrapper; leading trivia in a
// declaration is left outside it. The body of a wrapper must not contain
// "*/", since block comments cannot nest in the host text.
func Wrap(src string, decls []Range) (string, error) {
	cls := classify.New(src)
	for _, d := range decls {
		cls.DeclareMarkerSyntax(d.Start, d.End)
	}

	var b strings.Builder
	b.Grow(len(src) + 16*len(decls))
	for _, r := range cls.Partition() {
		seg := src[r.Start:r.End]
		if r.Kind != classify.RangeMarker {
			b.WriteString(seg)
			continue
		}
		if i := strings.Index(seg, "*/"); i >= 0 {
			return "", fmt.Errorf("offset %d: marker-bound syntax contains %q; block comments cannot nest", r.Start+i, "*/")
		}
		b.WriteString("/*:: ")
		b.WriteString(seg)
		b.WriteString(" */")
	}
	return b.String(), nil
}
