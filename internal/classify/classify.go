// Package classify merges span declarations from an external parse-tree
// walk into a single gap-free partition of a file. Callers declare which
// parsed spans are marker-only syntax; which constructs qualify is the tree
// walk's business, not this package's.
package classify

import (
	"sort"

	"github.com/theScottyJam/BuildlessTypeScript/internal/comment"
)

// RangeKind classifies a partition range.
type RangeKind int

const (
	RangePlain RangeKind = iota
	RangeMarker
	RangeWhitespace
)

func (k RangeKind) String() string {
	switch k {
	case RangePlain:
		return "plain"
	case RangeMarker:
		return "marker"
	case RangeWhitespace:
		return "whitespace"
	}
	return "unknown"
}

// Range is a half-open [Start, End) byte range of one kind.
type Range struct {
	Start int
	End   int
	Kind  RangeKind
}

// Classifier accumulates marker-syntax declarations over one source text.
type Classifier struct {
	src    string
	marker []Range
	ws     []Range
}

// New creates a classifier for src.
func New(src string) *Classifier {
	return &Classifier{src: src}
}

// DeclareMarkerSyntax records that the parsed span [start, end) is
// marker-only syntax. Loosely bounded nodes may drag leading trivia along;
// the declaration is re-scanned so that any leading whitespace or comments
// are recorded as a whitespace range instead of being wrapped as syntax.
func (c *Classifier) DeclareMarkerSyntax(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(c.src) {
		end = len(c.src)
	}
	if start >= end {
		return
	}
	real := comment.Scan(c.src, start, end, true, comment.NewRecorder(c.src))
	if real > start {
		c.ws = append(c.ws, Range{Start: start, End: real, Kind: RangeWhitespace})
	}
	if real < end {
		c.marker = append(c.marker, Range{Start: real, End: end, Kind: RangeMarker})
	}
}

// Partition produces the fully merged partition of the whole file: sorted,
// non-overlapping ranges whose union covers [0, len(src)) exactly once.
// Overlapping or touching marker ranges merge into one; declared whitespace
// gaps surface as whitespace ranges; everything left over is plain syntax.
func (c *Classifier) Partition() []Range {
	markers := merge(c.marker, RangeMarker)
	ws := merge(c.ws, RangeWhitespace)

	var out []Range
	emitGap := func(from, to int) {
		for _, w := range ws {
			if w.End <= from || w.Start >= to {
				continue
			}
			ws, we := w.Start, w.End
			if ws < from {
				ws = from
			}
			if we > to {
				we = to
			}
			if ws > from {
				out = append(out, Range{Start: from, End: ws, Kind: RangePlain})
			}
			out = append(out, Range{Start: ws, End: we, Kind: RangeWhitespace})
			from = we
		}
		if from < to {
			out = append(out, Range{Start: from, End: to, Kind: RangePlain})
		}
	}

	pos := 0
	for _, m := range markers {
		if m.End <= pos {
			continue
		}
		if m.Start < pos {
			m.Start = pos
		}
		if m.Start > pos {
			emitGap(pos, m.Start)
		}
		out = append(out, m)
		pos = m.End
	}
	if pos < len(c.src) {
		emitGap(pos, len(c.src))
	}
	return out
}

// merge sorts ranges by start and coalesces overlapping or touching ones.
func merge(in []Range, kind RangeKind) []Range {
	if len(in) == 0 {
		return nil
	}
	sorted := make([]Range, len(in))
	copy(sorted, in)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	out := sorted[:1]
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r.Start <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	for i := range out {
		out[i].Kind = kind
	}
	return out
}
