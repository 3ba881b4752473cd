package comment

import "sort"

// Recorder is the per-file accumulator of delimiter events. One Recorder is
// created per scan session and injected into every walker and cursor derived
// from it, clones included, so speculative lookahead still contributes to
// the global record. Offsets are unique per event because distinct delimiter
// kinds occupy disjoint characters.
type Recorder struct {
	src    string
	events map[int]Kind
}

// NewRecorder creates an empty recorder for one source text.
func NewRecorder(src string) *Recorder {
	return &Recorder{src: src, events: make(map[int]Kind)}
}

// Src returns the source text this recorder was created for.
func (r *Recorder) Src() string { return r.src }

// Record stores one delimiter event. Re-recording an offset is a no-op,
// which keeps re-walks over cloned ground idempotent.
func (r *Recorder) Record(off int, k Kind) {
	if _, ok := r.events[off]; !ok {
		r.events[off] = k
	}
}

// Events returns all recorded (offset, kind) pairs in offset order.
func (r *Recorder) Events() []Event {
	out := make([]Event, 0, len(r.events))
	for off, k := range r.events {
		out = append(out, Event{Offset: off, Kind: k})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

// Event is one recorded delimiter.
type Event struct {
	Offset int
	Kind   Kind
}

// MarkedSpan is a reconstructed marker-comment region.
type MarkedSpan struct {
	Open        int // offset of the opening "/*"
	ColonOffset int // offset just past the opener colon(s)
	ColonCount  int // 1 or 2
	// Close is the offset of the final "/" of the matching "*/", or the
	// end of input when the region was never closed.
	Close int
	// ContainedInnerOpener reports that an ordinary "/*" appeared between
	// Open and Close before the real close. Conversion tooling must then
	// remove the opener without disturbing the embedded comment text.
	ContainedInnerOpener bool
	Unterminated         bool
}

// Spans replays every recorded event in offset order and pairs them into
// complete marked-comment spans, returned in document order. The caller is
// expected to have scanned the whole file first; a region still pending at
// the end of the record is emitted as unterminated.
func (r *Recorder) Spans() []MarkedSpan {
	var (
		out      []MarkedSpan
		cur      *MarkedSpan
		inner    bool // an inner plain comment is open within cur
		topPlain bool // an ordinary top-level comment is open
	)
	for _, ev := range r.Events() {
		switch ev.Kind {
		case OpenMarker:
			cur = &MarkedSpan{Open: ev.Offset}
			inner = false
		case SingleTick:
			if cur != nil {
				cur.ColonOffset = ev.Offset
				cur.ColonCount = 1
			}
		case DoubleTick:
			if cur != nil {
				cur.ColonOffset = ev.Offset
				cur.ColonCount = 2
			}
		case OpenPlain:
			if cur == nil {
				topPlain = true
				continue
			}
			cur.ContainedInnerOpener = true
			// A colon-bearing re-opener is swallowed by the region and
			// has no close of its own; a colon-less opener starts an
			// embedded comment that pairs with the next close.
			if op := ClassifyOpener(r.src, ev.Offset, len(r.src)); op.Colons != 1 && op.Colons != 2 {
				inner = true
			}
		case Close:
			switch {
			case topPlain:
				topPlain = false
			case inner:
				inner = false
			case cur != nil:
				cur.Close = ev.Offset
				out = append(out, *cur)
				cur = nil
			}
			// A bare close with nothing open was recorded defensively;
			// it pairs with nothing.
		}
	}
	if cur != nil {
		cur.Close = len(r.src)
		cur.Unterminated = true
		out = append(out, *cur)
	}
	return out
}
