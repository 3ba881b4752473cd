package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theScottyJam/BuildlessTypeScript/internal/comment"
)

func newCursor(src string) *Cursor {
	return New(src, comment.NewRecorder(src))
}

func TestAdvanceThroughNode(t *testing.T) {
	// Leaf nodes in document order, as a parser would supply them.
	src := `a /*:: b */ c`
	c := newCursor(src)

	require.False(t, c.AdvanceThroughNode(0, 1), "a is plain syntax")
	require.True(t, c.AdvanceThroughNode(7, 8), "b lives inside the marker wrapper")
	require.False(t, c.AdvanceThroughNode(12, 13), "c is plain syntax again")

	spans := c.MarkedSpans()
	require.Len(t, spans, 1)
	require.Equal(t, 2, spans[0].Open)
	require.Equal(t, 10, spans[0].Close)
}

func TestAdvanceThroughNodeIdempotent(t *testing.T) {
	src := `a /*:: b */ c`
	c := newCursor(src)

	require.True(t, c.AdvanceThroughNode(7, 8))
	require.False(t, c.AdvanceThroughNode(7, 8), "already-visited node is a no-op")
	require.False(t, c.AdvanceThroughNode(0, 1), "node behind the cursor is a no-op")
	require.Equal(t, 8, c.Pos(), "re-requests must not move the cursor")
}

func TestAdvanceTo(t *testing.T) {
	src := `x /*: T */ y`
	c := newCursor(src)

	require.False(t, c.AdvanceTo(1), "x is plain")
	require.True(t, c.AdvanceTo(7), "the annotation colon and type are marker syntax")
	require.False(t, c.AdvanceTo(7), "bound at the cursor is a no-op")
	require.False(t, c.AdvanceTo(len(src)), "y is plain")
}

func TestAdvanceToRequiresWholePortionInside(t *testing.T) {
	// A bound that crosses the region close picks up significant text
	// outside the region, so the portion no longer counts as marked.
	src := `/*: T */ y`
	c := newCursor(src)
	require.False(t, c.AdvanceTo(len(src)), "y sits outside the region")

	src = `/*: T */`
	c = newCursor(src)
	require.True(t, c.AdvanceTo(len(src)), "nothing significant outside the region")
}

func TestAdvanceToNextSignificant(t *testing.T) {
	src := `  /* note */ /*:: y */`
	c := newCursor(src)

	require.True(t, c.AdvanceToNextSignificant(len(src)), "first significant char is the marker body")
	require.Equal(t, 18, c.Pos())
}

func TestAdvanceUntilAtChar(t *testing.T) {
	src := `a /* = */ b = 1;`
	c := newCursor(src)

	require.True(t, c.AdvanceUntilAtChar("=", len(src)))
	require.Equal(t, 12, c.Pos(), "the = inside the comment is invisible")

	require.True(t, c.AdvanceUntilPastChar("=", len(src)))
	require.Equal(t, 13, c.Pos())

	require.False(t, c.AdvanceUntilAtChar("?", len(src)))
	require.Equal(t, len(src), c.Pos(), "a miss parks the cursor at the bound")
}

func TestCloneLookahead(t *testing.T) {
	src := `a /*:: b */ c`
	c := newCursor(src)
	require.False(t, c.AdvanceThroughNode(0, 1))

	// Speculative lookahead on a clone: the original stays put, but the
	// delimiters the clone saw are recorded for good.
	cl := c.Clone()
	require.True(t, cl.AdvanceThroughNode(7, 8))
	require.Equal(t, 1, c.Pos())
	require.Equal(t, 8, cl.Pos())

	require.True(t, c.AdvanceThroughNode(7, 8), "original retraces the same ground")
	cl2 := c.Clone()
	cl2.AdvanceToNextSignificant(len(src))
	c.AdvanceToNextSignificant(len(src))

	spans := c.MarkedSpans()
	require.Len(t, spans, 1, "re-walked delimiters must not duplicate spans")
}

func TestMarkedSpansRoundTrip(t *testing.T) {
	src := `/*: A */ x /*:: type B = 1; */ y /*: C */`
	c := newCursor(src)
	c.AdvanceTo(len(src))

	spans := c.MarkedSpans()
	require.Len(t, spans, 3)
	for i, sp := range spans {
		require.Greater(t, sp.ColonOffset, sp.Open, "span %d", i)
		require.Greater(t, sp.Close, sp.ColonOffset, "span %d", i)
		if i > 0 {
			require.Greater(t, sp.Open, spans[i-1].Close, "span %d document order", i)
		}
	}
}
