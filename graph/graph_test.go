package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/geograph/feature"
)

func TestBuilder(t *testing.T) {
	b := NewBuilder([]string{"a", "b", "c"})

	b.AddEdge("a", "b")
	b.SetAttrs("a", map[string]feature.Value{"POP": feature.Number(10)})

	g := b.Finalize()
	require.Len(t, g.Vertices, 3)

	// Symmetric edge.
	assert.Equal(t, []string{"b"}, g.Vertices["a"].Edges)
	assert.Equal(t, []string{"a"}, g.Vertices["b"].Edges)
	assert.Empty(t, g.Vertices["c"].Edges)

	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "a"))
	assert.False(t, g.HasEdge("a", "c"))
	assert.False(t, g.HasEdge("missing", "a"))

	assert.Equal(t, map[string]feature.Value{"POP": feature.Number(10)}, g.Vertices["a"].Attrs)
}

func TestBuilder_SelfLoop(t *testing.T) {
	b := NewBuilder([]string{"z"})
	b.AddEdge("z", "z")

	g := b.Finalize()

	// A self-loop lands twice in the vertex's own multiset.
	assert.Equal(t, []string{"z", "z"}, g.Vertices["z"].Edges)
	assert.True(t, g.HasEdge("z", "z"))
	assert.Equal(t, 2, g.Degree("z"))
}

func TestBuilder_DuplicateEdges(t *testing.T) {
	b := NewBuilder([]string{"a", "b"})
	b.AddEdge("a", "b")
	b.AddEdge("a", "b")

	g := b.Finalize()

	// Edges form a multiset; duplicates are preserved.
	assert.Equal(t, []string{"b", "b"}, g.Vertices["a"].Edges)
	assert.Equal(t, 2, g.Degree("a"))
}

func TestGraphKeys(t *testing.T) {
	b := NewBuilder([]string{"c", "a", "b"})
	g := b.Finalize()

	assert.Equal(t, []string{"a", "b", "c"}, g.Keys())
	assert.Equal(t, 0, g.Degree("missing"))
}
