package geograph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/geograph/feature"
	"github.com/hupe1980/geograph/geom"
	"github.com/hupe1980/geograph/graph"
	"github.com/hupe1980/geograph/group"
)

func buildGroups(t *testing.T, src feature.Source, field string) (map[string]*group.Group, map[feature.ID]*feature.Feature) {
	t.Helper()

	groups, err := group.Build(src, field)
	require.NoError(t, err)

	features := make(map[feature.ID]*feature.Feature)
	for f := range src.Features() {
		features[f.ID] = f
	}

	return groups, features
}

// Disjoint groups are discarded by the bounding-box prefilter without any
// exact geometry test.
func TestDiscover_PrefilterSkipsDisjoint(t *testing.T) {
	src := newSource([]string{"NAME"}, []row{
		{poly: square(0, 0, 1, 1), props: map[string]string{"NAME": "a"}},
		{poly: square(100, 100, 101, 101), props: map[string]string{"NAME": "b"}},
	})

	groups, features := buildGroups(t, src, "NAME")
	gb := graph.NewBuilder(group.SortedKeys(groups))

	stats, err := discover(context.Background(), groups, features, gb, 1)
	require.NoError(t, err)

	// 1 cross pair + 2 self-pairs; only the self-pairs pass the prefilter
	// and they test nothing (single members).
	assert.Equal(t, 3, stats.Pairs)
	assert.Equal(t, 2, stats.PrefilterHits)
	assert.Equal(t, 0, stats.ExactTests)
	assert.Equal(t, 0, stats.Edges)

	g := gb.Finalize()
	assert.False(t, g.HasEdge("a", "b"))
}

// Both members of group a intersect b's member, yet only one a-b edge is
// recorded: testing stops at the first true intersection per pair.
func TestDiscover_StopsAtFirstHit(t *testing.T) {
	src := newSource([]string{"NAME"}, []row{
		{poly: square(0, 0, 2, 2), props: map[string]string{"NAME": "a"}},
		{poly: square(0, 2, 2, 4), props: map[string]string{"NAME": "a"}},
		{poly: square(1, 1, 3, 3), props: map[string]string{"NAME": "b"}},
	})

	groups, features := buildGroups(t, src, "NAME")
	gb := graph.NewBuilder(group.SortedKeys(groups))

	stats, err := discover(context.Background(), groups, features, gb, 1)
	require.NoError(t, err)

	g := gb.Finalize()

	// a's own members share an edge, so the a-a self-pair also hits.
	assert.Equal(t, []string{"a", "a", "b"}, g.Vertices["a"].Edges)
	assert.Equal(t, []string{"a"}, g.Vertices["b"].Edges)
	assert.Equal(t, 2, stats.Edges)
}

func TestEvalPair_SelfPairSkipsIdenticalMember(t *testing.T) {
	src := newSource([]string{"NAME"}, []row{
		{poly: square(0, 0, 1, 1), props: map[string]string{"NAME": "z"}},
	})

	groups, features := buildGroups(t, src, "NAME")

	out := evalPair(groups["z"], groups["z"], features)
	assert.True(t, out.prefilterHit)
	// The only candidate pair is the member with itself, which is skipped.
	assert.Equal(t, 0, out.exactTests)
	assert.False(t, out.edge)
}

func TestEvalPair_Overlap(t *testing.T) {
	src := newSource([]string{"NAME"}, []row{
		{poly: square(0, 0, 2, 2), props: map[string]string{"NAME": "a"}},
		{poly: square(1, 1, 3, 3), props: map[string]string{"NAME": "b"}},
	})

	groups, features := buildGroups(t, src, "NAME")

	out := evalPair(groups["a"], groups["b"], features)
	assert.True(t, out.prefilterHit)
	assert.True(t, out.edge)
	assert.Equal(t, 1, out.exactTests)
}

func TestEvalPair_BoundsTouchButGeometriesDisjoint(t *testing.T) {
	// Triangle and square whose bounding boxes overlap while the shapes
	// stay apart: no edge, but the exact test must have run.
	src := newSource([]string{"NAME"}, []row{
		{
			poly: geom.Polygon{Outer: geom.Ring{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}}},
			props: map[string]string{"NAME": "tri"},
		},
		{poly: square(3, 3, 4, 4), props: map[string]string{"NAME": "sq"}},
	})

	groups, features := buildGroups(t, src, "NAME")

	out := evalPair(groups["tri"], groups["sq"], features)
	assert.True(t, out.prefilterHit)
	assert.GreaterOrEqual(t, out.exactTests, 1)
	assert.False(t, out.edge)
}
