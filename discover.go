package geograph

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/geograph/feature"
	"github.com/hupe1980/geograph/graph"
	"github.com/hupe1980/geograph/group"
)

// pairOutcome is the result slot of one unordered group pair. Slots are
// disjoint across pairs, so the parallel scan writes without locking and the
// merge into the graph happens at a single point after all pairs complete.
type pairOutcome struct {
	prefilterHit bool
	exactTests   int
	edge         bool
}

// discover evaluates every unordered group pair (self-pairs included) and
// records the discovered edges on gb.
//
// Per pair: bounding-box prefilter, candidate retrieval from both group
// indices over the overlap rectangle, then exact geometry tests over the
// candidate pairs. Testing stops at the first true intersection; at most one
// symmetric edge is recorded per unordered pair. For self-pairs only
// distinct member pairs are tested, so a self-loop means two members of the
// group touch each other.
//
// Edges are merged in sorted pair order, so the output is deterministic
// regardless of worker scheduling.
func discover(ctx context.Context, groups map[string]*group.Group, features map[feature.ID]*feature.Feature, gb *graph.Builder, workers int) (DiscoverStats, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	keys := group.SortedKeys(groups)

	type pair struct{ k1, k2 string }
	var pairs []pair
	for i := 0; i < len(keys); i++ {
		for j := i; j < len(keys); j++ {
			pairs = append(pairs, pair{k1: keys[i], k2: keys[j]})
		}
	}

	outcomes := make([]pairOutcome, len(pairs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, p := range pairs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = evalPair(groups[p.k1], groups[p.k2], features)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return DiscoverStats{}, err
	}

	var stats DiscoverStats
	stats.Pairs = len(pairs)
	for i, out := range outcomes {
		if out.prefilterHit {
			stats.PrefilterHits++
		}
		stats.ExactTests += out.exactTests
		if out.edge {
			stats.Edges++
			gb.AddEdge(pairs[i].k1, pairs[i].k2)
		}
	}

	return stats, nil
}

// evalPair decides whether an edge exists between the two groups.
func evalPair(g1, g2 *group.Group, features map[feature.ID]*feature.Feature) pairOutcome {
	var out pairOutcome

	// Prefilter: disjoint aggregate bounds cannot produce an edge.
	if !g1.Bounds.Intersects(g2.Bounds) {
		return out
	}
	out.prefilterHit = true

	// The overlap rectangle bounds the exact tests to features plausibly
	// near the shared region rather than the full groups.
	overlap := g1.Bounds.Intersection(g2.Bounds)
	ids1 := g1.Index.Search(overlap)
	ids2 := g2.Index.Search(overlap)

	self := g1.Key == g2.Key

	it1 := ids1.Iterator()
	for it1.HasNext() {
		id1 := feature.ID(it1.Next())
		geom1 := features[id1].Geometry

		it2 := ids2.Iterator()
		for it2.HasNext() {
			id2 := feature.ID(it2.Next())
			if self && id2 <= id1 {
				// A member trivially intersects itself; a self-loop
				// requires two distinct members touching.
				continue
			}

			out.exactTests++
			if geom1.Intersects(features[id2].Geometry) {
				out.edge = true
				return out
			}
		}
	}

	return out
}
