// Package geograph derives an attributed, undirected adjacency graph from a
// collection of polygon features grouped by a discriminating attribute field.
//
// Every distinct field value becomes a vertex, and an edge is recorded
// between two vertices whenever any member geometry of one group touches or
// overlaps any member geometry of the other. The result is persisted as a
// single self-describing snapshot.
//
// # Quick Start
//
//	src, _ := geojson.LoadFile("regions.geojson")
//	err := geograph.Run(ctx, geograph.Config{
//	    Source: src,
//	    Field:  "NAME",
//	    Output: "regions.graph",
//	})
//
// Or keep the graph in memory:
//
//	g, _ := geograph.New(src, "NAME").Build(ctx)
//	for _, key := range g.Keys() {
//	    fmt.Println(key, g.Vertices[key].Edges)
//	}
//
// # Pipeline
//
// The run is a single batch pass with strictly downstream data flow:
//
//	query -> group indexing -> adjacency discovery -> attribute join -> export
//
// Discovery evaluates every unordered group pair (self-pairs included; a
// group whose own members touch gets a self-loop) through a two-level
// spatial filter: a bounding-box prefilter, candidate retrieval from the
// per-group spatial indices over the overlap rectangle, and an exact
// geometry test that stops at the first intersecting candidate pair. At most
// one edge is recorded per unordered pair.
//
// Pair evaluations are independent and run on a bounded worker group; edge
// writes are merged deterministically after all pairs complete. Any failure
// aborts the run; there is no partial-success mode.
package geograph
