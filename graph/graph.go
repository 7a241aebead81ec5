// Package graph holds the attributed, undirected adjacency graph the
// pipeline produces, and the mutable builder the pipeline stages write
// through.
//
// Edges are stored as adjacency multisets: duplicates and self-loops are
// legal and preserved.
package graph

import (
	"sort"

	"github.com/hupe1980/geograph/feature"
)

// Vertex is one graph vertex: a group key, its adjacency multiset and the
// attribute mapping taken from the group's representative feature.
type Vertex struct {
	Key   string                   `json:"key"`
	Edges []string                 `json:"edges,omitempty"`
	Attrs map[string]feature.Value `json:"attrs,omitempty"`
}

// Graph maps group keys to vertices. Once assembled it is never mutated;
// treat it as immutable.
type Graph struct {
	Vertices map[string]*Vertex `json:"vertices"`
}

// Keys returns the vertex keys in lexicographic order.
func (g *Graph) Keys() []string {
	keys := make([]string, 0, len(g.Vertices))
	for k := range g.Vertices {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasEdge reports whether at least one edge connects a and b.
func (g *Graph) HasEdge(a, b string) bool {
	v, ok := g.Vertices[a]
	if !ok {
		return false
	}
	for _, e := range v.Edges {
		if e == b {
			return true
		}
	}
	return false
}

// Degree returns the number of adjacency entries of key, counting
// duplicates. A self-loop contributes two.
func (g *Graph) Degree(key string) int {
	if v, ok := g.Vertices[key]; ok {
		return len(v.Edges)
	}
	return 0
}

// Builder is the single mutable graph under construction. It is written by
// the discovering and joining passes and replaced by an immutable Graph at
// the assembly boundary. Not safe for concurrent use; the pipeline
// serializes all writes.
type Builder struct {
	vertices map[string]*Vertex
}

// NewBuilder creates a builder with one empty vertex per key.
func NewBuilder(keys []string) *Builder {
	vertices := make(map[string]*Vertex, len(keys))
	for _, k := range keys {
		vertices[k] = &Vertex{Key: k}
	}
	return &Builder{vertices: vertices}
}

// AddEdge records a symmetric edge: b joins a's multiset and a joins b's.
// For a self-loop (a == b) the key is appended twice to its own multiset.
func (b *Builder) AddEdge(key1, key2 string) {
	b.vertices[key1].Edges = append(b.vertices[key1].Edges, key2)
	b.vertices[key2].Edges = append(b.vertices[key2].Edges, key1)
}

// SetAttrs attaches the attribute mapping to the vertex.
func (b *Builder) SetAttrs(key string, attrs map[string]feature.Value) {
	b.vertices[key].Attrs = attrs
}

// Finalize returns the assembled Graph. The builder must not be used
// afterwards.
func (b *Builder) Finalize() *Graph {
	g := &Graph{Vertices: b.vertices}
	b.vertices = nil
	return g
}
