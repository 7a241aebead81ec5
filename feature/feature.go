// Package feature models the vector feature boundary: spatial records with a
// geometry and a raw attribute mapping, the attribute-equality predicate, and
// the lazy query layer the pipeline is built on.
//
// Features and the Source they come from are read-only for the duration of a
// run; all derived state lives in the consuming packages.
package feature

import (
	"iter"

	"github.com/hupe1980/geograph/geom"
)

// ID is the stable per-run identifier of a feature within its source.
type ID uint32

// Feature is an immutable spatial record: a polygon geometry plus the raw
// (string-normalized) attribute mapping as delivered by the source.
type Feature struct {
	ID       ID
	Geometry geom.Polygon
	Props    map[string]string
}

// Source is the boundary to the vector data provider. Implementations must
// yield features in a stable, source-native order and must not be mutated
// during a run.
type Source interface {
	// Features iterates all features of the source in native order.
	// The sequence is finite and restartable per call.
	Features() iter.Seq[*Feature]

	// Fields returns the attribute schema of the source (names only).
	Fields() []string
}

// Set is an in-memory Source backed by a slice, preserving insertion order.
type Set struct {
	features []*Feature
	fields   []string
}

// NewSet creates a Set with the given attribute schema.
func NewSet(fields []string) *Set {
	return &Set{fields: fields}
}

// Add appends a feature to the set.
func (s *Set) Add(f *Feature) {
	s.features = append(s.features, f)
}

// Len returns the number of features in the set.
func (s *Set) Len() int { return len(s.features) }

// Features iterates the set in insertion order.
func (s *Set) Features() iter.Seq[*Feature] {
	return func(yield func(*Feature) bool) {
		for _, f := range s.features {
			if !yield(f) {
				return
			}
		}
	}
}

// Fields returns the attribute schema of the set.
func (s *Set) Fields() []string { return s.fields }

// CanonicalKey normalizes a raw attribute value into the canonical group key
// form: numeric-looking values are rendered through their parsed number so
// "42" and "42.0" name the same vertex.
func CanonicalKey(raw string) string {
	return ParseValue(raw).Canonical()
}
