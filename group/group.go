// Package group partitions a feature source by a discriminating attribute
// field. Each distinct field value becomes one Group: the member ids, their
// aggregate bounding box and a spatial index over the member geometries.
//
// Groups are built once and read-only thereafter.
package group

import (
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/geograph/feature"
	"github.com/hupe1980/geograph/geom"
	"github.com/hupe1980/geograph/spatial"
)

// Group is all features sharing one canonical key, plus the derived spatial
// acceleration structures used by adjacency discovery.
type Group struct {
	// Key is the canonical group key (the vertex name).
	Key string

	// Bounds is the aggregate bounding box over all member geometries.
	Bounds geom.Rect

	// Index answers range queries over the member bounding boxes.
	Index spatial.Index

	// Members holds the feature ids belonging to the group.
	Members *roaring.Bitmap
}

type member struct {
	id     feature.ID
	bounds geom.Rect
}

// Build scans src once and returns one Group per distinct canonical value of
// field, keyed by that value.
//
// It fails if a feature lacks the field or carries non-polygon geometry.
// A group with zero members cannot occur: keys originate from observed
// feature values.
func Build(src feature.Source, field string) (map[string]*Group, error) {
	buckets := make(map[string][]member)

	for f := range src.Features() {
		raw, ok := f.Props[field]
		if !ok {
			return nil, fmt.Errorf("feature %d has no field %q", f.ID, field)
		}

		bounds, err := f.Geometry.Bounds()
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", f.ID, err)
		}

		key := feature.CanonicalKey(raw)
		buckets[key] = append(buckets[key], member{id: f.ID, bounds: bounds})
	}

	groups := make(map[string]*Group, len(buckets))
	for key, members := range buckets {
		groups[key] = build(key, members)
	}

	return groups, nil
}

func build(key string, members []member) *Group {
	agg := members[0].bounds
	var sumDim float64
	for _, m := range members {
		agg = agg.Extend(m.bounds)
		sumDim += max(m.bounds.MaxX-m.bounds.MinX, m.bounds.MaxY-m.bounds.MinY)
	}

	// Cell size tracks the typical member extent so a member maps to a
	// handful of cells rather than one giant or thousands of tiny ones.
	idx := spatial.NewGrid(sumDim / float64(len(members)))

	ids := roaring.New()
	for _, m := range members {
		idx.Insert(m.id, m.bounds)
		ids.Add(uint32(m.id))
	}

	return &Group{Key: key, Bounds: agg, Index: idx, Members: ids}
}

// SortedKeys returns the group keys in lexicographic order. Every stage that
// iterates groups does so in this order to keep runs deterministic.
func SortedKeys(groups map[string]*Group) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
