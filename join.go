package geograph

import (
	"fmt"

	"github.com/hupe1980/geograph/feature"
	"github.com/hupe1980/geograph/graph"
)

// joinAttributes attaches an attribute mapping to every vertex.
//
// For each group key a representative feature is looked up with the equality
// predicate on field: the first feature matching in source order. Every
// schema field of the source is then stored as a tagged value, numeric when
// the raw value parses as a number, text otherwise.
//
// A key with no matching feature is an invariant violation (keys originate
// from observed feature values) and aborts the join.
func joinAttributes(src feature.Source, field string, keys []string, gb *graph.Builder) error {
	fields := src.Fields()

	for _, key := range keys {
		pred, err := feature.Equals(field, key)
		if err != nil {
			return err
		}

		rep, err := feature.QueryFirst(src, pred)
		if err != nil {
			return fmt.Errorf("representative for group %q: %w", key, err)
		}

		attrs := make(map[string]feature.Value, len(fields))
		for _, name := range fields {
			attrs[name] = feature.ParseValue(rep.Props[name])
		}

		gb.SetAttrs(key, attrs)
	}

	return nil
}
