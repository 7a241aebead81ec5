// Package geojson loads polygon features from a GeoJSON FeatureCollection
// into a feature source the pipeline can consume.
//
// Only Polygon geometries are accepted; the adjacency algorithm requires
// polygon boundary rings. Property values are string-normalized on load and
// typed again (number vs text) at attribute-join time.
package geojson

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/geograph/feature"
	"github.com/hupe1980/geograph/geom"
)

type featureCollection struct {
	Type     string        `json:"type"`
	Features []jsonFeature `json:"features"`
}

type jsonFeature struct {
	Type       string         `json:"type"`
	Geometry   jsonGeometry   `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type jsonGeometry struct {
	Type        string            `json:"type"`
	Coordinates gojson.RawMessage `json:"coordinates"`
}

// Load decodes a GeoJSON FeatureCollection and returns it as a feature set.
// Feature ids are assigned by collection order, starting at 0.
func Load(data []byte) (*feature.Set, error) {
	var fc featureCollection
	if err := gojson.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("decode geojson: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("decode geojson: expected FeatureCollection, got %q", fc.Type)
	}

	// The schema is the union of all property names, gathered once.
	fieldSet := make(map[string]struct{})
	for _, jf := range fc.Features {
		for name := range jf.Properties {
			fieldSet[name] = struct{}{}
		}
	}
	fields := make([]string, 0, len(fieldSet))
	for name := range fieldSet {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	set := feature.NewSet(fields)
	for i, jf := range fc.Features {
		poly, err := polygon(jf.Geometry)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}

		props := make(map[string]string, len(fields))
		for _, name := range fields {
			props[name] = normalize(jf.Properties[name])
		}

		set.Add(&feature.Feature{
			ID:       feature.ID(i), //nolint:gosec
			Geometry: poly,
			Props:    props,
		})
	}

	return set, nil
}

// LoadFile reads and decodes the GeoJSON file at path.
func LoadFile(path string) (*feature.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geojson %s: %w", path, err)
	}

	set, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("load geojson %s: %w", path, err)
	}

	return set, nil
}

func polygon(g jsonGeometry) (geom.Polygon, error) {
	// The geometry type gates coordinate decoding: non-polygon input is a
	// shape error, not a decode error.
	if g.Type != "Polygon" {
		return geom.Polygon{}, &geom.ShapeError{Detail: fmt.Sprintf("geometry type %q", g.Type)}
	}

	var rings [][][]float64
	if err := gojson.Unmarshal(g.Coordinates, &rings); err != nil {
		return geom.Polygon{}, fmt.Errorf("decode polygon coordinates: %w", err)
	}
	if len(rings) == 0 || len(rings[0]) == 0 {
		return geom.Polygon{}, &geom.ShapeError{Detail: "polygon without outer ring"}
	}

	outer := make(geom.Ring, len(rings[0]))
	for i, c := range rings[0] {
		if len(c) < 2 {
			return geom.Polygon{}, &geom.ShapeError{Detail: fmt.Sprintf("position with %d ordinates", len(c))}
		}
		outer[i] = geom.Point{X: c[0], Y: c[1]}
	}

	return geom.Polygon{Outer: outer}, nil
}

// normalize renders a raw GeoJSON property value in its canonical string
// form. Numbers use the shortest round-tripping representation so they stay
// comparable with canonical group keys.
func normalize(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
