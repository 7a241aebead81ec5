package geojson

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/geograph"
	"github.com/hupe1980/geograph/feature"
	"github.com/hupe1980/geograph/geom"
)

const sample = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]},
      "properties": {"NAME": "a", "POP": 42}
    },
    {
      "type": "Feature",
      "geometry": {"type": "Polygon", "coordinates": [[[1,1],[2,1],[2,2],[1,2],[1,1]]]},
      "properties": {"NAME": "b", "POP": 7.5}
    }
  ]
}`

func TestLoad(t *testing.T) {
	set, err := Load([]byte(sample))
	require.NoError(t, err)

	require.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"NAME", "POP"}, set.Fields())

	var features []*feature.Feature
	for f := range set.Features() {
		features = append(features, f)
	}

	require.Len(t, features, 2)
	assert.Equal(t, feature.ID(0), features[0].ID)
	assert.Equal(t, "a", features[0].Props["NAME"])
	assert.Equal(t, "42", features[0].Props["POP"])
	assert.Equal(t, "7.5", features[1].Props["POP"])

	bounds, err := features[0].Geometry.Bounds()
	require.NoError(t, err)
	assert.Equal(t, geom.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, bounds)
}

func TestLoad_NonPolygon(t *testing.T) {
	data := `{
	  "type": "FeatureCollection",
	  "features": [
	    {
	      "type": "Feature",
	      "geometry": {"type": "Point", "coordinates": [0, 0]},
	      "properties": {"NAME": "a"}
	    }
	  ]
	}`

	_, err := Load([]byte(data))
	require.ErrorIs(t, err, geom.ErrNoRing)
}

func TestLoad_NotACollection(t *testing.T) {
	_, err := Load([]byte(`{"type": "Feature"}`))
	require.ErrorContains(t, err, "FeatureCollection")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.geojson")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	set, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	// The loaded set feeds the pipeline end to end.
	g, err := geograph.New(set, "NAME").Build(context.Background())
	require.NoError(t, err)
	assert.True(t, g.HasEdge("a", "b"))
	assert.Equal(t, feature.Number(42), g.Vertices["a"].Attrs["POP"])
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", normalize(nil))
	assert.Equal(t, "x", normalize("x"))
	assert.Equal(t, "42", normalize(float64(42)))
	assert.Equal(t, "7.5", normalize(7.5))
	assert.Equal(t, "true", normalize(true))
}
