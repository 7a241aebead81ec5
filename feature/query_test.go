package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/geograph/geom"
)

func testSet(t *testing.T) *Set {
	t.Helper()

	set := NewSet([]string{"NAME", "POP"})
	rows := []map[string]string{
		{"NAME": "a", "POP": "10"},
		{"NAME": "b", "POP": "20"},
		{"NAME": "a", "POP": "30"},
	}
	for i, props := range rows {
		set.Add(&Feature{
			ID:       ID(i),
			Geometry: geom.Polygon{Outer: geom.Ring{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}},
			Props:    props,
		})
	}

	return set
}

func TestQueryAll(t *testing.T) {
	set := testSet(t)

	pred, err := Equals("NAME", "a")
	require.NoError(t, err)

	var ids []ID
	for f, err := range QueryAll(set, pred) {
		require.NoError(t, err)
		ids = append(ids, f.ID)
	}

	// Source-native order.
	assert.Equal(t, []ID{0, 2}, ids)
}

func TestQueryAll_Restartable(t *testing.T) {
	set := testSet(t)

	pred, err := Equals("NAME", "b")
	require.NoError(t, err)

	for range 2 {
		var count int
		for _, err := range QueryAll(set, pred) {
			require.NoError(t, err)
			count++
		}
		assert.Equal(t, 1, count)
	}
}

func TestQueryFirst(t *testing.T) {
	set := testSet(t)

	pred, err := Equals("NAME", "a")
	require.NoError(t, err)

	f, err := QueryFirst(set, pred)
	require.NoError(t, err)
	assert.Equal(t, ID(0), f.ID)
}

func TestQueryFirst_NotFound(t *testing.T) {
	set := testSet(t)

	pred, err := Equals("NAME", "missing")
	require.NoError(t, err)

	_, err = QueryFirst(set, pred)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEquals_EmptyField(t *testing.T) {
	_, err := Equals("", "a")
	require.ErrorIs(t, err, ErrEmptyField)

	var pe *PredicateError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "parse", pe.Stage)
}

func TestPredicateMatch_MissingField(t *testing.T) {
	set := testSet(t)

	pred, err := Equals("ZONE", "a")
	require.NoError(t, err)

	_, err = QueryFirst(set, pred)
	require.Error(t, err)

	var pe *PredicateError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "eval", pe.Stage)
	assert.Equal(t, "ZONE", pe.Field)
}

func TestPredicateMatch_NumericCanonicalization(t *testing.T) {
	set := NewSet([]string{"POP"})
	set.Add(&Feature{ID: 0, Props: map[string]string{"POP": "42.0"}})

	// A numeric-looking key matches any raw spelling of the same number.
	pred, err := Equals("POP", "42")
	require.NoError(t, err)

	f, err := QueryFirst(set, pred)
	require.NoError(t, err)
	assert.Equal(t, ID(0), f.ID)
}
