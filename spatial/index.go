// Package spatial provides the spatial index boundary used for candidate
// retrieval: insert a feature by its bounding box, range-query by rectangle.
//
// Results are candidate sets and may be over-inclusive; exactness is
// guaranteed only by the subsequent exact geometry test.
package spatial

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/geograph/feature"
	"github.com/hupe1980/geograph/geom"
)

// Index is the minimal contract the adjacency pipeline needs from a spatial
// index. Implementations need not be safe for concurrent mutation; the
// pipeline builds indices once and only queries them afterwards.
type Index interface {
	// Insert registers a feature id under its bounding box.
	Insert(id feature.ID, bounds geom.Rect)

	// Search returns the ids whose bounding box may intersect rect.
	// The result is owned by the caller.
	Search(rect geom.Rect) *roaring.Bitmap

	// Len returns the number of inserted features.
	Len() int
}

// Grid is a uniform-grid Index: each cell holds a bitmap of the feature ids
// whose bounding box covers it. Queries union the bitmaps of the cells the
// query rectangle touches, so candidates are over-inclusive at cell
// granularity.
type Grid struct {
	cellSize float64
	cells    map[cellKey]*roaring.Bitmap
	count    int
}

type cellKey struct {
	X int64
	Y int64
}

// NewGrid creates a Grid with the given cell size. A non-positive cell size
// falls back to 1.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 || math.IsNaN(cellSize) || math.IsInf(cellSize, 0) {
		cellSize = 1
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey]*roaring.Bitmap),
	}
}

// Insert registers a feature id under every cell its bounding box covers.
func (g *Grid) Insert(id feature.ID, bounds geom.Rect) {
	x0, y0 := g.cell(bounds.MinX, bounds.MinY)
	x1, y1 := g.cell(bounds.MaxX, bounds.MaxY)
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			key := cellKey{X: cx, Y: cy}
			bm := g.cells[key]
			if bm == nil {
				bm = roaring.New()
				g.cells[key] = bm
			}
			bm.Add(uint32(id))
		}
	}
	g.count++
}

// Search returns the union of the cell bitmaps the rectangle touches.
func (g *Grid) Search(rect geom.Rect) *roaring.Bitmap {
	out := roaring.New()
	x0, y0 := g.cell(rect.MinX, rect.MinY)
	x1, y1 := g.cell(rect.MaxX, rect.MaxY)
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			if bm := g.cells[cellKey{X: cx, Y: cy}]; bm != nil {
				out.Or(bm)
			}
		}
	}
	return out
}

// Len returns the number of inserted features.
func (g *Grid) Len() int { return g.count }

func (g *Grid) cell(x, y float64) (int64, int64) {
	return int64(math.Floor(x / g.cellSize)), int64(math.Floor(y / g.cellSize))
}
