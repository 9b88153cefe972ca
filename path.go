package seamcarver

import "math"

// boundary classifies a cell by its position relative to the grid edges.
// It decides which of the three cells below are reachable during relaxation.
type boundary uint8

const (
	interior  boundary = iota
	firstCol           // x-1 is out of range
	lastCol            // x+1 is out of range
	singleCol          // only x itself is reachable
	lastRow            // nothing below
)

func classify(x, y, width, height int) boundary {
	switch {
	case y == height-1:
		return lastRow
	case width == 1:
		return singleCol
	case x == 0:
		return firstCol
	case x == width-1:
		return lastCol
	default:
		return interior
	}
}

// coord is a predecessor entry pointing one row up.
type coord struct {
	y, x  int
	valid bool
}

// pathTable holds the cumulative distances and the predecessors
// computed over one pass of the cost matrix.
type pathTable struct {
	dist *table[float64]
	edge *table[coord]
}

func newPathTable(width, height int) *pathTable {
	pt := &pathTable{
		dist: newTable[float64](width, height),
		edge: newTable[coord](width, height),
	}
	for y := 0; y < height; y++ {
		row := pt.dist.row(y)
		for x := range row {
			if y == 0 {
				row[x] = BorderEnergy
			} else {
				row[x] = math.Inf(1)
			}
		}
	}
	return pt
}

// relax updates the distance of (u, w) if reaching it through (y, x) is strictly cheaper.
// Because of the strict comparison the first discovered parent wins ties,
// which under left to right relaxation means the leftmost one.
func (pt *pathTable) relax(cost *table[float64], y, x, u, w int) {
	d := pt.dist.at(x, y) + cost.at(w, u)
	if d < pt.dist.at(w, u) {
		pt.dist.set(w, u, d)
		pt.edge.set(w, u, coord{y: y, x: x, valid: true})
	}
}

// shortestPath computes the minimum cost top to bottom path over the cost matrix.
// It returns the column index of the path in every row together with its total cost.
//
// The search works in the following way:
//   - the first row of the distance table is seeded with BorderEnergy,
//     the remaining rows with +Inf;
//   - each row is relaxed into the row below, visiting the cells from left to right;
//   - the cheapest cell of the last row is selected, the lowest column winning ties;
//   - the predecessors are walked back up to the first row.
func shortestPath(cost *table[float64]) (Seam, float64) {
	width, height := cost.width, cost.height
	pt := newPathTable(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch classify(x, y, width, height) {
			case lastRow:
			case singleCol:
				pt.relax(cost, y, x, y+1, x)
			case firstCol:
				pt.relax(cost, y, x, y+1, x)
				pt.relax(cost, y, x, y+1, x+1)
			case lastCol:
				pt.relax(cost, y, x, y+1, x-1)
				pt.relax(cost, y, x, y+1, x)
			default:
				pt.relax(cost, y, x, y+1, x-1)
				pt.relax(cost, y, x, y+1, x)
				pt.relax(cost, y, x, y+1, x+1)
			}
		}
	}

	last := pt.dist.row(height - 1)
	minX, minDist := 0, last[0]
	for x := 1; x < width; x++ {
		if last[x] < minDist {
			minX, minDist = x, last[x]
		}
	}

	seam := make(Seam, height)
	y, x := height-1, minX
	seam[y] = x
	for e := pt.edge.at(x, y); e.valid; e = pt.edge.at(x, y) {
		y, x = e.y, e.x
		seam[y] = x
	}
	return seam, minDist
}
