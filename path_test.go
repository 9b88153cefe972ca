package seamcarver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// costTable builds a cost matrix from its rows.
func costTable(rows [][]float64) *table[float64] {
	t := newTable[float64](len(rows[0]), len(rows))
	for y, row := range rows {
		for x, v := range row {
			t.set(x, y, v)
		}
	}
	return t
}

func TestPath_ShortestPath(t *testing.T) {
	cost := costTable([][]float64{
		{BorderEnergy, BorderEnergy, BorderEnergy},
		{5, 1, 9},
		{7, 8, 2},
		{3, 6, 4},
	})

	seam, dist := shortestPath(cost)
	assert.Equal(t, Seam{0, 1, 2, 2}, seam)
	assert.Equal(t, 1007.0, dist)

	// The total distance is the sum of the costs along the seam.
	var sum float64
	for y, x := range seam {
		sum += cost.at(x, y)
	}
	assert.Equal(t, dist, sum)
}

func TestPath_TiesResolveToTheLeft(t *testing.T) {
	cost := costTable([][]float64{
		{BorderEnergy, BorderEnergy, BorderEnergy, BorderEnergy},
		{3, 3, 3, 3},
		{3, 3, 3, 3},
	})

	seam, dist := shortestPath(cost)
	assert.Equal(t, Seam{0, 0, 0}, seam)
	assert.Equal(t, BorderEnergy+6, dist)

	// The cheapest cell in the last row is reachable from two parents;
	// the leftmost one, discovered first, is kept.
	cost = costTable([][]float64{
		{BorderEnergy, BorderEnergy, BorderEnergy},
		{9, 1, 1},
		{9, 9, 0},
	})

	seam, dist = shortestPath(cost)
	assert.Equal(t, Seam{0, 1, 2}, seam)
	assert.Equal(t, BorderEnergy+1, dist)
}

func TestPath_SingleColumn(t *testing.T) {
	cost := costTable([][]float64{{BorderEnergy}, {2}, {3}, {BorderEnergy}})

	seam, dist := shortestPath(cost)
	assert.Equal(t, Seam{0, 0, 0, 0}, seam)
	assert.Equal(t, 2*BorderEnergy+5, dist)
}

func TestPath_SingleRow(t *testing.T) {
	cost := costTable([][]float64{{BorderEnergy, BorderEnergy, BorderEnergy}})

	seam, dist := shortestPath(cost)
	assert.Equal(t, Seam{0}, seam)
	assert.Equal(t, BorderEnergy, dist)
}

func TestPath_Classify(t *testing.T) {
	testCases := []struct {
		x, y, width, height int
		want                boundary
	}{
		{x: 2, y: 1, width: 5, height: 4, want: interior},
		{x: 0, y: 1, width: 5, height: 4, want: firstCol},
		{x: 4, y: 0, width: 5, height: 4, want: lastCol},
		{x: 0, y: 2, width: 1, height: 4, want: singleCol},
		{x: 0, y: 3, width: 1, height: 4, want: lastRow},
		{x: 2, y: 3, width: 5, height: 4, want: lastRow},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, classify(tc.x, tc.y, tc.width, tc.height), "(%d, %d) in %dx%d", tc.x, tc.y, tc.width, tc.height)
	}
}
