package seamcarver

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
)

// BorderEnergy is the fixed energy assigned to every pixel on the outer edge of the image.
// The seam search also seeds the first row of its distance table with this value,
// since every first row pixel is a border pixel.
const BorderEnergy = 1000.0

// Energy returns the dual-gradient energy of the pixel at (x, y).
// Border pixels always have an energy of BorderEnergy.
func (c *Carver) Energy(x, y int) (float64, error) {
	if x < 0 || x >= c.Width() {
		return 0, errors.Wrapf(ErrOutOfRange, "x=%d not in [0, %d)", x, c.Width())
	}
	if y < 0 || y >= c.Height() {
		return 0, errors.Wrapf(ErrOutOfRange, "y=%d not in [0, %d)", y, c.Height())
	}
	return c.energyAt(x, y), nil
}

// energyAt computes the energy without range checks.
func (c *Carver) energyAt(x, y int) float64 {
	if x == 0 || y == 0 || x == c.Width()-1 || y == c.Height()-1 {
		return BorderEnergy
	}
	dx := gradient(c.pixels.at(x-1, y), c.pixels.at(x+1, y))
	dy := gradient(c.pixels.at(x, y-1), c.pixels.at(x, y+1))

	return math.Sqrt(dx + dy)
}

// gradient returns the sum of the squared per channel differences between two pixels.
// The alpha channel does not contribute.
func gradient(a, b color.NRGBA) float64 {
	r := float64(b.R) - float64(a.R)
	g := float64(b.G) - float64(a.G)
	bl := float64(b.B) - float64(a.B)

	return r*r + g*g + bl*bl
}

// computeEnergy fills the cost matrix from scratch.
func (c *Carver) computeEnergy() {
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			c.cost.set(x, y, c.energyAt(x, y))
		}
	}
}
