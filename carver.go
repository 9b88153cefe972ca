package seamcarver

import (
	"image"

	"github.com/esimov/seamcarver/utils"
	"github.com/pkg/errors"
)

// Carver is the seam carving engine. It owns a private copy of the image pixels
// and the energy (cost) of every live pixel, and it keeps the two in sync
// while seams are removed.
//
// A Carver is not safe for concurrent use.
type Carver struct {
	pixels *table[pixel]
	cost   *table[float64]
}

// Seam holds one column index per row (vertical seam) or
// one row index per column (horizontal seam).
type Seam []int

// NewCarver initializes a new Carver from the source image.
func NewCarver(img image.Image) (*Carver, error) {
	if img == nil {
		return nil, errors.WithStack(ErrNilImage)
	}
	src := imgToNRGBA(img)
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	if width == 0 || height == 0 {
		return nil, errors.Wrapf(ErrEmptyImage, "%dx%d", width, height)
	}

	c := &Carver{
		pixels: newTable[pixel](width, height),
		cost:   newTable[float64](width, height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.pixels.set(x, y, src.NRGBAAt(x, y))
		}
	}
	c.computeEnergy()

	return c, nil
}

// Width returns the current width of the image.
func (c *Carver) Width() int { return c.pixels.width }

// Height returns the current height of the image.
func (c *Carver) Height() int { return c.pixels.height }

// FindVerticalSeam returns the lowest energy top to bottom seam.
func (c *Carver) FindVerticalSeam() Seam {
	seam, _ := c.VerticalSeamCost()
	return seam
}

// VerticalSeamCost returns the lowest energy vertical seam together with its total energy.
func (c *Carver) VerticalSeamCost() (Seam, float64) {
	return shortestPath(c.cost)
}

// FindHorizontalSeam returns the lowest energy left to right seam.
func (c *Carver) FindHorizontalSeam() Seam {
	seam, _ := c.HorizontalSeamCost()
	return seam
}

// HorizontalSeamCost returns the lowest energy horizontal seam together with its total energy.
func (c *Carver) HorizontalSeamCost() (Seam, float64) {
	c.transpose()
	defer c.transpose()

	return c.VerticalSeamCost()
}

// RemoveVerticalSeam removes the seam from the image, reducing its width by one pixel.
// The seam is validated upfront; on error the image is left unchanged.
func (c *Carver) RemoveVerticalSeam(seam Seam) error {
	if err := seam.validate(c.Height(), c.Width()); err != nil {
		return err
	}
	c.removeSeam(seam)

	return nil
}

// RemoveHorizontalSeam removes the seam from the image, reducing its height by one pixel.
// The seam is validated upfront; on error the image is left unchanged.
func (c *Carver) RemoveHorizontalSeam(seam Seam) error {
	if err := seam.validate(c.Width(), c.Height()); err != nil {
		return err
	}
	c.transpose()
	c.removeSeam(seam)
	c.transpose()

	return nil
}

// removeSeam shifts every row over the removed column, then shrinks the width.
// The shift depends on the old width, so the width is decremented only once all the rows were shifted.
// Afterwards the energy of the interior rows is recomputed; the first and
// last rows consist of border pixels only, which keep their fixed energy.
func (c *Carver) removeSeam(seam Seam) {
	for y, x := range seam {
		c.pixels.removeAt(x, y)
		c.cost.removeAt(x, y)
	}
	c.pixels.shrink()
	c.cost.shrink()

	for y := 1; y < c.Height()-1; y++ {
		for x := 0; x < c.Width(); x++ {
			c.cost.set(x, y, c.energyAt(x, y))
		}
	}
}

// transpose swaps the image rows and columns, so that the vertical seam
// algorithms can operate on horizontal seams. Calling it twice restores the original layout.
func (c *Carver) transpose() {
	c.pixels = c.pixels.transpose()
	c.cost = c.cost.transpose()
}

// Image returns a snapshot of the current image. The returned image does not share memory with the Carver.
func (c *Carver) Image() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, c.Width(), c.Height()))
	for y := 0; y < c.Height(); y++ {
		for x, px := range c.pixels.row(y) {
			dst.SetNRGBA(x, y, px)
		}
	}
	return dst
}

// validate checks the seam against an image having length rows,
// each of them holding size pixels from which one is going to be removed.
func (s Seam) validate(length, size int) error {
	if len(s) == 0 {
		return errors.WithStack(ErrNilSeam)
	}
	if len(s) != length {
		return errors.Wrapf(ErrSeamLength, "got %d entries, expected %d", len(s), length)
	}
	for i, v := range s {
		if v < 0 || v >= size {
			return errors.Wrapf(ErrSeamRange, "entry %d is %d, expected a value in [0, %d)", i, v, size)
		}
		if i > 0 && utils.Abs(v-s[i-1]) > 1 {
			return errors.Wrapf(ErrSeamNotAdjacent, "entries %d and %d are %d and %d", i-1, i, s[i-1], v)
		}
	}
	if size <= 1 {
		return errors.WithStack(ErrDimensionTooSmall)
	}
	return nil
}
