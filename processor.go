package seamcarver

import (
	"image"
	"io"
	"log"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/seamcarver/utils"
	"github.com/pkg/errors"
)

// defaultSeamColor is used by the debug overlay when no seam color is provided.
const defaultSeamColor = "#ff0000"

// Processor options
type Processor struct {
	SeamColor  string
	NewWidth   int
	NewHeight  int
	Spinner    *utils.Spinner
	Percentage bool
	Square     bool
	Scale      bool
	Debug      bool
}

// Carve is the main entry point for the image resize operation.
// The image is shrunk by removing one seam at a time. In case both dimensions
// are reduced, vertical and horizontal seams are removed alternately
// so the two directions are merged together seamlessly.
func (p *Processor) Carve(src image.Image) (*image.NRGBA, error) {
	if src == nil {
		return nil, errors.WithStack(ErrNilImage)
	}
	img := imgToNRGBA(src)
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	newWidth, newHeight, err := p.targetSize(width, height)
	if err != nil {
		return nil, err
	}

	// Scale the image down proportionally and apply the seam carving
	// only on the remaining pixels.
	if p.Scale && newWidth < width && newHeight < height {
		img = p.calculateFitness(img, newWidth, newHeight)
	}

	c, err := NewCarver(img)
	if err != nil {
		return nil, err
	}

	for c.Width() > newWidth || c.Height() > newHeight {
		if c.Width() > newWidth {
			seam, cost := c.VerticalSeamCost()
			if err := c.RemoveVerticalSeam(seam); err != nil {
				return nil, errors.Wrap(err, "could not remove the vertical seam")
			}
			p.logSeam("vertical", cost, c)
		}
		if c.Height() > newHeight {
			seam, cost := c.HorizontalSeamCost()
			if err := c.RemoveHorizontalSeam(seam); err != nil {
				return nil, errors.Wrap(err, "could not remove the horizontal seam")
			}
			p.logSeam("horizontal", cost, c)
		}
	}

	res := c.Image()
	if p.Debug {
		p.markNextSeams(c, res)
	}
	return res, nil
}

// targetSize resolves the requested dimensions against the source image size.
// A zero value keeps the corresponding dimension unchanged.
func (p *Processor) targetSize(width, height int) (int, int, error) {
	newWidth, newHeight := p.NewWidth, p.NewHeight

	// With the percentage option the image is reduced by the given percentage.
	if p.Percentage {
		if newWidth < 0 || newWidth >= 100 || newHeight < 0 || newHeight >= 100 {
			return 0, 0, errors.Errorf("the percentage should be in the [0, 100) range, got %d/%d", newWidth, newHeight)
		}
		newWidth = width - int(float64(width)*float64(newWidth)/100)
		newHeight = height - int(float64(height)*float64(newHeight)/100)
	}
	if newWidth == 0 {
		newWidth = width
	}
	if newHeight == 0 {
		newHeight = height
	}

	// When the square option is used the image will be resized to a square based on the shortest edge.
	if p.Square {
		newWidth = utils.Min(newWidth, newHeight)
		newHeight = newWidth
	}

	if newWidth < 1 || newHeight < 1 {
		return 0, 0, errors.Errorf("invalid target size %dx%d", newWidth, newHeight)
	}
	if newWidth > width || newHeight > height {
		return 0, 0, errors.Wrapf(ErrEnlargeUnsupported, "%dx%d -> %dx%d", width, height, newWidth, newHeight)
	}
	return newWidth, newHeight, nil
}

// calculateFitness scales the image by the smaller factor (i.e Max(wScaleFactor, hScaleFactor)),
// such that one of the dimensions reaches its target while the other one stays above it.
// Example: input: 5000x2500, target: 1920x1080, scaled: 2160x1080.
func (p *Processor) calculateFitness(img *image.NRGBA, newWidth, newHeight int) *image.NRGBA {
	var (
		w = float64(img.Bounds().Dx())
		h = float64(img.Bounds().Dy())
	)
	ratio := math.Max(float64(newWidth)/w, float64(newHeight)/h)
	sw := utils.Max(int(math.Round(w*ratio)), newWidth)
	sh := utils.Max(int(math.Round(h*ratio)), newHeight)

	return imaging.Resize(img, sw, sh, imaging.Lanczos)
}

// markNextSeams highlights the seams that would be removed next.
func (p *Processor) markNextSeams(c *Carver, img *image.NRGBA) {
	hex := p.SeamColor
	if hex == "" {
		hex = defaultSeamColor
	}
	col, err := utils.HexToRGBA(hex)
	if err != nil {
		log.Printf("invalid seam color %q, using %s: %v", hex, defaultSeamColor, err)
		col, _ = utils.HexToRGBA(defaultSeamColor)
	}
	if c.Width() > 1 {
		markSeam(img, c.FindVerticalSeam(), true, col)
	}
	if c.Height() > 1 {
		markSeam(img, c.FindHorizontalSeam(), false, col)
	}
}

func (p *Processor) logSeam(kind string, cost float64, c *Carver) {
	if !p.Debug {
		return
	}
	log.Printf("removed %s seam (energy %.2f), image size %dx%d", kind, cost, c.Width(), c.Height())
}

// Process decodes the source image, resizes it and encodes the result into the writer.
// We are using the io package, since we can provide different input and output types,
// as long as they implement the io.Reader and io.Writer interface.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	src, _, err := image.Decode(r)
	if err != nil {
		return errors.Wrap(err, "could not decode the source image")
	}
	res, err := p.Carve(src)
	if err != nil {
		return err
	}
	return encodeImg(w, res)
}
