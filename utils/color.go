package utils

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HexToRGBA converts a color expressed in hexadecimal format (#rrggbb or #rgb) to an opaque NRGBA color.
func HexToRGBA(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("could not parse the color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()

	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
