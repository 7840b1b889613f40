// tint.go — Multiplicative color tinting.
package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Tint multiplies every pixel's RGB channels by the accent color, channel by
// channel, scaled so that a 255 accent channel is the identity. Alpha is
// preserved. The source image is not modified; a new buffer is returned.
func Tint(img image.Image, accent color.NRGBA) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.R = uint8(int(c.R) * int(accent.R) / 255)
		c.G = uint8(int(c.G) * int(accent.G) / 255)
		c.B = uint8(int(c.B) * int(accent.B) / 255)
		return c
	})
}
