// compose.go — Painting the post canvas from a frozen layout.
// Elements are overlaid in a fixed top-to-bottom order driven by a single
// vertical cursor; the caller has already verified the header fits, so no
// clipping is attempted here.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/thedailygeode/postgen/pkg/layout"
)

// Elements are the prepared inputs to a composition pass. Logo must already
// be tinted and resized; Image must already be fill-resized to the layout's
// content box.
type Elements struct {
	Logo        image.Image
	Image       image.Image
	Brand       string
	Date        string
	HeaderFace  font.Face
	CaptionFace font.Face
	Accent      color.NRGBA // accent rule fill, including its alpha
}

// textColor is opaque black for all text, regardless of accent.
var textColor = color.NRGBA{A: 255}

// Compose paints a white canvas of the configured width and computed height,
// then overlays the header row, accent rule, content image and caption
// lines at the coordinates derived from lay.
func Compose(cfg layout.Config, lay layout.Layout, el Elements) *image.NRGBA {
	height := layout.CanvasHeight(cfg, lay)
	canvas := imaging.New(cfg.Width, height, color.White)

	y := cfg.Padding

	// Header row: logo, brand, right-aligned date.
	canvas = imaging.Overlay(canvas, el.Logo, image.Pt(cfg.Padding, y-cfg.LogoExtra), 1.0)
	brandX := cfg.Padding + lay.Header.Logo.W + cfg.LogoPadding + 2*cfg.LogoExtra
	drawText(canvas, el.Brand, brandX, y, el.HeaderFace)
	drawText(canvas, el.Date, cfg.Width-lay.Header.Date.W-cfg.Padding, y, el.HeaderFace)

	y += lay.Header.Brand.H + cfg.LogoPadding

	// Accent rule across the content width.
	rule := image.Rect(cfg.Padding, y, cfg.Width-cfg.Padding, y+cfg.RuleThickness)
	draw.Draw(canvas, rule, &image.Uniform{el.Accent}, image.Point{}, draw.Over)

	y += cfg.RuleThickness + cfg.ExtraPadding

	// Content image.
	canvas = imaging.Overlay(canvas, el.Image, image.Pt(cfg.Padding+cfg.ExtraPadding, y), 1.0)

	y += lay.Content.Image.H + cfg.ExtraPadding

	// Caption lines.
	for i, line := range lay.Content.Lines {
		drawText(canvas, line, cfg.Padding, y, el.CaptionFace)
		y += lay.Content.LineSizes[i].H + cfg.LinePadding
	}

	return canvas
}

// drawText paints s with its top edge at y: the baseline dot sits one
// ascent below, matching the ascent+descent heights used during layout.
func drawText(dst draw.Image, s string, x, y int, face font.Face) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(y) + face.Metrics().Ascent,
		},
	}
	drawer.DrawString(s)
}
