// layout.go — Element measurement and canvas height computation.
package layout

// Size is a measured width and height in pixels.
type Size struct {
	W, H int
}

// MeasureFunc reports the rendered size of a string for some fixed font and
// point size. The same face must be used later for painting so that layout
// and paint metrics cannot diverge.
type MeasureFunc func(s string) Size

// Header holds the measured sizes of the header row elements.
type Header struct {
	Logo  Size
	Brand Size
	Date  Size
}

// Content holds the wrapped caption lines, their sizes, and the target size
// of the content image.
type Content struct {
	Lines     []string
	LineSizes []Size
	Image     Size
}

// Layout is the frozen combination of header and content measurements,
// consumed once by the compositor.
type Layout struct {
	Header  Header
	Content Content
}

// MeasureHeader measures the brand and date labels and derives the logo box:
// a square whose side equals the brand text height, so the logo displays at
// the same height as the brand label regardless of its native aspect ratio.
func MeasureHeader(measure MeasureFunc, brand, date string) Header {
	brandSize := measure(brand)
	return Header{
		Logo:  Size{W: brandSize.H, H: brandSize.H},
		Brand: brandSize,
		Date:  measure(date),
	}
}

// Fits reports whether the header row fits within maxWidth. Exact equality
// fits; only a strictly wider row overflows.
func (h Header) Fits(logoPadding, maxWidth int) bool {
	return h.Brand.W+h.Logo.W+h.Date.W+2*logoPadding <= maxWidth
}

// MeasureContent wraps the caption at maxWidth, measures each resulting
// line, and sizes the content image: the image fills the width inset by
// extraPadding on both sides, with its height following the source aspect
// ratio but capped at width·stretch. Fractional heights are truncated.
func MeasureContent(measure MeasureFunc, caption string, maxWidth, extraPadding, srcW, srcH int, stretch float64) Content {
	lines := Wrap(caption, maxWidth, func(s string) int {
		return measure(s).W
	})

	sizes := make([]Size, len(lines))
	for i, line := range lines {
		sizes[i] = measure(line)
	}

	imageW := maxWidth - 2*extraPadding
	imageH := float64(imageW) / float64(srcW) * float64(srcH)
	imageH = min(imageH, float64(imageW)*stretch)

	return Content{
		Lines:     lines,
		LineSizes: sizes,
		Image:     Size{W: imageW, H: int(imageH)},
	}
}

// CaptionHeight returns the total height of the caption block: the sum of
// all line heights plus linePadding between consecutive lines.
func (c Content) CaptionHeight(linePadding int) int {
	var h int
	for _, s := range c.LineSizes {
		h += s.H
	}
	return h + (len(c.LineSizes)-1)*linePadding
}

// CanvasHeight computes the full canvas height by walking the vertical
// cursor top to bottom: top padding, header row, rule, content image and
// caption block, closed by the caption bottom padding and the outer bottom
// margin (two distinct values, both defaulting to Padding).
func CanvasHeight(cfg Config, lay Layout) int {
	return cfg.Padding +
		lay.Header.Brand.H + cfg.LogoPadding +
		cfg.RuleThickness + cfg.ExtraPadding +
		lay.Content.Image.H + cfg.ExtraPadding +
		lay.Content.CaptionHeight(cfg.LinePadding) +
		cfg.Padding + cfg.BottomPadding
}
