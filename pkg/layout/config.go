// Package layout computes the geometry of a post: caption wrapping, element
// sizes and the total canvas height. It is pure — fonts and pixels never
// enter this package, only measurement callbacks and integer sizes.
package layout

// Config holds the spacing parameters for a post. It is supplied once at the
// start of a run and never mutated.
type Config struct {
	Width         int     // canvas width in pixels
	Stretch       float64 // maximum height/width factor for the content image
	Padding       int     // outer padding (top and sides)
	BottomPadding int     // outer bottom margin, independent of Padding
	ExtraPadding  int     // extra inset around the content image
	LogoPadding   int     // gap between logo and brand text
	LogoExtra     int     // margin added on each side of the logo before resize
	LinePadding   int     // vertical gap between caption lines
	RuleThickness int     // thickness of the header accent rule
}

// DefaultConfig returns the standard post spacing.
func DefaultConfig() Config {
	return Config{
		Width:         2560,
		Stretch:       1.5,
		Padding:       50,
		BottomPadding: 50,
		ExtraPadding:  50,
		LogoPadding:   30,
		LogoExtra:     10,
		LinePadding:   36,
		RuleThickness: 20,
	}
}

// MaxWidth returns the usable content width between the side paddings.
func (c Config) MaxWidth() int {
	return c.Width - 2*c.Padding
}
