// measure.go — Text measurement over a font.Face.
package render

import (
	"golang.org/x/image/font"

	"github.com/thedailygeode/postgen/pkg/layout"
)

// Measurer reports pixel sizes of strings for one font face. The compositor
// paints with the same face, so measured and painted metrics always agree.
type Measurer struct {
	face font.Face
}

// NewMeasurer wraps face for measurement.
func NewMeasurer(face font.Face) *Measurer {
	return &Measurer{face: face}
}

// Measure returns the advance width and the line height (ascent + descent)
// of s, both rounded up to whole pixels.
func (m *Measurer) Measure(s string) layout.Size {
	metrics := m.face.Metrics()
	return layout.Size{
		W: font.MeasureString(m.face, s).Ceil(),
		H: (metrics.Ascent + metrics.Descent).Ceil(),
	}
}
