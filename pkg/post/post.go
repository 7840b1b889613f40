// Package post assembles branded social-media image posts: a logo/brand/date
// header over an accent rule, a content image, and a wrapped caption on a
// white canvas, written out as a dated PNG.
package post

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/thedailygeode/postgen/pkg/layout"
	"github.com/thedailygeode/postgen/pkg/render"
)

// ErrHeaderOverflow reports that the logo, brand and date cannot fit side by
// side within the configured width. It is raised before any painting work.
var ErrHeaderOverflow = errors.New("header too wide: elements cannot fit")

// fontDPI is the point-to-pixel scale used for all faces.
const fontDPI = 72

// Params are the full inputs for one post. Font paths may be empty to use
// the embedded fallback font.
type Params struct {
	Layout layout.Config

	HeaderFontPath  string
	HeaderFontSize  float64
	CaptionFontPath string
	CaptionFontSize float64

	Brand            string
	Day, Month, Year int
	AccentHex        string
	LogoPath         string
	Source           Source
	Caption          string
	OutputDir        string
}

// Create runs the whole pipeline for one post: load and measure, lay out,
// paint, encode. It returns the path of the written PNG. The first failing
// stage aborts the run; no partial output is ever written.
func Create(p Params) (string, error) {
	date, err := FormatDate(p.Day, p.Month, p.Year)
	if err != nil {
		return "", err
	}

	accent, err := ParseAccentColor(p.AccentHex)
	if err != nil {
		return "", err
	}

	headerFonts, err := render.NewFontManager(p.HeaderFontPath)
	if err != nil {
		return "", fmt.Errorf("header font: %w", err)
	}
	captionFonts, err := render.NewFontManager(p.CaptionFontPath)
	if err != nil {
		return "", fmt.Errorf("caption font: %w", err)
	}

	headerFace, err := headerFonts.Face(p.HeaderFontSize, fontDPI)
	if err != nil {
		return "", fmt.Errorf("header font: %w", err)
	}
	captionFace, err := captionFonts.Face(p.CaptionFontSize, fontDPI)
	if err != nil {
		return "", fmt.Errorf("caption font: %w", err)
	}

	logo, err := imaging.Open(p.LogoPath)
	if err != nil {
		return "", fmt.Errorf("load logo %s: %w", p.LogoPath, err)
	}
	content, err := p.Source.Load()
	if err != nil {
		return "", err
	}

	cfg := p.Layout
	headerMeasure := render.NewMeasurer(headerFace)
	captionMeasure := render.NewMeasurer(captionFace)

	header := layout.MeasureHeader(headerMeasure.Measure, p.Brand, date)
	if !header.Fits(cfg.LogoPadding, cfg.MaxWidth()) {
		return "", ErrHeaderOverflow
	}

	srcBounds := content.Bounds()
	contentLayout := layout.MeasureContent(captionMeasure.Measure, p.Caption,
		cfg.MaxWidth(), cfg.ExtraPadding, srcBounds.Dx(), srcBounds.Dy(), cfg.Stretch)

	lay := layout.Layout{Header: header, Content: contentLayout}

	// The logo is tinted, then resized to the brand height plus its extra
	// margin on each side. The content image is resized to fill its box,
	// cropping rather than letterboxing an over-tall source.
	logoSide := header.Brand.H + 2*cfg.LogoExtra
	tintedLogo := imaging.Resize(render.Tint(logo, accent.NRGBA()), logoSide, logoSide, imaging.Lanczos)
	fitted := imaging.Fill(content, contentLayout.Image.W, contentLayout.Image.H, imaging.Center, imaging.Lanczos)

	canvas := render.Compose(cfg, lay, render.Elements{
		Logo:        tintedLogo,
		Image:       fitted,
		Brand:       p.Brand,
		Date:        date,
		HeaderFace:  headerFace,
		CaptionFace: captionFace,
		Accent:      accent.RuleFill(),
	})

	if err := EnsureDir(p.OutputDir); err != nil {
		return "", err
	}

	out := filepath.Join(p.OutputDir, Filename(p.Year, p.Month, p.Day))
	if err := SavePNG(canvas, out); err != nil {
		return "", err
	}
	return out, nil
}
