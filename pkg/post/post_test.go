package post

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/thedailygeode/postgen/pkg/layout"
)

// testParams builds a small but complete post: embedded fonts, a solid logo
// and a solid square content image written to a temp dir.
func testParams(t *testing.T) Params {
	t.Helper()
	dir := t.TempDir()

	logoPath := filepath.Join(dir, "logo.png")
	if err := imaging.Save(imaging.New(32, 32, color.NRGBA{R: 220, A: 255}), logoPath); err != nil {
		t.Fatal(err)
	}
	imagePath := filepath.Join(dir, "content.png")
	if err := imaging.Save(imaging.New(64, 64, color.NRGBA{B: 180, A: 255}), imagePath); err != nil {
		t.Fatal(err)
	}

	return Params{
		Layout: layout.Config{
			Width:         400,
			Stretch:       1.5,
			Padding:       10,
			BottomPadding: 10,
			ExtraPadding:  10,
			LogoPadding:   5,
			LogoExtra:     2,
			LinePadding:   4,
			RuleThickness: 6,
		},
		HeaderFontSize:  12,
		CaptionFontSize: 14,
		Brand:           "Brand",
		Day:             3,
		Month:           1,
		Year:            2024,
		AccentHex:       "078c51",
		LogoPath:        logoPath,
		Source:          LocalFile{Path: imagePath},
		Caption:         "a short caption that wraps over a few lines of text",
		OutputDir:       filepath.Join(dir, "out"),
	}
}

func TestCreateWritesDatedPNG(t *testing.T) {
	p := testParams(t)

	out, err := Create(p)
	if err != nil {
		t.Fatalf("Create = %v", err)
	}
	if got, want := filepath.Base(out), "2024-01-03.png"; got != want {
		t.Errorf("output name = %q, want %q", got, want)
	}

	img, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got := img.Bounds().Dx(); got != p.Layout.Width {
		t.Errorf("canvas width = %d, want %d", got, p.Layout.Width)
	}
	if img.Bounds().Dy() <= 0 {
		t.Error("canvas height must be positive")
	}
}

func TestCreateIsDeterministic(t *testing.T) {
	p := testParams(t)

	first, err := Create(p)
	if err != nil {
		t.Fatalf("Create = %v", err)
	}
	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}

	p.OutputDir = t.TempDir()
	second, err := Create(p)
	if err != nil {
		t.Fatalf("Create (second run) = %v", err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a, b) {
		t.Error("identical inputs produced different output bytes")
	}
}

func TestCreateHeaderOverflow(t *testing.T) {
	p := testParams(t)
	p.Layout.Width = 120 // brand + logo + date cannot fit in 100px

	if _, err := Create(p); !errors.Is(err, ErrHeaderOverflow) {
		t.Fatalf("Create = %v, want ErrHeaderOverflow", err)
	}

	// Fail-fast: nothing may be written.
	if _, err := os.Stat(p.OutputDir); !os.IsNotExist(err) {
		t.Error("output directory was created despite the layout error")
	}
}

func TestCreateFailsFastOnBadInputs(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		p := testParams(t)
		p.Day, p.Month = 31, 2
		if _, err := Create(p); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Create = %v, want ErrInvalidDate", err)
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		p := testParams(t)
		p.AccentHex = "xyz"
		if _, err := Create(p); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("Create = %v, want ErrInvalidColor", err)
		}
	})

	t.Run("missing logo", func(t *testing.T) {
		p := testParams(t)
		p.LogoPath = filepath.Join(t.TempDir(), "missing.png")
		if _, err := Create(p); err == nil {
			t.Error("expected error for missing logo")
		}
	})

	t.Run("invalid font size", func(t *testing.T) {
		p := testParams(t)
		p.HeaderFontSize = 0
		if _, err := Create(p); err == nil {
			t.Error("expected error for zero font size")
		}
	})
}
