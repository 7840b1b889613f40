package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewFontManagerEmbeddedFallback(t *testing.T) {
	fm, err := NewFontManager("")
	if err != nil {
		t.Fatalf("NewFontManager(\"\") = %v", err)
	}
	face, err := fm.Face(48, 72)
	if err != nil {
		t.Fatalf("Face(48, 72) = %v", err)
	}
	if face == nil {
		t.Fatal("Face returned nil face")
	}
}

func TestNewFontManagerMissingFile(t *testing.T) {
	if _, err := NewFontManager(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Fatal("expected error for missing font file")
	}
}

func TestNewFontManagerGarbageData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFontManager(path); err == nil {
		t.Fatal("expected error for unparseable font data")
	}
}

func TestFaceRejectsDegenerateSizes(t *testing.T) {
	fm, err := NewFontManager("")
	if err != nil {
		t.Fatal(err)
	}
	for _, size := range []float64{0, -1, -48} {
		if _, err := fm.Face(size, 72); !errors.Is(err, ErrInvalidFontSize) {
			t.Errorf("Face(%g, 72) = %v, want ErrInvalidFontSize", size, err)
		}
	}
	if _, err := fm.Face(48, 0); !errors.Is(err, ErrInvalidFontSize) {
		t.Errorf("Face(48, 0) = %v, want ErrInvalidFontSize", err)
	}
}
