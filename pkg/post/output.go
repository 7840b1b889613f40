// output.go — Output directory and PNG file writing.
package post

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// EnsureDir creates the output directory and any missing parents.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create output directory %s: %w", path, err)
	}
	return nil
}

// SavePNG encodes img to a PNG file at the given path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
