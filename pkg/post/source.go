// source.go — Content image sources: local file or remote URL.
// The CLI resolves its mutually exclusive flags into one of these before
// the pipeline runs; the core never sees raw optional fields.
package post

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/disintegration/imaging"
)

// Source yields the decoded content image for a post.
type Source interface {
	Load() (image.Image, error)
}

// LocalFile loads the content image from a path on disk.
type LocalFile struct {
	Path string
}

// Load decodes the image file at Path.
func (s LocalFile) Load() (image.Image, error) {
	img, err := imaging.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", s.Path, err)
	}
	return img, nil
}

// RemoteURL fetches the content image over HTTP.
type RemoteURL struct {
	URL string
}

// Load fetches URL and decodes the response body.
func (s RemoteURL) Load() (image.Image, error) {
	resp, err := http.Get(s.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image %s: unexpected status %s", s.URL, resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode image from %s: %w", s.URL, err)
	}
	return img, nil
}
