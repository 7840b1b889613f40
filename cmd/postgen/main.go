// postgen — Branded social-media post generation.
//
// Usage:
//
//	postgen -d <day> -m <month> -y <year> -c <caption> (-i <path> | -l <url>) [options]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/thedailygeode/postgen/pkg/layout"
	"github.com/thedailygeode/postgen/pkg/post"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("postgen", flag.ExitOnError)

	cfg := layout.DefaultConfig()
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Canvas width in pixels")
	fs.Float64Var(&cfg.Stretch, "stretch", cfg.Stretch, "Maximum stretch factor for the content image")
	fs.IntVar(&cfg.Padding, "padding", cfg.Padding, "Outer padding of the post")
	bottomPadding := fs.Int("bottom-padding", -1, "Bottom margin (defaults to --padding)")
	fs.IntVar(&cfg.ExtraPadding, "extra-padding", cfg.ExtraPadding, "Extra padding around the content image")
	fs.IntVar(&cfg.LogoPadding, "logo-padding", cfg.LogoPadding, "Gap between logo and brand text")
	fs.IntVar(&cfg.LogoExtra, "logo-extra", cfg.LogoExtra, "Extra logo margin on each side")
	fs.IntVar(&cfg.LinePadding, "line-padding", cfg.LinePadding, "Vertical gap between caption lines")
	fs.IntVar(&cfg.RuleThickness, "line-thickness", cfg.RuleThickness, "Thickness of the header rule")

	var (
		headerFont       string
		headerFontSize   float64
		captionFont      string
		captionFontSize  float64
		brand            string
		day, month, year int
		headerColor      string
		logoPath         string
		link             string
		imagePath        string
		caption          string
		output           string
	)

	fs.StringVar(&headerFont, "header-font", "", "Header font path (empty: embedded font)")
	fs.Float64Var(&headerFontSize, "header-font-size", 48, "Header font size in points")
	fs.StringVar(&captionFont, "caption-font", "", "Caption font path (empty: embedded font)")
	fs.Float64Var(&captionFontSize, "caption-font-size", 80, "Caption font size in points")
	fs.StringVar(&brand, "brand", "The Daily Breathing", "Brand name")
	fs.IntVar(&day, "d", 0, "Day of the post")
	fs.IntVar(&day, "day", 0, "Day of the post")
	fs.IntVar(&month, "m", 0, "Month of the post")
	fs.IntVar(&month, "month", 0, "Month of the post")
	fs.IntVar(&year, "y", 0, "Year of the post")
	fs.IntVar(&year, "year", 0, "Year of the post")
	fs.StringVar(&headerColor, "header-color", "078c51", "Header accent color (6 hex digits)")
	fs.StringVar(&logoPath, "logo", "./resources/logo.png", "Logo image path")
	fs.StringVar(&link, "l", "", "URL of the content image")
	fs.StringVar(&link, "link", "", "URL of the content image")
	fs.StringVar(&imagePath, "i", "", "Path of the content image")
	fs.StringVar(&imagePath, "image", "", "Path of the content image")
	fs.StringVar(&caption, "c", "", "Caption for the post")
	fs.StringVar(&caption, "caption", "", "Caption for the post")
	fs.StringVar(&output, "o", "./output", "Output directory")
	fs.StringVar(&output, "output", "./output", "Output directory")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if day == 0 || month == 0 || year == 0 {
		return fmt.Errorf("day, month and year are required (-d, -m, -y)")
	}
	if caption == "" {
		return fmt.Errorf("a caption is required (-c)")
	}

	// Exactly one content source.
	source, err := resolveSource(imagePath, link)
	if err != nil {
		return err
	}

	if *bottomPadding >= 0 {
		cfg.BottomPadding = *bottomPadding
	} else {
		cfg.BottomPadding = cfg.Padding
	}

	out, err := post.Create(post.Params{
		Layout:          cfg,
		HeaderFontPath:  headerFont,
		HeaderFontSize:  headerFontSize,
		CaptionFontPath: captionFont,
		CaptionFontSize: captionFontSize,
		Brand:           brand,
		Day:             day,
		Month:           month,
		Year:            year,
		AccentHex:       headerColor,
		LogoPath:        logoPath,
		Source:          source,
		Caption:         caption,
		OutputDir:       output,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Post saved: %s\n", out)
	return nil
}

// resolveSource turns the mutually exclusive --image/--link flags into a
// single post.Source.
func resolveSource(imagePath, link string) (post.Source, error) {
	switch {
	case imagePath != "" && link != "":
		return nil, fmt.Errorf("--image and --link are mutually exclusive")
	case imagePath != "":
		return post.LocalFile{Path: imagePath}, nil
	case link != "":
		return post.RemoteURL{URL: link}, nil
	default:
		return nil, fmt.Errorf("a content image is required (--image or --link)")
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
