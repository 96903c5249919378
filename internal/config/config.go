// Package config holds the parameters of every imgtools subcommand.
//
// Defaults reproduce the fixed values the tools were built around, so the
// binary needs no configuration at all. An optional TOML or YAML file can
// override any subset of them; keys absent from the file keep their defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/imgtools/internal/generative"
	"github.com/ironsheep/imgtools/internal/imaging"
)

// Config is the root configuration.
type Config struct {
	InputDir  string `toml:"input_dir" yaml:"input_dir"`
	OutputDir string `toml:"output_dir" yaml:"output_dir"`

	Basic      Basic      `toml:"basic" yaml:"basic"`
	Batch      Batch      `toml:"batch" yaml:"batch"`
	Generative Generative `toml:"generative" yaml:"generative"`
	Grid       Grid       `toml:"grid" yaml:"grid"`
}

// Basic configures the single-photo transform pipeline.
type Basic struct {
	Source        string  `toml:"source" yaml:"source"` // file name inside InputDir
	ResizeWidth   int     `toml:"resize_width" yaml:"resize_width"`
	RotateDegrees float64 `toml:"rotate_degrees" yaml:"rotate_degrees"`
	CropDivisor   int     `toml:"crop_divisor" yaml:"crop_divisor"`
	Quality       int     `toml:"quality" yaml:"quality"`
}

// Batch configures the folder watermarker.
type Batch struct {
	MaxWidth   int       `toml:"max_width" yaml:"max_width"`
	Quality    int       `toml:"quality" yaml:"quality"`
	Extensions []string  `toml:"extensions" yaml:"extensions"`
	Suffix     string    `toml:"suffix" yaml:"suffix"`
	Watermark  Watermark `toml:"watermark" yaml:"watermark"`
}

// Watermark configures the text burned into batch output.
type Watermark struct {
	Text     string   `toml:"text" yaml:"text"`
	FontSize float64  `toml:"font_size" yaml:"font_size"`
	Margin   int      `toml:"margin" yaml:"margin"`
	Fonts    []string `toml:"fonts" yaml:"fonts"`
	Fill     string   `toml:"fill" yaml:"fill"`
	Outline  string   `toml:"outline" yaml:"outline"`
}

// Generative configures the art generator and the bordered collage.
type Generative struct {
	Count     int              `toml:"count" yaml:"count"`
	Width     generative.Range `toml:"width" yaml:"width"`
	Height    generative.Range `toml:"height" yaml:"height"`
	Circles   int              `toml:"circles" yaml:"circles"`
	Lines     int              `toml:"lines" yaml:"lines"`
	Triangles int              `toml:"triangles" yaml:"triangles"`
	Collage   Collage          `toml:"collage" yaml:"collage"`
}

// Collage configures the bordered collage of processed photos.
type Collage struct {
	SourceSuffix string `toml:"source_suffix" yaml:"source_suffix"`
	MaxImages    int    `toml:"max_images" yaml:"max_images"`
	Width        int    `toml:"width" yaml:"width"`
	Height       int    `toml:"height" yaml:"height"`
	Margin       int    `toml:"margin" yaml:"margin"`
	Gap          int    `toml:"gap" yaml:"gap"`
	Padding      int    `toml:"padding" yaml:"padding"`
	Thumbnail    int    `toml:"thumbnail" yaml:"thumbnail"`
	Top          string `toml:"top" yaml:"top"`
	Bottom       string `toml:"bottom" yaml:"bottom"`
	Quality      int    `toml:"quality" yaml:"quality"`
	Output       string `toml:"output" yaml:"output"`
}

// Grid configures the grid collage and the test gradient.
type Grid struct {
	Rows      int      `toml:"rows" yaml:"rows"`
	Cols      int      `toml:"cols" yaml:"cols"`
	Thumbnail int      `toml:"thumbnail" yaml:"thumbnail"`
	Extension string   `toml:"extension" yaml:"extension"`
	Quality   int      `toml:"quality" yaml:"quality"`
	Output    string   `toml:"output" yaml:"output"`
	Gradient  Gradient `toml:"gradient" yaml:"gradient"`
}

// Gradient configures the two-axis test gradient.
type Gradient struct {
	Width   int    `toml:"width" yaml:"width"`
	Height  int    `toml:"height" yaml:"height"`
	Start   string `toml:"start" yaml:"start"`
	End     string `toml:"end" yaml:"end"`
	Quality int    `toml:"quality" yaml:"quality"`
	Output  string `toml:"output" yaml:"output"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InputDir:  "./input",
		OutputDir: "./output",
		Basic: Basic{
			Source:        "photo1.jpg",
			ResizeWidth:   400,
			RotateDegrees: 45,
			CropDivisor:   3,
			Quality:       90,
		},
		Batch: Batch{
			MaxWidth:   800,
			Quality:    85,
			Extensions: []string{".jpg", ".jpeg", ".png", ".webp", ".bmp", ".tiff"},
			Suffix:     "_processed",
			Watermark: Watermark{
				Text:     "© Developer Team 2024",
				FontSize: 20,
				Margin:   10,
				Fonts:    []string{"arial.ttf", "DejaVuSans.ttf"},
				Fill:     "#FFFFFF",
				Outline:  "#000000",
			},
		},
		Generative: Generative{
			Count:     3,
			Width:     generative.Range{Min: 600, Max: 1000},
			Height:    generative.Range{Min: 400, Max: 800},
			Circles:   30,
			Lines:     15,
			Triangles: 10,
			Collage: Collage{
				SourceSuffix: "_processed.jpg",
				MaxImages:    4,
				Width:        1200,
				Height:       800,
				Margin:       50,
				Gap:          20,
				Padding:      5,
				Thumbnail:    300,
				Top:          "#F0F0FF",
				Bottom:       "#C8C8FF",
				Quality:      90,
				Output:       "collage.jpg",
			},
		},
		Grid: Grid{
			Rows:      2,
			Cols:      2,
			Thumbnail: 400,
			Extension: ".jpg",
			Quality:   90,
			Output:    "test_collage.jpg",
			Gradient: Gradient{
				Width:   300,
				Height:  300,
				Start:   "#FFFF00",
				End:     "#00FFFF",
				Quality: 90,
				Output:  "test_gradient.jpg",
			},
		},
	}
}

// Load reads path over the defaults and validates the result. The format is
// chosen by extension: .toml, .yaml or .yml. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q: use .toml or .yaml", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.InputDir == "" || c.OutputDir == "" {
		return fmt.Errorf("input_dir and output_dir must be set")
	}

	positive := []struct {
		name string
		v    int
	}{
		{"basic.resize_width", c.Basic.ResizeWidth},
		{"basic.crop_divisor", c.Basic.CropDivisor},
		{"batch.max_width", c.Batch.MaxWidth},
		{"generative.count", c.Generative.Count},
		{"generative.width.min", c.Generative.Width.Min},
		{"generative.height.min", c.Generative.Height.Min},
		{"generative.collage.max_images", c.Generative.Collage.MaxImages},
		{"generative.collage.width", c.Generative.Collage.Width},
		{"generative.collage.height", c.Generative.Collage.Height},
		{"generative.collage.thumbnail", c.Generative.Collage.Thumbnail},
		{"grid.rows", c.Grid.Rows},
		{"grid.cols", c.Grid.Cols},
		{"grid.thumbnail", c.Grid.Thumbnail},
		{"grid.gradient.width", c.Grid.Gradient.Width},
		{"grid.gradient.height", c.Grid.Gradient.Height},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("invalid config: %s must be positive", p.name)
		}
	}

	if c.Batch.Watermark.Margin < 0 {
		return fmt.Errorf("invalid config: batch.watermark.margin must not be negative")
	}
	if c.Batch.Watermark.FontSize <= 0 {
		return fmt.Errorf("invalid config: batch.watermark.font_size must be positive")
	}
	if c.Generative.Width.Max < c.Generative.Width.Min || c.Generative.Height.Max < c.Generative.Height.Min {
		return fmt.Errorf("invalid config: generative size ranges must have max >= min")
	}

	qualities := map[string]int{
		"basic.quality":              c.Basic.Quality,
		"batch.quality":              c.Batch.Quality,
		"generative.collage.quality": c.Generative.Collage.Quality,
		"grid.quality":               c.Grid.Quality,
		"grid.gradient.quality":      c.Grid.Gradient.Quality,
	}
	for name, q := range qualities {
		if q < 1 || q > 100 {
			return fmt.Errorf("invalid config: %s must be 1-100, got %d", name, q)
		}
	}

	colors := map[string]string{
		"batch.watermark.fill":      c.Batch.Watermark.Fill,
		"batch.watermark.outline":   c.Batch.Watermark.Outline,
		"generative.collage.top":    c.Generative.Collage.Top,
		"generative.collage.bottom": c.Generative.Collage.Bottom,
		"grid.gradient.start":       c.Grid.Gradient.Start,
		"grid.gradient.end":         c.Grid.Gradient.End,
	}
	for name, hex := range colors {
		if _, err := imaging.ParseColor(hex); err != nil {
			return fmt.Errorf("invalid config: %s: %w", name, err)
		}
	}

	if len(c.Batch.Extensions) == 0 {
		return fmt.Errorf("invalid config: batch.extensions must not be empty")
	}
	return nil
}

// InputPath joins name onto the input directory.
func (c *Config) InputPath(name string) string {
	return filepath.Join(c.InputDir, name)
}

// OutputPath joins name onto the output directory.
func (c *Config) OutputPath(name string) string {
	return filepath.Join(c.OutputDir, name)
}

// Color parses a hex color already accepted by Validate.
func Color(hex string) imaging.Color {
	c, err := imaging.ParseColor(hex)
	if err != nil {
		return imaging.Black
	}
	return c
}
