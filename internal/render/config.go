package render

import (
	"errors"
	"fmt"
)

// Invocation defaults.
const (
	DefaultSize      = 512
	DefaultOutputDir = "team_logos"
)

// Logo proportions, relative to the canvas side.
const (
	innerCircleRatio = 0.85
	fontSizeRatio    = 0.35
	shadowRatio      = 0.01

	innerLighten = 20
	shadowDarken = 50
	shadowAlpha  = 200

	// At 72 DPI one point is one pixel.
	fontDPI = 72
)

// Config is fixed for every team rendered in a run.
type Config struct {
	Size      int
	OutputDir string
	// Fonts are tried in order; the built-in face is used when none load.
	Fonts []FontCandidate
}

func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be a positive integer, got %d", c.Size)
	}
	if c.OutputDir == "" {
		return errors.New("output directory is empty")
	}
	return nil
}
