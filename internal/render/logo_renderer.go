package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/wehoop/logomaker/internal/render/layout"
	"github.com/wehoop/logomaker/internal/teams"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LogoRenderer draws circular placeholder logos and writes them as PNG files.
type LogoRenderer struct {
	Config Config
	Logger Logger

	font FontSource
}

// NewLogoRenderer resolves the font once for the whole run.
func NewLogoRenderer(cfg Config, logger Logger) *LogoRenderer {
	return &LogoRenderer{Config: cfg, Logger: logger, font: ResolveFont(cfg.Fonts, logger)}
}

// EnsureOutputDir creates the output directory if needed.
func (r *LogoRenderer) EnsureOutputDir() error {
	if err := os.MkdirAll(r.Config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// Render draws the team's logo and writes OutputDir/logo-<id>.png, replacing any existing file.
func (r *LogoRenderer) Render(team teams.Team) (string, error) {
	if err := r.EnsureOutputDir(); err != nil {
		return "", err
	}
	canvas, err := r.Draw(team)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	path := filepath.Join(r.Config.OutputDir, team.Filename())
	if err := writeFileReplace(path, buf.Bytes()); err != nil {
		return "", err
	}
	if r.Logger != nil {
		r.Logger.Infof("render", "wrote %s (%dx%d, %s)", path, r.Config.Size, r.Config.Size, team.Name)
	}
	return path, nil
}

// Draw composes the logo in memory.
func (r *LogoRenderer) Draw(team teams.Team) (*image.RGBA, error) {
	size := r.Config.Size
	if size <= 0 {
		return nil, fmt.Errorf("invalid canvas size %d", size)
	}
	canvas := image.NewRGBA(layout.Square(size))

	// Outer disc, then a lighter inset disc for depth.
	fillDisc(canvas, canvas.Bounds(), team.Primary.NRGBA(0xFF))
	fillDisc(canvas, layout.InsetSquare(canvas.Bounds(), innerCircleRatio), innerFill(team.Primary))

	face := r.newFace(float64(fontPoints(size)))
	defer face.Close()

	dot := centeredDot(face, team.Abbreviation, canvas.Bounds())
	shadowOffset := layout.Fraction(size, shadowRatio)
	drawText(canvas, face, team.Abbreviation, dot.Add(fixed.P(shadowOffset, shadowOffset)), shadowFill(team.Primary))
	drawText(canvas, face, team.Abbreviation, dot, team.Text.NRGBA(0xFF))
	return canvas, nil
}

// fontPoints truncates like the rest of the layout math, never below one point.
func fontPoints(size int) int {
	return max(layout.Fraction(size, fontSizeRatio), 1)
}

func innerFill(primary teams.RGB) color.NRGBA {
	return primary.Lighten(innerLighten).NRGBA(0xFF)
}

func shadowFill(primary teams.RGB) color.NRGBA {
	return primary.Darken(shadowDarken).NRGBA(shadowAlpha)
}

func (r *LogoRenderer) newFace(points float64) font.Face {
	src := r.font
	if src == nil {
		src = BuiltinFont()
	}
	face, err := src.NewFace(points)
	if err == nil {
		return face
	}
	if r.Logger != nil {
		r.Logger.Errorf("font", "%s face at %.1fpt failed, using built-in: %v", src.Name(), points, err)
	}
	if face, err := BuiltinFont().NewFace(points); err == nil {
		return face
	}
	return basicfont.Face7x13
}

// centeredDot returns the baseline origin that centers the text's ink box in rect.
func centeredDot(face font.Face, text string, rect image.Rectangle) fixed.Point26_6 {
	bounds, _ := font.BoundString(face, text)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()
	topLeft := layout.CenterBox(rect, textWidth, textHeight)
	return fixed.P(topLeft.X-bounds.Min.X.Floor(), topLeft.Y-bounds.Min.Y.Floor())
}

func drawText(dst *image.RGBA, face font.Face, text string, dot fixed.Point26_6, fg color.Color) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  dot,
	}
	drawer.DrawString(text)
}

// writeFileReplace writes through a temp file in the same directory so a
// failed write never leaves a truncated logo behind.
func writeFileReplace(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".logo-*.png")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
