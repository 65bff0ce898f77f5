package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/wehoop/logomaker/internal/assets"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// FontCandidate is a font file that may or may not exist on this machine.
type FontCandidate struct {
	Name string
	Path string
}

// FontSource creates faces at a given point size.
type FontSource interface {
	Name() string
	NewFace(points float64) (font.Face, error)
}

// DefaultFontCandidates lists bold sans-serif system faces, macOS first.
func DefaultFontCandidates() []FontCandidate {
	return []FontCandidate{
		{Name: "Helvetica", Path: "/System/Library/Fonts/Helvetica.ttc"},
		{Name: "DejaVu Sans Bold", Path: "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"},
		{Name: "Arial Bold", Path: `C:\Windows\Fonts\arialbd.ttf`},
	}
}

// LookupFont returns the first candidate that can be read and parsed.
// The bool is false when none resolve; failures are logged, not returned.
func LookupFont(candidates []FontCandidate, logger Logger) (FontSource, bool) {
	for _, candidate := range candidates {
		src, err := loadFontFile(candidate)
		if err != nil {
			if logger != nil {
				logger.Infof("font", "skipping %s: %v", candidate.Path, err)
			}
			continue
		}
		if logger != nil {
			logger.Infof("font", "using %s (%s)", src.Name(), candidate.Path)
		}
		return src, true
	}
	return nil, false
}

// ResolveFont is LookupFont with the built-in face as the default.
func ResolveFont(candidates []FontCandidate, logger Logger) FontSource {
	if src, ok := LookupFont(candidates, logger); ok {
		return src
	}
	src := BuiltinFont()
	if logger != nil {
		logger.Infof("font", "no system font resolved, using %s", src.Name())
	}
	return src
}

// BuiltinFont parses the embedded bold face. It falls back to the fixed
// 7x13 bitmap face if the embedded data cannot be parsed.
func BuiltinFont() FontSource {
	f, err := opentype.Parse(assets.FontTTF)
	if err != nil {
		return bitmapFont{}
	}
	return sfntFont{name: assets.FontName, font: f}
}

func loadFontFile(candidate FontCandidate) (FontSource, error) {
	data, err := os.ReadFile(candidate.Path)
	if err != nil {
		return nil, err
	}
	name := candidate.Name
	if name == "" {
		name = filepath.Base(candidate.Path)
	}

	switch strings.ToLower(filepath.Ext(candidate.Path)) {
	case ".ttc", ".otc":
		collection, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse collection: %w", err)
		}
		f, err := collection.Font(0)
		if err != nil {
			return nil, fmt.Errorf("collection face 0: %w", err)
		}
		return sfntFont{name: name, font: f}, nil
	}

	f, err := opentype.Parse(data)
	if err == nil {
		return sfntFont{name: name, font: f}, nil
	}
	// Some older TrueType files are rejected by the sfnt parser but load with freetype.
	tt, terr := truetype.Parse(data)
	if terr != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetypeFont{name: name, font: tt}, nil
}

type sfntFont struct {
	name string
	font *opentype.Font
}

func (s sfntFont) Name() string { return s.name }

func (s sfntFont) NewFace(points float64) (font.Face, error) {
	return opentype.NewFace(s.font, &opentype.FaceOptions{Size: points, DPI: fontDPI, Hinting: font.HintingFull})
}

type truetypeFont struct {
	name string
	font *truetype.Font
}

func (t truetypeFont) Name() string { return t.name }

func (t truetypeFont) NewFace(points float64) (font.Face, error) {
	return truetype.NewFace(t.font, &truetype.Options{Size: points, DPI: fontDPI, Hinting: font.HintingFull}), nil
}

// bitmapFont ignores the requested size.
type bitmapFont struct{}

func (bitmapFont) Name() string { return "basicfont 7x13" }

func (bitmapFont) NewFace(float64) (font.Face, error) { return basicfont.Face7x13, nil }
