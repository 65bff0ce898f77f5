package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/wehoop/logomaker/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

const (
	PreviewFilename = "preview.png"
	previewTilePx   = 128
	previewColumns  = 4
)

// WritePreviewSheet tiles the given logo files into one contact sheet at dst.
func WritePreviewSheet(paths []string, dst string) error {
	if len(paths) == 0 {
		return errors.New("preview: no logos to tile")
	}
	cells, bounds := layout.Grid(len(paths), previewColumns, previewTilePx)
	sheet := image.NewRGBA(bounds)
	for i, path := range paths {
		logo, err := decodePNG(path)
		if err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		// Scale into the cell and composite with alpha.
		xdraw.CatmullRom.Scale(sheet, cells[i], logo, logo.Bounds(), xdraw.Over, nil)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, sheet); err != nil {
		return fmt.Errorf("preview: encode png: %w", err)
	}
	return writeFileReplace(dst, buf.Bytes())
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
