package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// Cubic Bézier handle length for a quarter circle.
const kappa = 0.5522847498

// fillDisc fills the ellipse inscribed in rect, anti-aliased at the edge.
func fillDisc(dst draw.Image, rect image.Rectangle, c color.Color) {
	if rect.Empty() {
		return
	}
	width, height := rect.Dx(), rect.Dy()
	rx, ry := float32(width)/2, float32(height)/2
	cx, cy := rx, ry
	kx, ky := float32(kappa)*rx, float32(kappa)*ry

	z := vector.NewRasterizer(width, height)
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
	z.Draw(dst, rect, image.NewUniform(c), image.Point{})
}
