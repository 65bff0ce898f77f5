package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Square returns the square of side sizePx anchored at the origin.
func Square(sizePx int) image.Rectangle {
	if sizePx < 0 {
		sizePx = 0
	}
	return image.Rect(0, 0, sizePx, sizePx)
}

// InsetSquare returns a square whose side is ratio of rect's shorter side,
// centered in rect. The offset is floored the same way on both axes so the
// result stays square.
func InsetSquare(rect image.Rectangle, ratio float64) image.Rectangle {
	rect = Normalize(rect)
	side := rect.Dx()
	if rect.Dy() < side {
		side = rect.Dy()
	}
	inner := int(float64(side) * ratio)
	if inner <= 0 {
		return image.Rectangle{}
	}
	if inner > side {
		inner = side
	}
	offset := (side - inner) / 2
	origin := rect.Min.Add(image.Pt(offset, offset))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(inner, inner))}
}

// CenterBox returns the top-left point that centers a box of the given size in rect.
// Boxes larger than rect get a negative offset so they overflow evenly.
func CenterBox(rect image.Rectangle, widthPx, heightPx int) image.Point {
	rect = Normalize(rect)
	return image.Pt(rect.Min.X+floorDiv(rect.Dx()-widthPx, 2), rect.Min.Y+floorDiv(rect.Dy()-heightPx, 2))
}

// Fraction returns int(sizePx * ratio), never negative.
func Fraction(sizePx int, ratio float64) int {
	v := int(float64(sizePx) * ratio)
	if v < 0 {
		return 0
	}
	return v
}

// Grid returns cols*rows cells of cellPx each, row-major, starting at the origin.
func Grid(count, cols, cellPx int) (cells []image.Rectangle, bounds image.Rectangle) {
	if count <= 0 || cols <= 0 || cellPx <= 0 {
		return nil, image.Rectangle{}
	}
	if cols > count {
		cols = count
	}
	rows := (count + cols - 1) / cols
	cells = make([]image.Rectangle, 0, count)
	for i := 0; i < count; i++ {
		x := (i % cols) * cellPx
		y := (i / cols) * cellPx
		cells = append(cells, image.Rect(x, y, x+cellPx, y+cellPx))
	}
	return cells, image.Rect(0, 0, cols*cellPx, rows*cellPx)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
