package teams

import "image/color"

// RGB is an opaque team color, 0-255 per channel.
type RGB struct {
	R, G, B uint8
}

// Lighten adds delta to every channel, clamped to 255.
func (c RGB) Lighten(delta int) RGB {
	return RGB{R: clampChannel(int(c.R) + delta), G: clampChannel(int(c.G) + delta), B: clampChannel(int(c.B) + delta)}
}

// Darken subtracts delta from every channel, clamped to 0.
func (c RGB) Darken(delta int) RGB {
	return c.Lighten(-delta)
}

// NRGBA returns the color with the given non-premultiplied alpha.
func (c RGB) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
