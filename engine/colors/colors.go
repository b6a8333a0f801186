package colors

type Color [4]float32

var (
	White = Color{1, 1, 1, 1}
	Red   = Color{1, 0, 0, 1}
	Black = Color{0, 0, 0, 1}
)

// RGBA8 converts to 8-bit channels, clamping to [0,1] first.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c[0]), to8(c[1]), to8(c[2]), to8(c[3])
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
