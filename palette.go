package main

import "fmt"

// ColorF is a straight-alpha RGB color with components in [0, 1]. Alpha is
// not stored here; it comes from the scene opacity at draw time.
type ColorF struct {
	R float32
	G float32
	B float32
}

// The palette is fixed process-wide configuration. Each family is an ordered
// list of shades, brightest first. Generators pick shades by index or parity,
// they never mutate these slices.
var (
	PaletteCyan = []ColorF{
		HexColor("#00ffff"),
		HexColor("#00e5e5"),
		HexColor("#00cccc"),
		HexColor("#00b2b2"),
		HexColor("#009999"),
	}
	PaletteMagenta = []ColorF{
		HexColor("#ff00ff"),
		HexColor("#e500e5"),
		HexColor("#cc00cc"),
		HexColor("#b200b2"),
		HexColor("#990099"),
	}
	PaletteGold = []ColorF{
		HexColor("#ffd700"),
		HexColor("#e5c100"),
		HexColor("#ccac00"),
		HexColor("#b29600"),
		HexColor("#998100"),
	}
	PaletteWhite = []ColorF{
		HexColor("#ffffff"),
		HexColor("#e5e5e5"),
		HexColor("#cccccc"),
	}
	PaletteBlack = []ColorF{
		HexColor("#000000"),
	}
)

// HexColor parses "#rrggbb" into a ColorF. The palette is compile-time data,
// so a malformed literal is a programming error and crashes via Check.
func HexColor(s string) (c ColorF) {
	var r, g, b uint8
	_, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	Check(err)
	c.R = float32(r) / 255
	c.G = float32(g) / 255
	c.B = float32(b) / 255
	return
}

// Shade returns family[idx] with idx clamped to the family, so callers can
// index layers without worrying about palette length.
func Shade(family []ColorF, idx int) ColorF {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(family) {
		idx = len(family) - 1
	}
	return family[idx]
}
