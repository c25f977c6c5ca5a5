package render

import "image/color"

// SnakePalette maps the engine's cell values (empty, body, head, food) to colors.
var SnakePalette = []color.RGBA{
	{R: 12, G: 12, B: 16, A: 255},
	{R: 60, G: 170, B: 80, A: 255},
	{R: 150, G: 230, B: 120, A: 255},
	{R: 220, G: 70, B: 60, A: 255},
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. Values
// past the end of the palette use its last entry. When the palette is empty
// the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
