package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette/brewer"
)

// barAlpha matches a 0.8 fill opacity.
const barAlpha = 0.8

// set2Size is the largest Set2 palette ColorBrewer defines.
const set2Size = 8

// Palette returns n colors sampled evenly across the full Set2 palette,
// so two series get its first and last colors. Past eight series the
// samples repeat.
func Palette(n int) ([]color.Color, error) {
	if n <= 0 {
		return nil, nil
	}

	p, err := brewer.GetPalette(brewer.TypeQualitative, "Set2", set2Size)
	if err != nil {
		return nil, fmt.Errorf("failed to load Set2 palette: %w", err)
	}
	base := p.Colors()

	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = withAlpha(base[paletteIndex(i, n, len(base))], barAlpha)
	}
	return colors, nil
}

// paletteIndex maps sample i of n onto a listed colormap of size colors,
// treating the samples as evenly spaced points in [0, 1].
func paletteIndex(i, n, size int) int {
	if n == 1 {
		return 0
	}
	x := 1.0
	if i < n-1 {
		x = float64(i) * (1.0 / float64(n-1))
	}
	idx := int(x * float64(size))
	if idx >= size {
		idx = size - 1
	}
	return idx
}

// withAlpha returns c with its opacity scaled, as premultiplied RGBA.
func withAlpha(c color.Color, alpha float64) color.Color {
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * alpha),
		G: uint16(float64(g) * alpha),
		B: uint16(float64(b) * alpha),
		A: uint16(float64(a) * alpha),
	}
}
