package render

import "image/color"

// magmaAnchors approximates the magma color ramp, darkest first.
var magmaAnchors = []color.RGBA{
	{R: 0x00, G: 0x00, B: 0x04, A: 0xff},
	{R: 0x1c, G: 0x10, B: 0x44, A: 0xff},
	{R: 0x4f, G: 0x12, B: 0x7b, A: 0xff},
	{R: 0x81, G: 0x25, B: 0x81, A: 0xff},
	{R: 0xb5, G: 0x36, B: 0x7a, A: 0xff},
	{R: 0xe5, G: 0x50, B: 0x64, A: 0xff},
	{R: 0xfb, G: 0x87, B: 0x61, A: 0xff},
	{R: 0xfe, G: 0xc2, B: 0x87, A: 0xff},
	{R: 0xfc, G: 0xfd, B: 0xbf, A: 0xff},
}

// Palette interpolates the magma ramp into n colors, darkest first. n is
// clamped to [2, 256].
func Palette(n int) color.Palette {
	if n < 2 {
		n = 2
	}
	if n > 256 {
		n = 256
	}

	p := make(color.Palette, n)
	last := len(magmaAnchors) - 1
	for i := range p {
		t := float64(i) / float64(n-1) * float64(last)

		lo := int(t)
		if lo >= last {
			p[i] = magmaAnchors[last]
			continue
		}

		frac := t - float64(lo)
		a, b := magmaAnchors[lo], magmaAnchors[lo+1]
		p[i] = color.RGBA{
			R: lerp(a.R, b.R, frac),
			G: lerp(a.G, b.G, frac),
			B: lerp(a.B, b.B, frac),
			A: 0xff,
		}
	}

	return p
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
