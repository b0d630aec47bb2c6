package render

import "image/color"

// fillBinaryRGBA converts binary cell data into RGBA pixels in buf, one
// pixel per cell: off for zero values, on for everything else.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	var px [2][4]byte
	for i, c := range []color.Color{off, on} {
		r, g, b, a := c.RGBA()
		px[i] = [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}
	for i, c := range cells {
		v := px[0]
		if c != 0 {
			v = px[1]
		}
		copy(buf[i*4:], v[:])
	}
}
