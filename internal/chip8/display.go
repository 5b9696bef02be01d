package chip8

// Display dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Frame is a snapshot of the display, one byte per pixel in row-major order
// addressed as y*Width+x. Pixel values are 0 or 1.
type Frame [Width * Height]byte

// Pixel returns whether the pixel at the given position is set.
// Coordinates outside of the display return false.
func (f *Frame) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return f[y*Width+x] != 0
}

// Display is the monochrome framebuffer written by the draw instructions.
type Display struct {
	pixels Frame
}

// Frame returns a copy of the current display content.
func (d *Display) Frame() Frame {
	return d.pixels
}

func (d *Display) clear() {
	d.pixels = Frame{}
}

// drawSprite XORs an 8 pixel wide sprite with one byte per row into the display at
// the given position. The position wraps around the display, pixels that
// exceed an edge are clipped unless wrap is set. It returns whether any set
// pixel was cleared.
func (d *Display) drawSprite(x, y byte, rows []byte, wrap bool) bool {
	x0 := int(x) % Width
	y0 := int(y) % Height
	collision := false

	for row, data := range rows {
		py := y0 + row
		if py >= Height {
			if !wrap {
				break
			}
			py %= Height
		}

		for bit := 0; bit < 8; bit++ {
			if data&(0x80>>bit) == 0 {
				continue
			}
			px := x0 + bit
			if px >= Width {
				if !wrap {
					break
				}
				px %= Width
			}

			index := py*Width + px
			if d.pixels[index] == 1 {
				collision = true
			}
			d.pixels[index] ^= 1
		}
	}
	return collision
}
