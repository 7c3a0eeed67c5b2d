package chip8

const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is a monochrome framebuffer. Sprites are drawn
// with xor, so redrawing a sprite erases it.
type Display struct {
	pixels [DisplayHeight][DisplayWidth]bool
}

func NewDisplay() *Display {
	return &Display{}
}

func (d *Display) Clear() {
	d.pixels = [DisplayHeight][DisplayWidth]bool{}
}

// DrawSprite xors the sprite rows onto the screen at x, y.
// Every pixel wraps around the screen edges. Reports whether
// any pixel was erased by the draw.
func (d *Display) DrawSprite(x, y uint8, rows []uint8) bool {
	collision := false
	for row, bits := range rows {
		py := (int(y) + row) % DisplayHeight
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % DisplayWidth
			if d.pixels[py][px] {
				collision = true
			}
			d.pixels[py][px] = !d.pixels[py][px]
		}
	}
	return collision
}

// IsOn reports whether the pixel at x, y is lit.
// Coordinates wrap like DrawSprite.
func (d *Display) IsOn(x, y int) bool {
	return d.pixels[y%DisplayHeight][x%DisplayWidth]
}
