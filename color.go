package lut

import "image/color"

// Color is an RGB value whose channels can index a lookup table.
//
// MaxR, MaxG and MaxB report the largest level each channel can hold. They
// must not depend on the receiver: table builders call them on the zero
// value of the color type to size and scale their tables.
type Color interface {
	R() uint8
	G() uint8
	B() uint8

	MaxR() uint8
	MaxG() uint8
	MaxB() uint8
}

// Verify at compile time that the packed formats implement both Color and
// color.Color.
var (
	_ Color       = Rgb555(0)
	_ Color       = Rgb565(0)
	_ Color       = Rgb666(0)
	_ Color       = Rgb888(0)
	_ color.Color = Rgb555(0)
	_ color.Color = Rgb565(0)
	_ color.Color = Rgb666(0)
	_ color.Color = Rgb888(0)
)

// Color models converting arbitrary colors into the packed formats.
// Alpha is ignored: panels are opaque.
var (
	Rgb555Model color.Model = color.ModelFunc(rgb555Model)
	Rgb565Model color.Model = color.ModelFunc(rgb565Model)
	Rgb666Model color.Model = color.ModelFunc(rgb666Model)
	Rgb888Model color.Model = color.ModelFunc(rgb888Model)
)

// Rgb555 is a 15-bit color packed as 0RRRRRGGGGGBBBBB.
type Rgb555 uint16

// NewRgb555 packs the low 5 bits of each channel.
func NewRgb555(r, g, b uint8) Rgb555 {
	return Rgb555(uint16(r&0x1F)<<10 | uint16(g&0x1F)<<5 | uint16(b&0x1F))
}

func (c Rgb555) R() uint8                  { return uint8(c>>10) & 0x1F }
func (c Rgb555) G() uint8                  { return uint8(c>>5) & 0x1F }
func (c Rgb555) B() uint8                  { return uint8(c) & 0x1F }
func (Rgb555) MaxR() uint8                 { return 0x1F }
func (Rgb555) MaxG() uint8                 { return 0x1F }
func (Rgb555) MaxB() uint8                 { return 0x1F }
func (c Rgb555) RGBA() (r, g, b, a uint32) { return expandRGB(c) }

// Rgb565 is the 16-bit RRRRRGGGGGGBBBBB format used by most small TFT
// controllers.
type Rgb565 uint16

// NewRgb565 packs the low 5, 6 and 5 bits of r, g and b.
func NewRgb565(r, g, b uint8) Rgb565 {
	return Rgb565(uint16(r&0x1F)<<11 | uint16(g&0x3F)<<5 | uint16(b&0x1F))
}

func (c Rgb565) R() uint8                  { return uint8(c>>11) & 0x1F }
func (c Rgb565) G() uint8                  { return uint8(c>>5) & 0x3F }
func (c Rgb565) B() uint8                  { return uint8(c) & 0x1F }
func (Rgb565) MaxR() uint8                 { return 0x1F }
func (Rgb565) MaxG() uint8                 { return 0x3F }
func (Rgb565) MaxB() uint8                 { return 0x1F }
func (c Rgb565) RGBA() (r, g, b, a uint32) { return expandRGB(c) }

// Rgb666 is an 18-bit color with 6 bits per channel in the low bits of a
// uint32.
type Rgb666 uint32

// NewRgb666 packs the low 6 bits of each channel.
func NewRgb666(r, g, b uint8) Rgb666 {
	return Rgb666(uint32(r&0x3F)<<12 | uint32(g&0x3F)<<6 | uint32(b&0x3F))
}

func (c Rgb666) R() uint8                  { return uint8(c>>12) & 0x3F }
func (c Rgb666) G() uint8                  { return uint8(c>>6) & 0x3F }
func (c Rgb666) B() uint8                  { return uint8(c) & 0x3F }
func (Rgb666) MaxR() uint8                 { return 0x3F }
func (Rgb666) MaxG() uint8                 { return 0x3F }
func (Rgb666) MaxB() uint8                 { return 0x3F }
func (c Rgb666) RGBA() (r, g, b, a uint32) { return expandRGB(c) }

// Rgb888 is a 24-bit color packed as 0xRRGGBB.
type Rgb888 uint32

// NewRgb888 packs three 8-bit channels.
func NewRgb888(r, g, b uint8) Rgb888 {
	return Rgb888(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Rgb888) R() uint8                  { return uint8(c >> 16) }
func (c Rgb888) G() uint8                  { return uint8(c >> 8) }
func (c Rgb888) B() uint8                  { return uint8(c) }
func (Rgb888) MaxR() uint8                 { return 0xFF }
func (Rgb888) MaxG() uint8                 { return 0xFF }
func (Rgb888) MaxB() uint8                 { return 0xFF }
func (c Rgb888) RGBA() (r, g, b, a uint32) { return expandRGB(c) }

// expandRGB scales each channel of c to the 16-bit range of color.Color.
func expandRGB(c Color) (r, g, b, a uint32) {
	return expand(c.R(), c.MaxR()), expand(c.G(), c.MaxG()), expand(c.B(), c.MaxB()), 0xFFFF
}

func expand(v, maxV uint8) uint32 {
	return uint32(v) * 0xFFFF / uint32(maxV)
}

// truncate keeps the top bits of a 16-bit color.Color channel.
func truncate(v uint32, bits uint) uint8 {
	return uint8(v >> (16 - bits))
}

func rgb555Model(c color.Color) color.Color {
	if c, ok := c.(Rgb555); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return NewRgb555(truncate(r, 5), truncate(g, 5), truncate(b, 5))
}

func rgb565Model(c color.Color) color.Color {
	if c, ok := c.(Rgb565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return NewRgb565(truncate(r, 5), truncate(g, 6), truncate(b, 5))
}

func rgb666Model(c color.Color) color.Color {
	if c, ok := c.(Rgb666); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return NewRgb666(truncate(r, 6), truncate(g, 6), truncate(b, 6))
}

func rgb888Model(c color.Color) color.Color {
	if c, ok := c.(Rgb888); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return NewRgb888(truncate(r, 8), truncate(g, 8), truncate(b, 8))
}
