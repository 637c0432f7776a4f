// Package framebuffer holds gamma-corrected pixels for a display panel.
//
// A Buffer stores, for every pixel, the three levels produced by a
// lut.Lut. Display drivers read them with Pix or At and push them to the
// controller; this package performs no I/O.
package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/lut"
	xdraw "golang.org/x/image/draw"
)

// ErrModelMismatch is returned by New when the color model does not produce
// values of the buffer's color type.
var ErrModelMismatch = errors.New("framebuffer: color model does not produce the buffer color type")

// Buffer is a w×h panel of corrected RGB levels.
type Buffer[C lut.Color] struct {
	width  int
	height int
	pix    []uint16 // r, g, b per pixel, row major
	table  lut.Lut[C]
	model  color.Model
	interp xdraw.Interpolator
}

// New creates a zeroed buffer. table corrects every pixel written to the
// buffer; model converts image colors to C in Draw.
func New[C lut.Color](width, height int, table lut.Lut[C], model color.Model, opts ...Option) (*Buffer[C], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("framebuffer: invalid dimensions: width=%d, height=%d (both must be > 0)", width, height)
	}
	if table == nil {
		return nil, errors.New("framebuffer: lookup table must not be nil")
	}
	if model == nil {
		return nil, errors.New("framebuffer: color model must not be nil")
	}
	if _, ok := model.Convert(color.Black).(C); !ok {
		var zero C
		return nil, fmt.Errorf("%w: want %T, got %T", ErrModelMismatch, zero, model.Convert(color.Black))
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Buffer[C]{
		width:  width,
		height: height,
		pix:    make([]uint16, width*height*3),
		table:  table,
		model:  model,
		interp: o.interp,
	}, nil
}

// Width returns the panel width in pixels.
func (b *Buffer[C]) Width() int {
	return b.width
}

// Height returns the panel height in pixels.
func (b *Buffer[C]) Height() int {
	return b.height
}

// Bounds returns the panel rectangle, anchored at the origin.
func (b *Buffer[C]) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Pix returns the corrected levels, three per pixel in row-major order.
// The slice aliases the buffer.
func (b *Buffer[C]) Pix() []uint16 {
	return b.pix
}

// Set corrects c and stores it at (x, y). Out-of-bounds writes are ignored.
func (b *Buffer[C]) Set(x, y int, c C) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 3
	b.pix[i+0], b.pix[i+1], b.pix[i+2] = b.table.Lookup(c)
}

// At returns the corrected levels at (x, y), or zeros outside the panel.
func (b *Buffer[C]) At(x, y int) (r, g, bl uint16) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, 0, 0
	}
	i := (y*b.width + x) * 3
	return b.pix[i+0], b.pix[i+1], b.pix[i+2]
}

// Clear fills the whole panel with c.
func (b *Buffer[C]) Clear(c C) {
	r, g, bl := b.table.Lookup(c)
	for i := 0; i < len(b.pix); i += 3 {
		b.pix[i+0] = r
		b.pix[i+1] = g
		b.pix[i+2] = bl
	}
}

// Draw scales src to the panel, converts each pixel to C and stores its
// corrected levels. Transparent source pixels come out black.
func (b *Buffer[C]) Draw(src image.Image) {
	sr := src.Bounds()
	dst := image.NewRGBA(b.Bounds())
	if sr.Dx() == b.width && sr.Dy() == b.height {
		xdraw.Copy(dst, image.Point{}, src, sr, xdraw.Src, nil)
	} else {
		b.interp.Scale(dst, dst.Bounds(), src, sr, xdraw.Src, nil)
	}

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.Set(x, y, b.model.Convert(dst.RGBAAt(x, y)).(C))
		}
	}

	lut.Logger().Debug("framebuffer: image drawn",
		slog.Int("src_width", sr.Dx()),
		slog.Int("src_height", sr.Dy()),
		slog.Int("width", b.width),
		slog.Int("height", b.height))
}
