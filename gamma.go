package lut

import (
	"fmt"
	"log/slog"
	"math"
)

// MaxBits is the largest supported target bit depth. Corrected levels are
// returned as uint16, so a deeper table could not be represented.
const MaxBits = 16

// Gamma holds one exponent per channel. Exponents above 1 darken mid tones,
// exponents below 1 brighten them.
type Gamma struct {
	R, G, B float32
}

// UniformGamma returns a Gamma applying g to all three channels.
func UniformGamma(g float32) Gamma {
	return Gamma{R: g, G: g, B: g}
}

// UninitGammaLUT is a gamma table that has been allocated but not computed.
// It has no Lookup method; call Init to obtain a usable GammaLUT.
type UninitGammaLUT[C Color] struct {
	bits    uint
	r, g, b []uint16
}

// GammaLUT is an initialized gamma table. It is immutable and safe for
// concurrent use by multiple goroutines.
type GammaLUT[C Color] struct {
	bits    uint
	r, g, b []uint16
}

// Verify at compile time that GammaLUT implements Lut.
var _ Lut[Rgb888] = (*GammaLUT[Rgb888])(nil)

// NewGammaLUT allocates zeroed tables of 2^bits entries per channel for the
// color type C. Nothing is computed until Init is called.
//
// bits must be in [1, MaxBits], and every channel maximum of C must be
// positive and below 2^bits, so that any level of C indexes inside the table.
//
// Example:
//
//	u, err := lut.NewGammaLUT[lut.Rgb888](8)
//	if err != nil {
//		return err
//	}
//	table, err := u.Init(lut.UniformGamma(2.2))
func NewGammaLUT[C Color](bits uint) (*UninitGammaLUT[C], error) {
	if bits < 1 || bits > MaxBits {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBitDepth, bits)
	}
	size := 1 << bits

	var zero C
	for _, ch := range []struct {
		name string
		max  uint8
	}{
		{"red", zero.MaxR()},
		{"green", zero.MaxG()},
		{"blue", zero.MaxB()},
	} {
		if ch.max == 0 {
			return nil, fmt.Errorf("%w: %s channel of %T", ErrZeroSourceMax, ch.name, zero)
		}
		if int(ch.max) >= size {
			return nil, fmt.Errorf("%w: %s channel of %T reaches %d, table has %d entries",
				ErrTableTooSmall, ch.name, zero, ch.max, size)
		}
	}

	return &UninitGammaLUT[C]{
		bits: bits,
		r:    make([]uint16, size),
		g:    make([]uint16, size),
		b:    make([]uint16, size),
	}, nil
}

// MustNewGammaLUT is like NewGammaLUT but panics on error.
// It simplifies declaring package-level tables.
func MustNewGammaLUT[C Color](bits uint) *UninitGammaLUT[C] {
	u, err := NewGammaLUT[C](bits)
	if err != nil {
		panic(err)
	}
	return u
}

// Bits returns the target bit depth of the table.
func (u *UninitGammaLUT[C]) Bits() uint {
	return u.bits
}

// Init computes every entry of the three tables for g and hands them over to
// the returned GammaLUT. The builder is consumed: calling Init again returns
// ErrConsumed.
//
// For each channel, index i is first rescaled from the channel's source range
// [0, max] to [0, 2^bits-1], then mapped through the power curve and rounded.
// Results that cannot be represented as uint16 (NaN, negative, infinite or
// too large) become 0.
func (u *UninitGammaLUT[C]) Init(g Gamma) (*GammaLUT[C], error) {
	if u.r == nil {
		return nil, ErrConsumed
	}

	var zero C
	targetMax := uint16(len(u.r) - 1)
	fillChannel(u.r, zero.MaxR(), targetMax, g.R)
	fillChannel(u.g, zero.MaxG(), targetMax, g.G)
	fillChannel(u.b, zero.MaxB(), targetMax, g.B)

	t := &GammaLUT[C]{bits: u.bits, r: u.r, g: u.g, b: u.b}
	u.r, u.g, u.b = nil, nil, nil

	Logger().Debug("lut: gamma table built",
		slog.String("color", fmt.Sprintf("%T", zero)),
		slog.Uint64("bits", uint64(t.bits)),
		slog.Float64("gamma_r", float64(g.R)),
		slog.Float64("gamma_g", float64(g.G)),
		slog.Float64("gamma_b", float64(g.B)))

	return t, nil
}

// Lookup returns the corrected levels for c in O(1).
func (t *GammaLUT[C]) Lookup(c C) (r, g, b uint16) {
	return t.r[c.R()], t.g[c.G()], t.b[c.B()]
}

// Bits returns the target bit depth of the table.
func (t *GammaLUT[C]) Bits() uint {
	return t.bits
}

// Len returns the number of entries per channel (2^Bits).
func (t *GammaLUT[C]) Len() int {
	return len(t.r)
}

// TargetMax returns the largest corrected level, 2^Bits - 1.
func (t *GammaLUT[C]) TargetMax() uint16 {
	return uint16(len(t.r) - 1)
}

// Tables returns copies of the red, green and blue tables, for example to
// emit them as constants in firmware sources.
func (t *GammaLUT[C]) Tables() (r, g, b []uint16) {
	return append([]uint16(nil), t.r...),
		append([]uint16(nil), t.g...),
		append([]uint16(nil), t.b...)
}

// fillChannel computes one channel table.
func fillChannel(dst []uint16, sourceMax uint8, targetMax uint16, gamma float32) {
	for i := range dst {
		dst[i] = gammaLevel(i, sourceMax, targetMax, gamma)
	}
}

// gammaLevel maps source level index to its corrected target level.
// Arithmetic is done in float32.
func gammaLevel(index int, sourceMax uint8, targetMax uint16, gamma float32) uint16 {
	maxV := float32(targetMax)
	remapped := float32(index) / float32(sourceMax) * maxV
	value := roundf(maxV * powf(remapped/maxV, gamma))
	return toLevel(value)
}

// powf raises x to y. A zero base yields 0 for every exponent, including 0.
func powf(x, y float32) float32 {
	if x == 0 {
		return 0
	}
	return float32(math.Pow(float64(x), float64(y)))
}

// roundf rounds half away from zero.
func roundf(x float32) float32 {
	return float32(math.Round(float64(x)))
}

// toLevel narrows v to uint16. Anything outside [0, 65535], including NaN,
// becomes 0.
func toLevel(v float32) uint16 {
	if !(v >= 0 && v <= math.MaxUint16) {
		return 0
	}
	//nolint:gosec // G115: v is within [0, 65535]
	return uint16(v)
}
