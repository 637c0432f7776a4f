package lut

// Identity is a Lut that applies no correction. Each channel is returned as
// is, widened to uint16 but not rescaled, so it only makes sense when the
// source and target ranges coincide.
type Identity[C Color] struct{}

// Lookup returns the raw channel levels of c.
func (Identity[C]) Lookup(c C) (r, g, b uint16) {
	return uint16(c.R()), uint16(c.G()), uint16(c.B())
}
