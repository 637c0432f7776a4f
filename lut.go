package lut

// Lut converts a color into three corrected channel levels.
//
// Implementations are pure: the result depends only on the color and the
// table, and Lookup never fails. Channel levels larger than the color type's
// maxima are a caller error; implementations may panic on them.
type Lut[C Color] interface {
	Lookup(c C) (r, g, b uint16)
}
