package framebuffer

import xdraw "golang.org/x/image/draw"

// Option configures a Buffer during creation.
//
// Example:
//
//	fb, err := framebuffer.New(64, 32, table, lut.Rgb888Model,
//		framebuffer.WithInterpolator(xdraw.NearestNeighbor))
type Option func(*options)

type options struct {
	interp xdraw.Interpolator
}

func defaultOptions() options {
	return options{
		interp: xdraw.ApproxBiLinear,
	}
}

// WithInterpolator sets the scaler used by Draw when the source image and
// the panel differ in size. The default is xdraw.ApproxBiLinear. Use
// xdraw.NearestNeighbor for pixel art or xdraw.CatmullRom for photographs.
func WithInterpolator(i xdraw.Interpolator) Option {
	return func(o *options) {
		if i != nil {
			o.interp = i
		}
	}
}
