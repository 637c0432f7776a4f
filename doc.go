// Package lut provides gamma-correction lookup tables for RGB colors driving
// embedded displays.
//
// # Overview
//
// A color with a few bits per channel (RGB565, RGB888, ...) is remapped
// through a power curve into a target bit depth B, producing levels in
// [0, 2^B-1] that a display controller can use directly, for example as PWM
// duty cycles.
//
// The curve is evaluated once per level when the table is built, so
// correcting a pixel costs three slice reads.
//
// # Quick Start
//
//	import "github.com/gogpu/lut"
//
//	// 10-bit PWM output for 8-bit colors.
//	table, err := lut.MustNewGammaLUT[lut.Rgb888](10).Init(lut.UniformGamma(2.2))
//	if err != nil {
//		return err
//	}
//	r, g, b := table.Lookup(lut.NewRgb888(128, 64, 255))
//
// # Build states
//
// Building happens in two steps. NewGammaLUT allocates an UninitGammaLUT,
// which has no Lookup method. Init consumes it and returns a GammaLUT. An
// empty table therefore can never be queried, and an initialized table is
// never modified; changing the gamma means building a new table.
//
// Identity satisfies the same Lut interface without any correction.
//
// # Concurrency
//
// GammaLUT and Identity are read-only once built and may be shared between
// goroutines without locking.
package lut
