package lut

import (
	"image/color"
	"testing"
)

func TestPackedChannels(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		r, g, b uint8
	}{
		{"rgb555", NewRgb555(1, 2, 3), 1, 2, 3},
		{"rgb555 masks", NewRgb555(0xFF, 0xFF, 0xFF), 31, 31, 31},
		{"rgb565", NewRgb565(17, 42, 9), 17, 42, 9},
		{"rgb565 masks", NewRgb565(0xFF, 0xFF, 0xFF), 31, 63, 31},
		{"rgb666", NewRgb666(5, 33, 63), 5, 33, 63},
		{"rgb666 masks", NewRgb666(0xFF, 0x40, 0x7F), 63, 0, 63},
		{"rgb888", NewRgb888(128, 64, 255), 128, 64, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r, g, b := tt.c.R(), tt.c.G(), tt.c.B(); r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("channels = (%d, %d, %d), want (%d, %d, %d)", r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestPackedLayout(t *testing.T) {
	if got := NewRgb565(31, 0, 0); got != 0xF800 {
		t.Errorf("rgb565 red = %04x, want f800", uint16(got))
	}
	if got := NewRgb565(0, 63, 0); got != 0x07E0 {
		t.Errorf("rgb565 green = %04x, want 07e0", uint16(got))
	}
	if got := NewRgb555(31, 0, 0); got != 0x7C00 {
		t.Errorf("rgb555 red = %04x, want 7c00", uint16(got))
	}
	if got := NewRgb666(63, 0, 0); got != 0x3F000 {
		t.Errorf("rgb666 red = %05x, want 3f000", uint32(got))
	}
	if got := NewRgb888(0x12, 0x34, 0x56); got != 0x123456 {
		t.Errorf("rgb888 = %06x, want 123456", uint32(got))
	}
}

func TestPackedRGBA(t *testing.T) {
	tests := []struct {
		name                string
		c                   color.Color
		wantR, wantG, wantB uint32
	}{
		{"rgb565 black", NewRgb565(0, 0, 0), 0, 0, 0},
		{"rgb565 white", NewRgb565(31, 63, 31), 0xFFFF, 0xFFFF, 0xFFFF},
		{"rgb555 white", NewRgb555(31, 31, 31), 0xFFFF, 0xFFFF, 0xFFFF},
		{"rgb666 white", NewRgb666(63, 63, 63), 0xFFFF, 0xFFFF, 0xFFFF},
		{"rgb888 mixed", NewRgb888(0x80, 0x00, 0xFF), 0x8080, 0, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != 0xFFFF {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, 65535)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

func TestModelConvert(t *testing.T) {
	src := color.RGBA{R: 0x80, G: 0x40, B: 0xFF, A: 0xFF}
	tests := []struct {
		name  string
		model color.Model
		want  color.Color
	}{
		{"rgb555", Rgb555Model, NewRgb555(16, 8, 31)},
		{"rgb565", Rgb565Model, NewRgb565(16, 16, 31)},
		{"rgb666", Rgb666Model, NewRgb666(32, 16, 63)},
		{"rgb888", Rgb888Model, NewRgb888(0x80, 0x40, 0xFF)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.Convert(src); got != tt.want {
				t.Errorf("Convert(%v) = %v, want %v", src, got, tt.want)
			}
			// Converting a value already in the model is a no-op.
			if got := tt.model.Convert(tt.want); got != tt.want {
				t.Errorf("Convert(%v) = %v, want unchanged", tt.want, got)
			}
		})
	}
}

func TestModelRoundTrip(t *testing.T) {
	for i := 0; i <= 0xFFFF; i++ {
		c565 := Rgb565(i)
		rgba := color.RGBA64Model.Convert(c565)
		if got := Rgb565Model.Convert(rgba); got != c565 {
			t.Fatalf("rgb565 %04x round trip = %04x", i, uint16(got.(Rgb565)))
		}

		c555 := Rgb555(i & 0x7FFF)
		rgba = color.RGBA64Model.Convert(c555)
		if got := Rgb555Model.Convert(rgba); got != c555 {
			t.Fatalf("rgb555 %04x round trip = %04x", i&0x7FFF, uint16(got.(Rgb555)))
		}
	}

	for v := 0; v < 64; v++ {
		c := NewRgb666(uint8(v), uint8(63-v), uint8(v))
		if got := Rgb666Model.Convert(color.RGBA64Model.Convert(c)); got != c {
			t.Errorf("rgb666 %05x round trip = %v", uint32(c), got)
		}
	}
	for v := 0; v < 256; v++ {
		c := NewRgb888(uint8(v), uint8(255-v), uint8(v))
		if got := Rgb888Model.Convert(color.RGBA64Model.Convert(c)); got != c {
			t.Errorf("rgb888 %06x round trip = %v", uint32(c), got)
		}
	}
}
