package eriplots

import (
	"image/color"
	"testing"

	"github.com/eriplots/eriplots/palettes"
)

func TestAlphaOver(t *testing.T) {
	white := color.NRGBA{0xff, 0xff, 0xff, 0xff}
	black := color.NRGBA{0, 0, 0, 0xff}

	tests := []struct {
		name  string
		c     color.Color
		alpha float64
		bg    color.Color
		want  color.NRGBA
	}{
		{"opaque keeps color", palettes.DarkRed, 1, color.White, color.NRGBA{0xD0, 0x07, 0x3A, 0xff}},
		{"zero gives background", palettes.DarkRed, 0, color.White, white},
		{"half white over black", color.White, 0.5, color.Black, color.NRGBA{0x80, 0x80, 0x80, 0xff}},
		{"alpha above one clamps", palettes.Orange, 2, color.Black, color.NRGBA{0xF7, 0x94, 0x1D, 0xff}},
		{"negative alpha clamps", palettes.Orange, -1, color.Black, black},
		{"input opacity ignored", color.NRGBA{0xff, 0, 0, 0x10}, 1, color.White, color.NRGBA{0xff, 0, 0, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlphaOver(tt.c, tt.alpha, tt.bg); got != tt.want {
				t.Errorf("AlphaOver() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlphaBlendsOverWhite(t *testing.T) {
	for _, pc := range palettes.Colors() {
		for _, a := range []float64{0.1, 0.3, 0.75} {
			got := Alpha(pc, a)
			if got.A != 0xff {
				t.Fatalf("Alpha(%v, %v) is not opaque: %v", pc.Name(), a, got)
			}
			f := pc.Float()
			want := [3]float64{
				(a*f.R + (1 - a)) * 255,
				(a*f.G + (1 - a)) * 255,
				(a*f.B + (1 - a)) * 255,
			}
			for i, ch := range []uint8{got.R, got.G, got.B} {
				if d := float64(ch) - want[i]; d > 1 || d < -1 {
					t.Errorf("Alpha(%v, %v) channel %d = %d, want %.2f", pc.Name(), a, i, ch, want[i])
				}
			}
		}
	}
}
