package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestClassifyHeuristics(t *testing.T) {
	cases := []struct {
		name string
		want Type
	}{
		{"PANTONE White Opaque", TypeWhiteUnderprint},
		{"Metallic Silver 877", TypeMetallic},
		{"Gold Foil", TypeMetallic},
		{"Neon Pink Fluor", TypeFluorescent},
		{"Spot Gloss Varnish", TypeVarnish},
		{"PANTONE 286 C", TypeProcessCMYK},
	}
	for _, tc := range cases {
		got := Classify(tc.name, CMYK{C: 0.5, M: 0.2, Y: 0.1, K: 0})
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func TestIsBlackRichAndPure(t *testing.T) {
	rich := NewFromCMYK100("rich", CMYK{C: 60, M: 40, Y: 40, K: 95}, 1)
	assert.True(t, rich.IsBlack())

	pure := NewFromCMYK100("pure", CMYK{C: 2, M: 1, Y: 0, K: 98}, 1)
	assert.True(t, pure.IsBlack())

	notBlack := NewFromCMYK100("gray", CMYK{C: 0, M: 0, Y: 0, K: 50}, 1)
	assert.False(t, notBlack.IsBlack())
}

// Property #1 (spec.md §8): RGB -> CMYK -> RGB round-trips within 1/255 per
// channel for any RGB with components in [0,1].
func TestRGBCMYKRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ch := rapid.Float64Range(0, 1)
		rgb := RGB{R: ch.Draw(rt, "r"), G: ch.Draw(rt, "g"), B: ch.Draw(rt, "b")}

		cmyk := rgbToCMYK(rgb)
		back := cmykToRGB(cmyk)

		const tol = 1.0 / 255.0
		if diff(rgb.R, back.R) > tol || diff(rgb.G, back.G) > tol || diff(rgb.B, back.B) > tol {
			rt.Fatalf("round trip drifted: %+v -> %+v -> %+v", rgb, cmyk, back)
		}
	})
}

func diff(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}

// Property #2 (spec.md §8): for two colors with identical K and identical
// C+M+Y, the one with the larger K has strictly larger neutral density.
func TestNeutralDensityMonotonicProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := rapid.Float64Range(0, 0.8).Draw(rt, "cmySum")
		c := rapid.Float64Range(0, base).Draw(rt, "c")
		m := rapid.Float64Range(0, base-c).Draw(rt, "m")
		y := base - c - m
		k1 := rapid.Float64Range(0, 0.9).Draw(rt, "k1")
		deltaK := rapid.Float64Range(1e-4, 0.1).Draw(rt, "deltaK")
		k2 := k1 + deltaK
		if k2 > 1 {
			k2 = 1
		}
		if k2 <= k1 {
			return
		}

		nd1 := NeutralDensity(CMYK{C: c, M: m, Y: y, K: k1})
		nd2 := NeutralDensity(CMYK{C: c, M: m, Y: y, K: k2})
		if nd2 <= nd1 {
			rt.Fatalf("expected strictly larger neutral density for larger K: %v vs %v", nd1, nd2)
		}
	})
}

func TestOpticalDensityRange(t *testing.T) {
	full := OpticalDensity(CMYK{C: 1, M: 1, Y: 1, K: 1})
	assert.LessOrEqual(t, full, 4.0)
	zero := OpticalDensity(CMYK{})
	assert.Equal(t, 0.0, zero)
}

func TestDeltaEOrderingSanity(t *testing.T) {
	white := NewFromCMYK100("w", CMYK{}, 1)
	black := NewFromCMYK100("k", CMYK{C: 0, M: 0, Y: 0, K: 100}, 1)
	gray := NewFromCMYK100("g", CMYK{C: 0, M: 0, Y: 0, K: 50}, 1)

	assert.Greater(t, DeltaE76(white, black), DeltaE76(white, gray))
	assert.Greater(t, DeltaE2000(white, black), 0.0)
}
