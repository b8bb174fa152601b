package color

import "math"

// OpticalDensity computes a weighted sum of ink coverage scaled to 0..4 and
// monotonic with total ink, per spec.md §4.1. Channels are expected on the
// engine's canonical 0..1 convention.
func OpticalDensity(c CMYK) float64 {
	c100 := CMYK{C: c.C * 100, M: c.M * 100, Y: c.Y * 100, K: c.K * 100}
	raw := (c100.C + c100.M + c100.Y + 1.5*c100.K) / (300 + 150)
	return raw * 4
}

// NeutralDensity computes the ANSI TR-001 weighted ink-strength metric used
// as the rule engine's default priority, on a 0..100-channel basis. This is
// the canonical priority metric unless overridden by settings.
func NeutralDensity(c CMYK) float64 {
	c100 := CMYK{C: c.C * 100, M: c.M * 100, Y: c.Y * 100, K: c.K * 100}
	return 0.0045*c100.C + 0.0065*c100.M + 0.0015*c100.Y + 0.018*c100.K
}

// Chroma returns the LAB chroma, sqrt(a^2+b^2).
func (c Color) Chroma() float64 {
	return math.Hypot(c.LAB.A, c.LAB.B)
}

// Luminance returns L* in 0..100.
func (c Color) Luminance() float64 {
	return c.LAB.L
}
