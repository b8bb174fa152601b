package color

import "math"

// DeltaE76 is the Euclidean distance in LAB space.
func DeltaE76(a, b Color) float64 {
	dl := a.LAB.L - b.LAB.L
	da := a.LAB.A - b.LAB.A
	db := a.LAB.B - b.LAB.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DeltaE94 implements the CIE94 color difference formula with graphic-arts
// weighting factors (kL=kC=kH=1, K1=0.045, K2=0.015).
func DeltaE94(a, b Color) float64 {
	const k1, k2 = 0.045, 0.015
	dl := a.LAB.L - b.LAB.L
	c1 := math.Hypot(a.LAB.A, a.LAB.B)
	c2 := math.Hypot(b.LAB.A, b.LAB.B)
	dc := c1 - c2
	da := a.LAB.A - b.LAB.A
	db := a.LAB.B - b.LAB.B
	dhSq := da*da + db*db - dc*dc
	if dhSq < 0 {
		dhSq = 0
	}
	dh := math.Sqrt(dhSq)

	sl := 1.0
	sc := 1 + k1*c1
	sh := 1 + k2*c1

	return math.Sqrt(sq(dl/sl) + sq(dc/sc) + sq(dh/sh))
}

func sq(v float64) float64 { return v * v }

// DeltaE2000 implements the CIEDE2000 color difference formula.
func DeltaE2000(a, b Color) float64 {
	l1, a1, b1 := a.LAB.L, a.LAB.A, a.LAB.B
	l2, a2, b2 := b.LAB.L, b.LAB.A, b.LAB.B

	avgL := (l1 + l2) / 2
	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)
	avgC := (c1 + c2) / 2

	g := 0.5 * (1 - math.Sqrt(math.Pow(avgC, 7)/(math.Pow(avgC, 7)+math.Pow(25, 7))))
	a1p := a1 * (1 + g)
	a2p := a2 * (1 + g)

	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)
	avgCp := (c1p + c2p) / 2

	h1p := hueDeg(a1p, b1)
	h2p := hueDeg(a2p, b2)

	var avgHp float64
	if math.Abs(h1p-h2p) > 180 {
		avgHp = (h1p + h2p + 360) / 2
	} else {
		avgHp = (h1p + h2p) / 2
	}

	t := 1 - 0.17*cosd(avgHp-30) + 0.24*cosd(2*avgHp) + 0.32*cosd(3*avgHp+6) - 0.20*cosd(4*avgHp-63)

	var deltaHp float64
	switch {
	case c1p*c2p == 0:
		deltaHp = 0
	case math.Abs(h2p-h1p) <= 180:
		deltaHp = h2p - h1p
	case h2p-h1p > 180:
		deltaHp = h2p - h1p - 360
	default:
		deltaHp = h2p - h1p + 360
	}
	deltaLp := l2 - l1
	deltaCp := c2p - c1p
	deltaHBigp := 2 * math.Sqrt(c1p*c2p) * sind(deltaHp/2)

	sl := 1 + (0.015*sq(avgL-50))/math.Sqrt(20+sq(avgL-50))
	sc := 1 + 0.045*avgCp
	sh := 1 + 0.015*avgCp*t

	deltaTheta := 30 * math.Exp(-sq((avgHp-275)/25))
	rc := 2 * math.Sqrt(math.Pow(avgCp, 7)/(math.Pow(avgCp, 7)+math.Pow(25, 7)))
	rt := -rc * sind(2*deltaTheta)

	kl, kc, kh := 1.0, 1.0, 1.0
	return math.Sqrt(
		sq(deltaLp/(kl*sl)) +
			sq(deltaCp/(kc*sc)) +
			sq(deltaHBigp/(kh*sh)) +
			rt*(deltaCp/(kc*sc))*(deltaHBigp/(kh*sh)),
	)
}

func hueDeg(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func cosd(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }
func sind(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }

// NormalizeNaN returns the neutral-gray sentinel (L=50, a=0, b=0) used when
// a conversion upstream produced NaN, per spec.md §4.1's failure policy:
// never abort, log once and substitute neutral gray.
func NormalizeNaN() LAB {
	return LAB{L: 50, A: 0, B: 0}
}
