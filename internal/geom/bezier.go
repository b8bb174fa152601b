package geom

import "math"

// CubicPoint evaluates a cubic Bezier with control points p0..p3 at t in [0,1].
func CubicPoint(p0, p1, p2, p3 Vec2, t float64) Vec2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Vec2{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// CubicDeriv1 returns B'(t), the first derivative (tangent, unnormalized).
func CubicDeriv1(p0, p1, p2, p3 Vec2, t float64) Vec2 {
	mt := 1 - t
	a := 3 * mt * mt
	b := 6 * mt * t
	c := 3 * t * t
	return Vec2{
		X: a*(p1.X-p0.X) + b*(p2.X-p1.X) + c*(p3.X-p2.X),
		Y: a*(p1.Y-p0.Y) + b*(p2.Y-p1.Y) + c*(p3.Y-p2.Y),
	}
}

// CubicDeriv2 returns B''(t), the second derivative.
func CubicDeriv2(p0, p1, p2, p3 Vec2, t float64) Vec2 {
	mt := 1 - t
	a := 6 * mt
	b := 6 * t
	return Vec2{
		X: a*(p2.X-2*p1.X+p0.X) + b*(p3.X-2*p2.X+p1.X),
		Y: a*(p2.Y-2*p1.Y+p0.Y) + b*(p3.Y-2*p2.Y+p1.Y),
	}
}

// CubicCurvature computes kappa = (B' x B'') / |B'|^3 at t. Returns 0 where
// the tangent vanishes (degenerate point) rather than propagating Inf/NaN.
func CubicCurvature(p0, p1, p2, p3 Vec2, t float64) float64 {
	d1 := CubicDeriv1(p0, p1, p2, p3, t)
	d2 := CubicDeriv2(p0, p1, p2, p3, t)
	speed := d1.Length()
	if speed < TangentEqTol {
		return 0
	}
	return d1.Cross(d2) / (speed * speed * speed)
}

// CubicSplit applies De Casteljau's algorithm to split a cubic at t into two
// cubics [p0..p3] -> (left, right), sharing the point at t.
func CubicSplit(p0, p1, p2, p3 Vec2, t float64) (left, right [4]Vec2) {
	ab := Lerp(p0, p1, t)
	bc := Lerp(p1, p2, t)
	cd := Lerp(p2, p3, t)
	abc := Lerp(ab, bc, t)
	bcd := Lerp(bc, cd, t)
	abcd := Lerp(abc, bcd, t)

	left = [4]Vec2{p0, ab, abc, abcd}
	right = [4]Vec2{abcd, bcd, cd, p3}
	return
}

// CubicArcLength approximates the arc length of a cubic by sampling n
// uniformly spaced points (n >= 10) and summing chord lengths. Callers
// needing higher accuracy for long curves should raise n proportional to
// an estimated chord length.
func CubicArcLength(p0, p1, p2, p3 Vec2, n int) float64 {
	if n < 10 {
		n = 10
	}
	total := 0.0
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		cur := CubicPoint(p0, p1, p2, p3, t)
		total += cur.Sub(prev).Length()
		prev = cur
	}
	return total
}

// AdaptiveSampleCount picks a sample count for CubicArcLength / curve
// flattening proportional to a rough chord-length estimate divided by a
// step tolerance, clamped to a sane range.
func AdaptiveSampleCount(p0, p1, p2, p3 Vec2, stepTol float64) int {
	rough := p0.Sub(p1).Length() + p1.Sub(p2).Length() + p2.Sub(p3).Length()
	if stepTol <= 0 {
		stepTol = 0.1
	}
	n := int(math.Ceil(rough / stepTol))
	if n < 10 {
		n = 10
	}
	if n > 400 {
		n = 400
	}
	return n
}

// HasCuspSignChange reports whether curvature changes sign by more than
// CurvSignChangeTol somewhere along the segment, sampled at nSamples
// points. Used to decide whether a Bezier segment needs cusp splitting
// before offsetting.
func HasCuspSignChange(p0, p1, p2, p3 Vec2, nSamples int) bool {
	if nSamples < 4 {
		nSamples = 4
	}
	prevKappa := CubicCurvature(p0, p1, p2, p3, 0)
	for i := 1; i <= nSamples; i++ {
		t := float64(i) / float64(nSamples)
		k := CubicCurvature(p0, p1, p2, p3, t)
		if (prevKappa > CurvSignChangeTol && k < -CurvSignChangeTol) ||
			(prevKappa < -CurvSignChangeTol && k > CurvSignChangeTol) {
			return true
		}
		prevKappa = k
	}
	return false
}

// FindCuspParameter binary-searches for the parameter in (lo, hi) where
// curvature changes sign, to within a small number of bisections. Assumes
// the caller has already established a sign change exists in [lo, hi].
func FindCuspParameter(p0, p1, p2, p3 Vec2, lo, hi float64) float64 {
	signAt := func(t float64) float64 {
		k := CubicCurvature(p0, p1, p2, p3, t)
		switch {
		case k > 0:
			return 1
		case k < 0:
			return -1
		default:
			return 0
		}
	}
	loSign := signAt(lo)
	for i := 0; i < 24; i++ {
		mid := (lo + hi) / 2
		if signAt(mid) == loSign {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
