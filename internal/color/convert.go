package color

import "math"

// cmykToRGB implements the "max channel" inversion: K = 1 - max(r,g,b), so
// r = (1-c)*(1-k), and symmetrically for g, b.
func cmykToRGB(c CMYK) RGB {
	return RGB{
		R: (1 - c.C) * (1 - c.K),
		G: (1 - c.M) * (1 - c.K),
		B: (1 - c.Y) * (1 - c.K),
	}
}

// rgbToCMYK inverts cmykToRGB: k = 1 - max(r,g,b); when k == 1 the color is
// black and c/m/y are defined as 0 (channels are not meaningful when no ink
// gap exists).
func rgbToCMYK(rgb RGB) CMYK {
	k := 1 - math.Max(rgb.R, math.Max(rgb.G, rgb.B))
	if k >= 1 {
		return CMYK{0, 0, 0, 1}
	}
	return CMYK{
		C: (1 - rgb.R - k) / (1 - k),
		M: (1 - rgb.G - k) / (1 - k),
		Y: (1 - rgb.B - k) / (1 - k),
		K: k,
	}
}

// srgbToLinear/linearToSRGB apply the sRGB transfer function used on the
// RGB->XYZ(D65)->LAB conversion path.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// D65 reference white for CIE XYZ, normalized so Y=1 at white.
const (
	refX = 0.95047
	refY = 1.00000
	refZ = 1.08883
)

func rgbToXYZ(rgb RGB) (x, y, z float64) {
	r := srgbToLinear(clamp01(rgb.R))
	g := srgbToLinear(clamp01(rgb.G))
	b := srgbToLinear(clamp01(rgb.B))

	x = r*0.4124564 + g*0.3575761 + b*0.1804375
	y = r*0.2126729 + g*0.7151522 + b*0.0721750
	z = r*0.0193339 + g*0.1191920 + b*0.9503041
	return
}

func xyzToRGB(x, y, z float64) RGB {
	r := x*3.2404542 + y*-1.5371385 + z*-0.4985314
	g := x*-0.9692660 + y*1.8760108 + z*0.0415560
	b := x*0.0556434 + y*-0.2040259 + z*1.0572252
	return RGB{R: clamp01(linearToSRGB(r)), G: clamp01(linearToSRGB(g)), B: clamp01(linearToSRGB(b))}
}

func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

// rgbToLAB converts via RGB -> XYZ(D65) -> LAB, with sRGB gamma, per
// spec.md §4.1. NaN inputs are caught upstream by sanitizeCMYK, but this
// function additionally guards against propagating NaN should it ever be
// called directly with non-finite RGB, returning neutral gray.
func rgbToLAB(rgb RGB) LAB {
	if math.IsNaN(rgb.R) || math.IsNaN(rgb.G) || math.IsNaN(rgb.B) {
		return LAB{L: 50, A: 0, B: 0}
	}
	x, y, z := rgbToXYZ(rgb)
	fx := labF(x / refX)
	fy := labF(y / refY)
	fz := labF(z / refZ)

	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labToRGB(lab LAB) RGB {
	if math.IsNaN(lab.L) || math.IsNaN(lab.A) || math.IsNaN(lab.B) {
		lab = LAB{L: 50, A: 0, B: 0}
	}
	fy := (lab.L + 16) / 116
	fx := fy + lab.A/500
	fz := fy - lab.B/200

	x := refX * labFInv(fx)
	y := refY * labFInv(fy)
	z := refZ * labFInv(fz)
	return xyzToRGB(x, y, z)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ToCMYK, ToRGB, ToLAB are the public total-conversion entry points named in
// spec.md §4.1; they operate on the Color's already-consistent derived
// fields rather than recomputing, since refresh keeps them in sync.
func (c Color) ToCMYK() CMYK { return c.CMYK }
func (c Color) ToRGB() RGB   { return c.RGB }
func (c Color) ToLAB() LAB   { return c.LAB }
