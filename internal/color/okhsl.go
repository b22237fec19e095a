package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Below this chroma a color is treated as achromatic: hue and saturation are 0.
const achromaticChroma = 1e-6

const (
	toeK1 = 0.206
	toeK2 = 0.03
	toeK3 = (1 + toeK1) / (1 + toeK2)

	// OKHSL places the "mid" chroma at 80% saturation.
	midSaturation    = 0.8
	midSaturationInv = 1.25
)

// OKHSL is a color in the perceptual hue/saturation/lightness space.
// H is in degrees [0, 360) and L is in [0, 1]. S is nominally in [0, 1] but
// saturated colors near the gamut cusp can land marginally above 1; that
// excess is kept so the conversion stays invertible.
type OKHSL struct {
	H float64
	S float64
	L float64
}

// IsLight reports whether the color classifies as a light-mode color.
func (o OKHSL) IsLight() bool {
	return o.L >= 0.5
}

// Hex returns the canonical lowercase #rrggbb form of the color.
func (o OKHSL) Hex() string {
	return o.Color().Clamped().Hex()
}

// Color converts back to sRGB. The result may sit marginally outside the gamut.
func (o OKHSL) Color() colorful.Color {
	l := clamp01(o.L)
	s := math.Max(o.S, 0)
	if l >= 1 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	if l <= 0 {
		return colorful.Color{}
	}

	L := toeInv(l)
	if s == 0 {
		r, g, b := oklabToLinearSRGB(L, 0, 0)
		return colorful.LinearRgb(r, g, b)
	}

	hue := wrapDegrees(o.H) / 360
	a := math.Cos(2 * math.Pi * hue)
	b := math.Sin(2 * math.Pi * hue)

	c0, cMid, cMax := chromaStops(L, a, b)

	var chroma float64
	if s < midSaturation {
		t := midSaturationInv * s
		k1 := midSaturation * c0
		k2 := 1 - k1/cMid
		chroma = t * k1 / (1 - k2*t)
	} else {
		t := (s - midSaturation) / (1 - midSaturation)
		k0 := cMid
		k1 := (1 - midSaturation) * cMid * cMid * midSaturationInv * midSaturationInv / c0
		k2 := 1 - k1/(cMax-cMid)
		chroma = k0 + t*k1/(1-k2*t)
	}
	if math.IsNaN(chroma) || math.IsInf(chroma, 0) {
		chroma = 0
	}

	r, g, bl := oklabToLinearSRGB(L, chroma*a, chroma*b)
	return colorful.LinearRgb(r, g, bl)
}

// FromColor converts an sRGB color to OKHSL.
func FromColor(c colorful.Color) OKHSL {
	lr, lg, lb := c.LinearRgb()
	L, a, b := linearSRGBToOklab(lr, lg, lb)

	chroma := math.Hypot(a, b)
	if chroma < achromaticChroma || L <= 0 || L >= 1 {
		return OKHSL{H: 0, S: 0, L: clamp01(toe(L))}
	}

	an := a / chroma
	bn := b / chroma
	h := wrapDegrees((0.5 + 0.5*math.Atan2(-b, -a)/math.Pi) * 360)

	c0, cMid, cMax := chromaStops(L, an, bn)

	var s float64
	if chroma < cMid {
		k1 := midSaturation * c0
		k2 := 1 - k1/cMid
		t := chroma / (k1 + k2*chroma)
		s = t * midSaturation
	} else {
		k0 := cMid
		k1 := (1 - midSaturation) * cMid * cMid * midSaturationInv * midSaturationInv / c0
		k2 := 1 - k1/(cMax-cMid)
		t := (chroma - k0) / (k1 + k2*(chroma-k0))
		s = midSaturation + (1-midSaturation)*t
	}

	return OKHSL{H: h, S: math.Max(s, 0), L: clamp01(toe(L))}
}

func toe(x float64) float64 {
	y := toeK3*x - toeK1
	return 0.5 * (y + math.Sqrt(y*y+4*toeK2*toeK3*x))
}

func toeInv(x float64) float64 {
	return (x*x + toeK1*x) / (toeK3 * (x + toeK2))
}

func linearSRGBToOklab(r, g, b float64) (float64, float64, float64) {
	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		0.0259040371*l + 0.7827717662*m - 0.8086757660*s
}

func oklabToLinearSRGB(L, a, b float64) (float64, float64, float64) {
	l := L + 0.3963377774*a + 0.2158037573*b
	m := L - 0.1055613458*a - 0.0638541728*b
	s := L - 0.0894841775*a - 1.2914855480*b

	l, m, s = l*l*l, m*m*m, s*s*s

	return 4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		-1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		-0.0041960863*l - 0.7034186147*m + 1.7076147010*s
}

// maxSaturation finds the saturation S = C/L where one sRGB channel clips,
// for a normalized hue direction (a, b).
func maxSaturation(a, b float64) float64 {
	var k0, k1, k2, k3, k4, wl, wm, ws float64

	switch {
	case -1.88170328*a-0.80936493*b > 1:
		k0, k1, k2, k3, k4 = 1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245
		wl, wm, ws = 4.0767416621, -3.3077115913, 0.2309699292
	case 1.81444104*a-1.19445276*b > 1:
		k0, k1, k2, k3, k4 = 0.73956515, -0.45954404, 0.08285427, 0.12541070, 0.14503204
		wl, wm, ws = -1.2684380046, 2.6097574011, -0.3413193965
	default:
		k0, k1, k2, k3, k4 = 1.35733652, -0.00915799, -1.15130210, -0.50559606, 0.00692167
		wl, wm, ws = -0.0041960863, -0.7034186147, 1.7076147010
	}

	S := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	// One Halley step refines the polynomial estimate.
	l_ := 1 + S*kl
	m_ := 1 + S*km
	s_ := 1 + S*ks

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	ldS := 3 * kl * l_ * l_
	mdS := 3 * km * m_ * m_
	sdS := 3 * ks * s_ * s_

	ldS2 := 6 * kl * kl * l_
	mdS2 := 6 * km * km * m_
	sdS2 := 6 * ks * ks * s_

	f := wl*l + wm*m + ws*s
	f1 := wl*ldS + wm*mdS + ws*sdS
	f2 := wl*ldS2 + wm*mdS2 + ws*sdS2

	return S - f*f1/(f1*f1-0.5*f*f2)
}

type cusp struct {
	L float64
	C float64
}

func findCusp(a, b float64) cusp {
	sCusp := maxSaturation(a, b)
	r, g, bl := oklabToLinearSRGB(1, sCusp*a, sCusp*b)
	lCusp := math.Cbrt(1 / math.Max(math.Max(r, g), bl))
	return cusp{L: lCusp, C: lCusp * sCusp}
}

// gamutIntersection finds t such that L0*(1-t) + t*L1, t*C1 lies on the gamut
// boundary for the hue direction (a, b).
func gamutIntersection(a, b, L1, C1, L0 float64, cs cusp) float64 {
	if (L1-L0)*cs.C-(cs.L-L0)*C1 <= 0 {
		return cs.C * L0 / (C1*cs.L + cs.C*(L0-L1))
	}

	t := cs.C * (L0 - 1) / (C1*(cs.L-1) + cs.C*(L0-L1))

	dL := L1 - L0
	dC := C1

	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	ldt := dL + dC*kl
	mdt := dL + dC*km
	sdt := dL + dC*ks

	L := L0*(1-t) + t*L1
	C := t * C1

	l_ := L + C*kl
	m_ := L + C*km
	s_ := L + C*ks

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	dl := 3 * ldt * l_ * l_
	dm := 3 * mdt * m_ * m_
	ds := 3 * sdt * s_ * s_

	dl2 := 6 * ldt * ldt * l_
	dm2 := 6 * mdt * mdt * m_
	ds2 := 6 * sdt * sdt * s_

	halley := func(wl, wm, ws float64) float64 {
		v := wl*l + wm*m + ws*s - 1
		v1 := wl*dl + wm*dm + ws*ds
		v2 := wl*dl2 + wm*dm2 + ws*ds2
		u := v1 / (v1*v1 - 0.5*v*v2)
		if u < 0 {
			return math.MaxFloat64
		}
		return -v * u
	}

	tr := halley(4.0767416621, -3.3077115913, 0.2309699292)
	tg := halley(-1.2684380046, 2.6097574011, -0.3413193965)
	tb := halley(-0.0041960863, -0.7034186147, 1.7076147010)

	return t + math.Min(tr, math.Min(tg, tb))
}

func stMid(a, b float64) (float64, float64) {
	s := 0.11516993 + 1/(7.44778970+4.15901240*b+
		a*(-2.19557347+1.75198401*b+
			a*(-2.13704948-10.02301043*b+
				a*(-4.24894561+5.38770819*b+4.69891013*a))))

	t := 0.11239642 + 1/(1.61320320-0.68124379*b+
		a*(0.40370612+0.90148123*b+
			a*(-0.27087943+0.61223990*b+
				a*(0.00299215-0.45399568*b-0.14661872*a))))

	return s, t
}

// chromaStops returns the chroma reached at 0%, 80% and 100% OKHSL saturation
// for lightness L along the hue direction (a, b).
func chromaStops(L, a, b float64) (float64, float64, float64) {
	cs := findCusp(a, b)

	cMax := gamutIntersection(a, b, L, 1, L, cs)
	sMax, tMax := cs.C/cs.L, cs.C/(1-cs.L)

	k := cMax / math.Min(L*sMax, (1-L)*tMax)

	sMid, tMid := stMid(a, b)
	ca := L * sMid
	cb := (1 - L) * tMid
	cMid := 0.9 * k * math.Sqrt(math.Sqrt(1/(1/(ca*ca*ca*ca)+1/(cb*cb*cb*cb))))

	ca = L * 0.4
	cb = (1 - L) * 0.8
	c0 := math.Sqrt(1 / (1/(ca*ca) + 1/(cb*cb)))

	return c0, cMid, cMax
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(v, 0), 1)
}

func wrapDegrees(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	return math.Mod(math.Mod(h, 360)+360, 360)
}
