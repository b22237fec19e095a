// Package interpolation remaps scalar coordinates around a moving reference point.
package interpolation

import "math"

// CenterParams describes a value positioned relative to a center inside [Min, Max].
type CenterParams struct {
	Min           float64
	Max           float64
	InitialCenter float64
	InitialValue  float64
	NewCenter     float64
}

// ComputeValueByCenter moves InitialValue so that it keeps the same relative
// offset from NewCenter that it had from InitialCenter. The offset is measured
// as a fraction of the room between the center and the bound on the side the
// value lies, and re-applied to the room on that side of the new center.
// Each side uses its own room rather than the wider of the two, so a value on
// the short side keeps its relative position instead of being pushed into the
// bound. The result is clamped to [Min, Max].
func ComputeValueByCenter(p CenterParams) float64 {
	delta := p.InitialValue - p.InitialCenter
	if delta == 0 {
		return p.NewCenter
	}

	var room0, room1 float64
	if delta > 0 {
		room0 = p.Max - p.InitialCenter
		room1 = p.Max - p.NewCenter
	} else {
		room0 = p.InitialCenter - p.Min
		room1 = p.NewCenter - p.Min
	}

	if room0 <= 0 {
		return clamp(p.NewCenter, p.Min, p.Max)
	}

	ratio := math.Abs(delta) / room0
	value := p.NewCenter + math.Copysign(ratio*room1, delta)
	return clamp(value, p.Min, p.Max)
}

// HueParams describes a hue positioned relative to a reference hue, in degrees.
type HueParams struct {
	InitialCenter float64
	InitialValue  float64
	NewCenter     float64
}

// InterpolateHueRelative applies the shortest signed angular offset between
// InitialCenter and InitialValue to NewCenter. The result is in [0, 360).
func InterpolateHueRelative(p HueParams) float64 {
	delta := wrap(p.InitialValue - p.InitialCenter)
	if delta > 180 {
		delta -= 360
	}
	return wrap(p.NewCenter + delta)
}

// LinearInterpolation returns the value at index on an evenly spaced ramp of
// length entries from min to max. A ramp of one entry yields max.
func LinearInterpolation(index, length int, min, max float64) float64 {
	if length <= 1 {
		return max
	}
	normalized := float64(index) / float64(length-1)
	return min + (max-min)*normalized
}

// MapPosition remaps a position in [0, 1] whose center sits at 0.5 so that
// the center lands on newCenter: [0, 0.5] maps to [0, newCenter] and
// [0.5, 1] maps to [newCenter, 1].
func MapPosition(position, newCenter float64) float64 {
	if position < 0.5 {
		return position / 0.5 * newCenter
	}
	t := (position - 0.5) / 0.5
	return newCenter + t*(1-newCenter)
}

func clamp(v, min, max float64) float64 {
	return math.Min(math.Max(v, min), max)
}

func wrap(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	w := math.Mod(math.Mod(deg, 360)+360, 360)
	if w >= 360 {
		return 0
	}
	return w
}
