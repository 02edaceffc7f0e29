package geom

import "math"

// approxEqualTolerance is the absolute tolerance used to decide when a
// tangent value is indistinguishable from zero.
const approxEqualTolerance = 1e-10

// FullShadowLength returns the horizontal ground distance covered in full
// shade by an obstruction of height h1 for a person of height h2, given the
// sun's angle of incidence with the ground in radians.
//
// With the sun at angle theta, the total shadow of the obstruction runs
// h1/tan(theta) along the ground, but only the first (h1-h2)/tan(theta) of it
// is deep enough to shade someone h2 tall. h1 and h2 can be in any unit as
// long as they match; the result is in that same unit.
//
// When tan(theta) is approximately zero (theta at 0, pi, 2*pi, ...) the sun
// sits on the horizon and the result is +Inf. The result is negative when
// h2 > h1 (the person is taller than the obstruction); callers interpret the
// sign. Non-finite inputs are not validated and propagate per IEEE-754.
func FullShadowLength(h1, h2, thetaRad float64) float64 {
	tan := math.Tan(thetaRad)
	if ApproxEqual(tan, 0) {
		return math.Inf(1)
	}
	return math.Abs(1/tan) * (h1 - h2)
}

// FullShadowLengthDegrees is FullShadowLength with the sun angle in degrees.
func FullShadowLengthDegrees(h1, h2, thetaDeg float64) float64 {
	return FullShadowLength(h1, h2, DegreesToRadians(thetaDeg))
}

// FullyShadedArea returns the ground area in full shade behind an obstruction
// of height h1 running runLength along its length, for a person of height h2
// and a sun angle in radians. Units are length*length of whatever unit the
// inputs share. Inherits the +Inf and sign behavior of FullShadowLength.
func FullyShadedArea(runLength, h1, h2, thetaRad float64) float64 {
	return runLength * FullShadowLength(h1, h2, thetaRad)
}

// FullyShadedAreaDegrees is FullyShadedArea with the sun angle in degrees.
func FullyShadedAreaDegrees(runLength, h1, h2, thetaDeg float64) float64 {
	return FullyShadedArea(runLength, h1, h2, DegreesToRadians(thetaDeg))
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// ApproxEqual reports whether a and b differ by less than 1e-10.
//
// The tolerance is absolute, applied to the tangent value rather than the
// angle: near-horizon angles close to a multiple of pi report an infinite
// shadow deterministically instead of an enormous finite one, and the
// division in FullShadowLength never sees an exact or signed zero.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < approxEqualTolerance
}
