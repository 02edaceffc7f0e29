// Package sun computes the sun's position in the sky for a time and place.
//
// The elevation it reports is the angle of incidence of the sun with the
// ground plane, the angle the shadow formulas in package geom take as input.
// The ephemeris is the simplified series from the Astronomical Almanac,
// accurate to roughly a tenth of a degree, which is far finer than shade
// planning needs.
package sun

import (
	"math"
	"time"

	"walkdarkly/shademath/geom"
)

// Position returns the sun's elevation above the horizon and azimuth
// (degrees, 0 = North, clockwise) as seen from latDeg/lonDeg at time t.
// Longitude is degrees east, latitude degrees north. Elevation is negative
// when the sun is below the horizon.
func Position(t time.Time, latDeg, lonDeg float64) (elevationDeg, azimuthDeg float64) {
	jd := julianDate(t)

	// Julian centuries from J2000.0
	T := (jd - 2451545.0) / 36525.0

	// Mean longitude and mean anomaly of the Sun (degrees)
	L0 := normalizeAngle360(280.46646 + 36000.76983*T + 0.0003032*T*T)
	M := normalizeAngle360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := geom.DegreesToRadians(M)

	// Equation of center (degrees)
	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(Mrad) +
		(0.019993-0.000101*T)*math.Sin(2*Mrad) +
		0.000289*math.Sin(3*Mrad)

	// Apparent longitude, corrected for aberration and nutation (degrees)
	omega := 125.04 - 1934.136*T
	sunLonApp := L0 + C - 0.00569 - 0.00478*math.Sin(geom.DegreesToRadians(omega))

	// Obliquity of the ecliptic, corrected (degrees)
	eps0 := 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
	eps := eps0 + 0.00256*math.Cos(geom.DegreesToRadians(omega))
	epsRad := geom.DegreesToRadians(eps)

	// Declination
	sunLonRad := geom.DegreesToRadians(sunLonApp)
	dec := math.Asin(math.Sin(epsRad) * math.Sin(sunLonRad))

	// Equation of time (minutes)
	e := 0.016708634 - 0.000042037*T - 0.0000001267*T*T
	y := math.Tan(epsRad / 2)
	y *= y
	L0rad := geom.DegreesToRadians(L0)
	eot := 4 * geom.RadiansToDegrees(
		y*math.Sin(2*L0rad)-
			2*e*math.Sin(Mrad)+
			4*e*y*math.Sin(Mrad)*math.Cos(2*L0rad)-
			0.5*y*y*math.Sin(4*L0rad)-
			1.25*e*e*math.Sin(2*Mrad))

	// True solar time (minutes of day) and hour angle
	utc := t.UTC()
	minutesOfDay := float64(utc.Hour())*60 + float64(utc.Minute()) +
		float64(utc.Second())/60 + float64(utc.Nanosecond())/6e10
	trueSolarTime := math.Mod(minutesOfDay+eot+4*lonDeg+1440, 1440)
	hourAngle := geom.DegreesToRadians(trueSolarTime/4 - 180)

	latRad := geom.DegreesToRadians(latDeg)

	// Horizontal coordinates
	sinElev := math.Sin(latRad)*math.Sin(dec) +
		math.Cos(latRad)*math.Cos(dec)*math.Cos(hourAngle)
	if sinElev > 1 {
		sinElev = 1
	} else if sinElev < -1 {
		sinElev = -1
	}
	elev := math.Asin(sinElev)

	// Azimuth measured from South, westward positive, then shifted to
	// compass convention (0 = North, clockwise).
	az := math.Atan2(math.Sin(hourAngle),
		math.Cos(hourAngle)*math.Sin(latRad)-math.Tan(dec)*math.Cos(latRad))

	elevationDeg = geom.RadiansToDegrees(elev)
	azimuthDeg = normalizeAngle360(geom.RadiansToDegrees(az) + 180)
	return elevationDeg, azimuthDeg
}

// ElevationRad returns the sun's elevation in radians, ready to be passed as
// the angle of incidence to geom.FullShadowLength.
func ElevationRad(t time.Time, latDeg, lonDeg float64) float64 {
	elevDeg, _ := Position(t, latDeg, lonDeg)
	return geom.DegreesToRadians(elevDeg)
}

// julianDate converts a time.Time to a Julian Date.
func julianDate(t time.Time) float64 {
	return float64(t.UnixMilli())/86400000.0 + 2440587.5
}

// normalizeAngle360 normalizes an angle to 0-360 degrees.
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
