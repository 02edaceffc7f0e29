package geom

import "math"

const EarthRadiusMeters = 6371000.0

// GreatCircleDistance calculates the distance between two points in meters using the Haversine formula
func GreatCircleDistance(lon1, lat1, lon2, lat2 float64) float64 {
	dLat := DegreesToRadians(lat2 - lat1)
	dLon := DegreesToRadians(lon2 - lon1)
	lat1Rad := DegreesToRadians(lat1)
	lat2Rad := DegreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// PointToSegmentDistance returns the shortest distance in meters from point p to the line segment ab
// Uses equirectangular projection (accurate for short distances)
func PointToSegmentDistance(pLon, pLat, aLon, aLat, bLon, bLat float64) float64 {
	// Equirectangular projection locally around point a
	cosLat := math.Cos(DegreesToRadians(aLat))
	ax := DegreesToRadians(aLon) * cosLat * EarthRadiusMeters
	ay := DegreesToRadians(aLat) * EarthRadiusMeters
	bx := DegreesToRadians(bLon) * cosLat * EarthRadiusMeters
	by := DegreesToRadians(bLat) * EarthRadiusMeters
	px := DegreesToRadians(pLon) * cosLat * EarthRadiusMeters
	py := DegreesToRadians(pLat) * EarthRadiusMeters

	// Project point p onto segment ab
	dx := bx - ax
	dy := by - ay
	if dx == 0 && dy == 0 {
		// a and b are the same point
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		return math.Hypot(px-ax, py-ay)
	} else if t > 1 {
		return math.Hypot(px-bx, py-by)
	}
	projx := ax + t*dx
	projy := ay + t*dy
	return math.Hypot(px-projx, py-projy)
}

// DestinationPoint returns the lon/lat reached by travelling distMeters along
// a compass bearing (degrees, 0 = North, clockwise) from a starting point.
// Uses a local equirectangular approximation, accurate over the few hundred
// meters a cast shadow can span.
func DestinationPoint(lon, lat, bearingDeg, distMeters float64) (float64, float64) {
	bearing := DegreesToRadians(bearingDeg)
	dNorth := distMeters * math.Cos(bearing)
	dEast := distMeters * math.Sin(bearing)

	metersPerDegreeLat := EarthRadiusMeters * math.Pi / 180.0
	metersPerDegreeLon := metersPerDegreeLat * math.Cos(DegreesToRadians(lat))

	return lon + dEast/metersPerDegreeLon, lat + dNorth/metersPerDegreeLat
}
