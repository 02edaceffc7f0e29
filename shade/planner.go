// Package shade turns the raw shadow-length math into ground-level shade
// queries against a set of buildings: where does a building's full shadow
// reach, is a walker standing in shade, and how much of a walking segment
// is covered.
package shade

import (
	"math"

	"walkdarkly/shademath/city"
	"walkdarkly/shademath/geom"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Planner answers shade queries for a building set under a given sun position
type Planner struct {
	Buildings           *city.BuildingSet
	PersonHeightMeters  float64 // reference walker height, typically 1.83 (6 ft)
	MaxReachMeters      float64 // cap on shadow reach, bounds the horizon case
	SampleSpacingMeters float64 // sampling step for segment coverage
}

// NewPlanner creates a Planner with default parameters
func NewPlanner(set *city.BuildingSet) *Planner {
	return &Planner{
		Buildings:           set,
		PersonHeightMeters:  1.83, // ~6 ft reference person
		MaxReachMeters:      500.0,
		SampleSpacingMeters: 5.0,
	}
}

// ShadowReach returns the ground distance in meters that full shade from
// building b extends at the given sun elevation (radians). The raw shadow
// length is clamped to [0, MaxReachMeters]: a building shorter than the
// reference person casts no usable shade, and the near-horizon infinite
// shadow is capped so spatial queries stay bounded.
func (p *Planner) ShadowReach(b *city.Building, sunElevRad float64) float64 {
	length := geom.FullShadowLength(b.HeightMeters, p.PersonHeightMeters, sunElevRad)
	if length < 0 {
		return 0
	}
	if math.IsInf(length, 1) || length > p.MaxReachMeters {
		return p.MaxReachMeters
	}
	return length
}

// ShadowFootprint returns the ground region in full shade behind building b,
// as the building footprint plus one quadrilateral per wall swept along the
// shadow direction (opposite the sun azimuth) by the shadow reach. The union
// of the pieces is the swept footprint, so concave buildings work too.
// Returns nil when the building casts no usable shade.
func (p *Planner) ShadowFootprint(b *city.Building, sunElevRad, sunAzimuthDeg float64) orb.MultiPolygon {
	reach := p.ShadowReach(b, sunElevRad)
	if reach == 0 || b.NumWalls() == 0 {
		return nil
	}
	castBearing := math.Mod(sunAzimuthDeg+180, 360)

	region := make(orb.MultiPolygon, 0, b.NumWalls()+1)
	region = append(region, b.Footprint)

	for i := 0; i < b.NumWalls(); i++ {
		a, c := b.Wall(i)
		aLon, aLat := geom.DestinationPoint(a[0], a[1], castBearing, reach)
		cLon, cLat := geom.DestinationPoint(c[0], c[1], castBearing, reach)
		quad := orb.Ring{
			a, c,
			{cLon, cLat},
			{aLon, aLat},
			a,
		}
		region = append(region, orb.Polygon{quad})
	}
	return region
}

// WallShadedArea returns the fully shaded ground area in square meters cast
// by the i-th wall of building b at the given sun elevation. This is the
// wall's run length times the full shadow length; near the horizon it is +Inf.
func (p *Planner) WallShadedArea(b *city.Building, i int, sunElevRad float64) float64 {
	a, c := b.Wall(i)
	run := geom.GreatCircleDistance(a[0], a[1], c[0], c[1])
	return geom.FullyShadedArea(run, b.HeightMeters, p.PersonHeightMeters, sunElevRad)
}

// ShadowArea estimates the fully shaded ground area in square meters behind
// building b: the sum of WallShadedArea over the walls that face away from
// the sun. Inherits the +Inf behavior of the length formula near the horizon.
func (p *Planner) ShadowArea(b *city.Building, sunElevRad, sunAzimuthDeg float64) float64 {
	ring := b.Ring()
	if len(ring) == 0 {
		return 0
	}
	castEast, castNorth := castDirection(sunAzimuthDeg)
	ccw := ring.Orientation() == orb.CCW

	area := 0.0
	for i := 0; i < b.NumWalls(); i++ {
		a, c := b.Wall(i)
		if !wallFacesCast(a, c, castEast, castNorth, ccw) {
			continue
		}
		area += p.WallShadedArea(b, i, sunElevRad)
	}
	return area
}

// InFullShade reports whether the point lies in the full shadow of any
// nearby building, including under the building itself.
func (p *Planner) InFullShade(lon, lat, sunElevRad, sunAzimuthDeg float64) bool {
	point := orb.Point{lon, lat}
	for _, b := range p.Buildings.NearPoint(lon, lat, p.MaxReachMeters) {
		region := p.ShadowFootprint(b, sunElevRad, sunAzimuthDeg)
		if region == nil {
			continue
		}
		if planar.MultiPolygonContains(region, point) {
			return true
		}
	}
	return false
}

// SegmentCoverage returns the fraction in [0, 1] of the walking segment from
// a to b that lies in full shade, by sampling every SampleSpacingMeters
// (endpoints always included).
func (p *Planner) SegmentCoverage(aLon, aLat, bLon, bLat, sunElevRad, sunAzimuthDeg float64) float64 {
	dist := geom.GreatCircleDistance(aLon, aLat, bLon, bLat)
	steps := int(math.Ceil(dist / p.SampleSpacingMeters))
	if steps < 1 {
		steps = 1
	}

	shaded := 0
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		lon := aLon + t*(bLon-aLon)
		lat := aLat + t*(bLat-aLat)
		if p.InFullShade(lon, lat, sunElevRad, sunAzimuthDeg) {
			shaded++
		}
	}
	return float64(shaded) / float64(steps+1)
}

// castDirection converts a sun azimuth into the unit direction shadows are
// cast along, in local east/north components.
func castDirection(sunAzimuthDeg float64) (east, north float64) {
	castRad := geom.DegreesToRadians(sunAzimuthDeg + 180)
	return math.Sin(castRad), math.Cos(castRad)
}

// wallFacesCast reports whether the outward side of wall a->c points along
// the shadow-cast direction. For a counterclockwise ring the interior lies
// left of each wall, so the outward normal is the rightward perpendicular.
// Walls parallel to the cast direction do not count as facing.
func wallFacesCast(a, c orb.Point, castEast, castNorth float64, ccw bool) bool {
	wallEast := c[0] - a[0]
	wallNorth := c[1] - a[1]
	mag := math.Hypot(wallEast, wallNorth)
	if mag == 0 {
		return false
	}

	// Rightward perpendicular of the wall direction, unit length.
	normEast := wallNorth / mag
	normNorth := -wallEast / mag
	if !ccw {
		normEast, normNorth = -normEast, -normNorth
	}

	return normEast*castEast+normNorth*castNorth > 1e-9
}
