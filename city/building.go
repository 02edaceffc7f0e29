// Package city models the obstructions a walker shares the street with:
// buildings with a ground footprint and a roof height, indexed spatially so
// shade queries only touch nearby candidates.
package city

import (
	"walkdarkly/shademath/geom"

	"github.com/paulmach/orb"
)

type BuildingID int64

// Building is an obstruction that casts shade: a ground footprint in
// lon/lat order with a uniform roof height in meters.
type Building struct {
	ID           BuildingID
	Name         string
	Footprint    orb.Polygon
	HeightMeters float64
}

// Ring returns the outer ring of the footprint, or nil for an empty footprint.
func (b *Building) Ring() orb.Ring {
	if len(b.Footprint) == 0 {
		return nil
	}
	return b.Footprint[0]
}

// Wall returns the endpoints of the i-th wall segment of the outer ring.
func (b *Building) Wall(i int) (orb.Point, orb.Point) {
	ring := b.Ring()
	return ring[i], ring[i+1]
}

// NumWalls returns the number of wall segments in the outer ring.
func (b *Building) NumWalls() int {
	ring := b.Ring()
	if len(ring) < 2 {
		return 0
	}
	return len(ring) - 1
}

// MinDistanceToLonLat returns the ground distance in meters from a point to
// the nearest wall of the building, or -1 for an empty footprint.
func (b *Building) MinDistanceToLonLat(lon, lat float64) float64 {
	minDist := -1.0
	for i := 0; i < b.NumWalls(); i++ {
		a, c := b.Wall(i)
		d := geom.PointToSegmentDistance(lon, lat, a[0], a[1], c[0], c[1])
		if minDist < 0 || d < minDist {
			minDist = d
		}
	}
	return minDist
}

// BuildingSet holds a city's obstructions together with a spatial index
// over their footprint bounding boxes.
type BuildingSet struct {
	Buildings map[int64]*Building
	RTree     *geom.RTree
}

// NewBuildingSet indexes the given buildings. Buildings with an empty
// footprint are kept in the map but not indexed.
func NewBuildingSet(buildings []*Building) *BuildingSet {
	byID := make(map[int64]*Building, len(buildings))
	rtree := geom.NewRTree()

	for _, b := range buildings {
		byID[int64(b.ID)] = b
		ring := b.Ring()
		if len(ring) == 0 {
			continue
		}
		bound := ring.Bound()
		rtree.Insert(int64(b.ID), bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1])
	}

	return &BuildingSet{
		Buildings: byID,
		RTree:     rtree,
	}
}

// NearPoint returns the buildings whose footprint bounding boxes come within
// distMeters of a point.
func (s *BuildingSet) NearPoint(lon, lat, distMeters float64) []*Building {
	ids := s.RTree.SearchNearPoint(lon, lat, distMeters)
	result := make([]*Building, 0, len(ids))
	for _, id := range ids {
		if b := s.Buildings[id]; b != nil {
			result = append(result, b)
		}
	}
	return result
}
