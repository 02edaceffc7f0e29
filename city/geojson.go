package city

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// BuildingsFromFeatureCollection converts an already-decoded GeoJSON feature
// collection into buildings. Polygon features become one building each;
// MultiPolygon features become one building per polygon, sharing the same
// height and name. Features with other geometry types or without a positive
// "height" property (meters) are skipped. IDs are assigned sequentially in
// feature order, starting at 1.
func BuildingsFromFeatureCollection(fc *geojson.FeatureCollection) []*Building {
	var buildings []*Building
	var nextID BuildingID = 1

	add := func(p orb.Polygon, height float64, name string) {
		buildings = append(buildings, &Building{
			ID:           nextID,
			Name:         name,
			Footprint:    p,
			HeightMeters: height,
		})
		nextID++
	}

	for _, f := range fc.Features {
		height := f.Properties.MustFloat64("height", 0)
		if height <= 0 {
			continue
		}
		name := f.Properties.MustString("name", "")

		switch g := f.Geometry.(type) {
		case orb.Polygon:
			add(g, height, name)
		case orb.MultiPolygon:
			for _, p := range g {
				add(p, height, name)
			}
		}
	}

	return buildings
}
