package shade

import (
	"math"
	"testing"

	"walkdarkly/shademath/city"
	"walkdarkly/shademath/geom"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// testBuilding is a ~17 x 22 m, 30 m tall square block in lower Manhattan.
// Ring runs counterclockwise: south, east, north, west walls in that order.
func testBuilding() *city.Building {
	lon, lat, side := -74.001, 40.710, 0.0002
	return &city.Building{
		ID: 1,
		Footprint: orb.Polygon{orb.Ring{
			{lon, lat},
			{lon + side, lat},
			{lon + side, lat + side},
			{lon, lat + side},
			{lon, lat},
		}},
		HeightMeters: 30,
	}
}

func testPlanner() *Planner {
	return NewPlanner(city.NewBuildingSet([]*city.Building{testBuilding()}))
}

func TestNewPlanner_Defaults(t *testing.T) {
	p := testPlanner()
	if p.PersonHeightMeters != 1.83 {
		t.Errorf("PersonHeightMeters = %v, want 1.83", p.PersonHeightMeters)
	}
	if p.MaxReachMeters != 500 {
		t.Errorf("MaxReachMeters = %v, want 500", p.MaxReachMeters)
	}
}

func TestShadowReach_45Degrees(t *testing.T) {
	p := testPlanner()
	b := testBuilding()

	// tan(pi/4) = 1: reach is building height minus person height.
	got := p.ShadowReach(b, math.Pi/4)
	if math.Abs(got-(30-1.83)) > 1e-10 {
		t.Errorf("ShadowReach at 45 deg = %v, want %v", got, 30-1.83)
	}
}

func TestShadowReach_ClampsAtHorizon(t *testing.T) {
	p := testPlanner()
	b := testBuilding()

	if got := p.ShadowReach(b, 0); got != p.MaxReachMeters {
		t.Errorf("ShadowReach at horizon = %v, want clamp %v", got, p.MaxReachMeters)
	}

	// A very low but nonzero sun still clamps once reach exceeds the cap.
	if got := p.ShadowReach(b, geom.DegreesToRadians(0.5)); got != p.MaxReachMeters {
		t.Errorf("ShadowReach at 0.5 deg = %v, want clamp %v", got, p.MaxReachMeters)
	}
}

func TestShadowReach_ShortBuildingIsZero(t *testing.T) {
	p := testPlanner()
	kiosk := &city.Building{ID: 2, Footprint: testBuilding().Footprint, HeightMeters: 1.0}

	// Shorter than the reference person: raw length is negative, reach is 0.
	if got := p.ShadowReach(kiosk, math.Pi/4); got != 0 {
		t.Errorf("ShadowReach for 1 m kiosk = %v, want 0", got)
	}
}

func TestShadowReach_NoonNearZero(t *testing.T) {
	p := testPlanner()
	if got := p.ShadowReach(testBuilding(), math.Pi/2); got > 1e-10 {
		t.Errorf("ShadowReach at noon = %v, want ~0", got)
	}
}

func TestShadowFootprint_NilWithoutShade(t *testing.T) {
	p := testPlanner()
	kiosk := &city.Building{ID: 2, Footprint: testBuilding().Footprint, HeightMeters: 1.0}
	if got := p.ShadowFootprint(kiosk, math.Pi/4, 180); got != nil {
		t.Errorf("ShadowFootprint for shadeless building = %v, want nil", got)
	}
}

func TestShadowFootprint_QuadAreaMatchesFormula(t *testing.T) {
	p := testPlanner()
	b := testBuilding()

	// Sun due south at 45 degrees: shadows cast due north.
	region := p.ShadowFootprint(b, math.Pi/4, 180)
	if len(region) != 5 { // footprint + 4 wall quads
		t.Fatalf("ShadowFootprint returned %d pieces, want 5", len(region))
	}

	// The north wall is wall 2, its quad sits at index 3. Its spherical area
	// should match run length times shadow reach.
	a, c := b.Wall(2)
	run := geom.GreatCircleDistance(a[0], a[1], c[0], c[1])
	want := run * p.ShadowReach(b, math.Pi/4)
	got := math.Abs(geo.Area(region[3]))
	if math.Abs(got-want) > want*0.05 {
		t.Errorf("north quad area = %.2f m^2, want ~%.2f m^2", got, want)
	}
}

func TestWallShadedArea_45Degrees(t *testing.T) {
	p := testPlanner()
	b := testBuilding()

	a, c := b.Wall(0)
	run := geom.GreatCircleDistance(a[0], a[1], c[0], c[1])
	want := run * (30 - 1.83)

	got := p.WallShadedArea(b, 0, math.Pi/4)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("WallShadedArea = %v, want %v", got, want)
	}
}

func TestWallShadedArea_HorizonIsInfinite(t *testing.T) {
	p := testPlanner()
	if got := p.WallShadedArea(testBuilding(), 0, 0); !math.IsInf(got, 1) {
		t.Errorf("WallShadedArea at horizon = %v, want +Inf", got)
	}
}

func TestShadowArea_CountsFacingWallsOnly(t *testing.T) {
	p := testPlanner()
	b := testBuilding()
	elev := math.Pi / 4

	// Sun due south: only the north wall (index 2) faces the cast direction.
	got := p.ShadowArea(b, elev, 180)
	want := p.WallShadedArea(b, 2, elev)
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("ShadowArea sun-south = %v, want north wall only %v", got, want)
	}

	// Sun due east: only the west wall (index 3).
	got = p.ShadowArea(b, elev, 90)
	want = p.WallShadedArea(b, 3, elev)
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("ShadowArea sun-east = %v, want west wall only %v", got, want)
	}
}

func TestInFullShade(t *testing.T) {
	p := testPlanner()
	elev := math.Pi / 4 // reach ~28 m

	// Sun due south: a point ~9 m north of the north wall is shaded.
	if !p.InFullShade(-74.0009, 40.71028, elev, 180) {
		t.Error("point just north of building should be in full shade")
	}

	// Same point with the sun due north: shadow falls south, point is lit.
	if p.InFullShade(-74.0009, 40.71028, elev, 0) {
		t.Error("point north of building should be lit with a northern sun")
	}

	// A point south of the building (sun side) is lit.
	if p.InFullShade(-74.0009, 40.7098, elev, 180) {
		t.Error("point on the sun side should be lit")
	}

	// A point under the building counts as shaded.
	if !p.InFullShade(-74.0009, 40.7101, elev, 180) {
		t.Error("point inside the footprint should be in full shade")
	}

	// Far beyond the reach.
	if p.InFullShade(-74.0009, 40.715, elev, 180) {
		t.Error("point hundreds of meters away should be lit")
	}
}

func TestSegmentCoverage_FullyShaded(t *testing.T) {
	p := testPlanner()
	elev := math.Pi / 4

	// A short east-west segment sitting entirely inside the cast shadow.
	got := p.SegmentCoverage(-74.00095, 40.71025, -74.00085, 40.71025, elev, 180)
	if got != 1 {
		t.Errorf("coverage inside shadow = %v, want 1", got)
	}
}

func TestSegmentCoverage_NoBuildings(t *testing.T) {
	p := NewPlanner(city.NewBuildingSet(nil))
	got := p.SegmentCoverage(-74.001, 40.710, -74.000, 40.711, math.Pi/4, 180)
	if got != 0 {
		t.Errorf("coverage with no buildings = %v, want 0", got)
	}
}

func TestSegmentCoverage_Partial(t *testing.T) {
	p := testPlanner()
	elev := math.Pi / 4 // reach ~28 m past the north wall at 40.7102

	// Northbound segment starting inside the shadow and ending ~200 m out.
	got := p.SegmentCoverage(-74.0009, 40.71021, -74.0009, 40.712, elev, 180)
	if got <= 0.05 || got >= 0.5 {
		t.Errorf("partial coverage = %v, want strictly between 0.05 and 0.5", got)
	}
}
