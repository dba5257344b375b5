package geo

import "testing"

func TestResolve_KnownName(t *testing.T) {
	p := CraftCoords.Resolve("Rajasthan")
	if p.Lat != 26.9124 || p.Lon != 75.7873 {
		t.Fatalf("got %+v", p)
	}
}

func TestResolve_UnknownNameFallsBackToCentroid(t *testing.T) {
	p := CraftCoords.Resolve("Atlantis")
	if p != IndiaCentroid {
		t.Fatalf("got %+v want centroid %+v", p, IndiaCentroid)
	}
}

func TestEventCoords_MergedLabel(t *testing.T) {
	p := EventCoords.Resolve("Uttar Pradesh/Uttarakhand")
	if p == IndiaCentroid {
		t.Fatalf("merged label should resolve, got centroid fallback")
	}
}

func TestCraftAndEventTablesDisagreeOnUttarPradesh(t *testing.T) {
	// The two tables intentionally use different representative points.
	c := CraftCoords.Resolve("Uttar Pradesh")
	e := EventCoords.Resolve("Uttar Pradesh")
	if c == e {
		t.Fatalf("expected distinct points, both %+v", c)
	}
}
