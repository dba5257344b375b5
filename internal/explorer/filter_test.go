package explorer

import "testing"

func sample() []Record {
	return []Record{
		{Name: "Periyar National Park", State: "Kerala", Category: CategoryHeritageSites, Lat: 9.5824, Lon: 77.1780},
		{Name: "Bharatanatyam", State: "Tamil Nadu", Category: CategoryArtForms, Lat: 11.1271, Lon: 78.6569},
		{Name: "Rann Utsav", State: "Gujarat", Category: CategoryEvents, Lat: 23.0225, Lon: 72.5714, Month: "Dec-Feb"},
		{Name: "Kumbh Mela", State: "Uttar Pradesh", Category: CategoryEvents, Lat: 25.3176, Lon: 82.9739, Month: "Rotational"},
	}
}

func names(rs []Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func TestFilter_AllWildcardsIsIdentity(t *testing.T) {
	in := sample()
	got := Filter(in, Predicate{State: Wildcard, Category: Wildcard, Month: Wildcard})
	if len(got) != len(in) {
		t.Fatalf("got %d records want %d", len(got), len(in))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("record %d reordered or changed: %+v vs %+v", i, got[i], in[i])
		}
	}
}

func TestFilter_EmptyComponentsAreWildcards(t *testing.T) {
	got := Filter(sample(), Predicate{})
	if len(got) != len(sample()) {
		t.Fatalf("got %d records want all", len(got))
	}
}

func TestFilter_StateExactCaseSensitive(t *testing.T) {
	got := Filter(sample(), Predicate{State: "Kerala"})
	if len(got) != 1 || got[0].Name != "Periyar National Park" {
		t.Fatalf("got %v want only the Kerala record", names(got))
	}

	if got := Filter(sample(), Predicate{State: "kerala"}); len(got) != 0 {
		t.Fatalf("state match must be case-sensitive, got %v", names(got))
	}
}

func TestFilter_Category(t *testing.T) {
	got := Filter(sample(), Predicate{Category: "Events"})
	if len(got) != 2 {
		t.Fatalf("got %v want the two events", names(got))
	}
}

func TestFilter_MonthSubstring(t *testing.T) {
	// "Dec" is contained in "Dec-Feb" but not in "Rotational".
	got := Filter(sample(), Predicate{Month: "Dec"})
	if len(got) != 1 || got[0].Name != "Rann Utsav" {
		t.Fatalf("got %v want only Rann Utsav", names(got))
	}

	// The full month name is not a substring of the abbreviated range.
	if got := Filter(sample(), Predicate{Month: "December"}); len(got) != 0 {
		t.Fatalf("got %v want none", names(got))
	}
}

func TestFilter_MonthIsCaseInsensitive(t *testing.T) {
	got := Filter(sample(), Predicate{Month: "dec"})
	if len(got) != 1 || got[0].Name != "Rann Utsav" {
		t.Fatalf("got %v want only Rann Utsav", names(got))
	}
}

func TestFilter_MonthExcludesRecordsWithoutMonth(t *testing.T) {
	got := Filter(sample(), Predicate{Month: "Dec"})
	for _, r := range got {
		if r.Month == "" {
			t.Fatalf("record %q has no month but matched a month filter", r.Name)
		}
	}
}

func TestFilter_ConjunctionAcrossComponents(t *testing.T) {
	got := Filter(sample(), Predicate{State: "Gujarat", Category: "Events", Month: "Feb"})
	if len(got) != 1 || got[0].Name != "Rann Utsav" {
		t.Fatalf("got %v", names(got))
	}

	if got := Filter(sample(), Predicate{State: "Kerala", Category: "Events"}); len(got) != 0 {
		t.Fatalf("conjunction must require all components, got %v", names(got))
	}
}
