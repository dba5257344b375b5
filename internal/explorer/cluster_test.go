package explorer

import "testing"

func TestClusterize_GroupsCoincidentRecords(t *testing.T) {
	records := []Record{
		{Name: "Phad", State: "Rajasthan", Category: CategoryArtForms, Lat: 27.0238, Lon: 74.2179},
		{Name: "Miniature", State: "Rajasthan", Category: CategoryArtForms, Lat: 27.0238, Lon: 74.2179},
		{Name: "Kathakali", State: "Kerala", Category: CategoryArtForms, Lat: 10.8505, Lon: 76.2711},
	}

	got, err := Clusterize(records, 4)
	if err != nil {
		t.Fatalf("clusterize: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("clusters=%d want 2", len(got))
	}
	// sorted by descending count: the Rajasthan pair first
	if got[0].Count != 2 || got[1].Count != 1 {
		t.Fatalf("counts=%d,%d want 2,1", got[0].Count, got[1].Count)
	}
	if len(got[0].Names) != 2 {
		t.Fatalf("names=%v want both Rajasthan art forms", got[0].Names)
	}
}

func TestClusterize_Deterministic(t *testing.T) {
	records := fullUnified()

	a, err := Clusterize(records, 4)
	if err != nil {
		t.Fatalf("clusterize: %v", err)
	}
	b, err := Clusterize(records, 4)
	if err != nil {
		t.Fatalf("clusterize: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Cell != b[i].Cell || a[i].Count != b[i].Count {
			t.Fatalf("cluster %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestClusterize_TotalPreserved(t *testing.T) {
	records := fullUnified()

	clusters, err := Clusterize(records, 5)
	if err != nil {
		t.Fatalf("clusterize: %v", err)
	}
	total := 0
	for _, c := range clusters {
		total += c.Count
	}
	if total != len(records) {
		t.Fatalf("clustered total=%d want %d", total, len(records))
	}
}

func TestClusterize_RejectsBadResolution(t *testing.T) {
	if _, err := Clusterize(nil, -1); err == nil {
		t.Fatalf("expected error for resolution -1")
	}
	if _, err := Clusterize(nil, 16); err == nil {
		t.Fatalf("expected error for resolution 16")
	}
}
