package text

import "testing"

func TestShapedRunClusters(t *testing.T) {
	sr := &ShapedRun{
		Glyphs: []Glyph{
			{Cluster: 0, XAdvance: 5},
			{Cluster: 0, XAdvance: 0}, // mark on the first cluster
			{Cluster: 2, XAdvance: 7},
			{Cluster: 4, XAdvance: 3},
		},
	}
	got := sr.Clusters()
	want := []int{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("Clusters() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Clusters() = %v, want %v", got, want)
		}
	}
}

func TestShapedRunClustersRTLOrder(t *testing.T) {
	// RTL glyphs arrive in visual order with descending clusters; Clusters
	// must still return ascending rune offsets.
	sr := &ShapedRun{
		Glyphs: []Glyph{
			{Cluster: 3},
			{Cluster: 1},
			{Cluster: 0},
		},
	}
	got := sr.Clusters()
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 3 {
		t.Errorf("Clusters() = %v, want [0 1 3]", got)
	}
}

func TestClusterAdvance(t *testing.T) {
	sr := &ShapedRun{
		Glyphs: []Glyph{
			{Cluster: 0, XAdvance: 5},
			{Cluster: 0, XAdvance: 1},
			{Cluster: 2, XAdvance: 7},
		},
	}
	if got := sr.ClusterAdvance(0, 2); got != 6 {
		t.Errorf("ClusterAdvance(0,2) = %v, want 6", got)
	}
	if got := sr.ClusterAdvance(2, 3); got != 7 {
		t.Errorf("ClusterAdvance(2,3) = %v, want 7", got)
	}
	if got := sr.ClusterAdvance(3, 9); got != 0 {
		t.Errorf("ClusterAdvance(3,9) = %v, want 0", got)
	}
}

func TestClusterMap(t *testing.T) {
	sr := &ShapedRun{
		Glyphs: []Glyph{
			{Cluster: 0, XAdvance: 5},
			{Cluster: 0, XAdvance: 0},
			{Cluster: 2, XAdvance: 7},
		},
	}
	m := sr.ClusterMap()
	if len(m) != 2 {
		t.Fatalf("ClusterMap() has %d clusters, want 2", len(m))
	}
	if got := m[0]; len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("ClusterMap()[0] = %v, want [0 1]", got)
	}
	if got := m[2]; len(got) != 1 || got[0] != 2 {
		t.Errorf("ClusterMap()[2] = %v, want [2]", got)
	}
}

func TestCoversEntireRun(t *testing.T) {
	full := &ShapedRun{Glyphs: []Glyph{{Cluster: 0}}}
	if !full.CoversEntireRun() {
		t.Error("engine-shaped run should cover the entire run")
	}
	degraded := &ShapedRun{Degraded: DegradeNoFontPath}
	if degraded.CoversEntireRun() {
		t.Error("degraded run must not report full coverage")
	}
}

func TestEmptyShapedRun(t *testing.T) {
	sr := &ShapedRun{}
	if got := sr.Clusters(); got != nil {
		t.Errorf("Clusters() on empty run = %v, want nil", got)
	}
	if got := sr.ClusterMap(); got != nil {
		t.Errorf("ClusterMap() on empty run = %v, want nil", got)
	}
}
