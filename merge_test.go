package agglo

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge_RemovesPairAndAppendsUnion(t *testing.T) {
	points := []Point{{0}, {1}, {2}, {3}}
	clusters, _ := Initialize(points)

	next, err := Merge(clusters, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next) != len(clusters)-1 {
		t.Fatalf("merge left %d clusters, want %d", len(next), len(clusters)-1)
	}
	// Survivors keep their relative order; the union goes last with the
	// higher-positioned cluster's points first.
	want := [][]int{{0}, {2}, {3, 1}}
	if diff := cmp.Diff(want, membership(next)); diff != "" {
		t.Errorf("membership mismatch (-want +got):\n%s", diff)
	}
	checkPartition(t, next, points)
}

func TestMerge_ArgumentOrderIrrelevant(t *testing.T) {
	clusters, _ := Initialize([]Point{{0}, {1}, {2}})
	a, err := Merge(clusters, 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Merge(clusters, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(membership(a), membership(b)); diff != "" {
		t.Errorf("Merge(0,2) and Merge(2,0) differ:\n%s", diff)
	}
}

func TestMerge_LeavesInputUntouched(t *testing.T) {
	clusters, _ := Initialize([]Point{{0}, {1}, {2}})
	before := membership(clusters)
	if _, err := Merge(clusters, 0, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(before, membership(clusters)); diff != "" {
		t.Errorf("Merge modified its argument:\n%s", diff)
	}
}

func TestMerge_AssignsLinkageIDs(t *testing.T) {
	clusters, _ := Initialize([]Point{{0}, {1}, {2}, {3}})
	var ids []int
	for len(clusters) > 1 {
		var err error
		clusters, err = Merge(clusters, 0, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids = append(ids, clusters[len(clusters)-1].ID())
	}
	if diff := cmp.Diff([]int{4, 5, 6}, ids); diff != "" {
		t.Errorf("merged IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_InvalidIndices(t *testing.T) {
	clusters, _ := Initialize([]Point{{0}, {1}, {2}})
	tests := []struct {
		name string
		i, j int
	}{
		{"same index", 1, 1},
		{"negative i", -1, 2},
		{"negative j", 0, -1},
		{"i past end", 3, 0},
		{"j past end", 0, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Merge(clusters, tc.i, tc.j)
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("expected ErrIndexOutOfRange, got %v", err)
			}
			if next != nil {
				t.Errorf("expected no collection on error, got %d clusters", len(next))
			}
		})
	}
}

func TestMerge_NilCluster(t *testing.T) {
	clusters, _ := Initialize([]Point{{0}, {1}, {2}})
	tests := []struct {
		name     string
		clusters Clusters
		i, j     int
	}{
		{"merged nil", Clusters{clusters[0], nil}, 0, 1},
		{"nil first", Clusters{nil, clusters[1]}, 1, 0},
		{"nil bystander", Clusters{clusters[0], clusters[1], nil}, 0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Merge(tc.clusters, tc.i, tc.j)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if next != nil {
				t.Errorf("expected no collection on error, got %d clusters", len(next))
			}
		})
	}
}
