package agglo

import "testing"

func TestNewUnionFind(t *testing.T) {
	uf := NewUnionFind(5)

	for i := 0; i < 5; i++ {
		if root := uf.Find(i); root != i {
			t.Errorf("Find(%d) = %d, want %d", i, root, i)
		}
		if uf.Size(i) != 1 {
			t.Errorf("Size(%d) = %d, want 1", i, uf.Size(i))
		}
	}
	if uf.Next() != 5 {
		t.Errorf("Next() = %d, want 5", uf.Next())
	}
}

func TestUnionFind_LinkAssignsSequentialIDs(t *testing.T) {
	uf := NewUnionFind(4)

	if id := uf.Link(1, 3); id != 4 {
		t.Fatalf("first Link = %d, want 4", id)
	}
	if id := uf.Link(0, 2); id != 5 {
		t.Fatalf("second Link = %d, want 5", id)
	}
	if id := uf.Link(4, 5); id != 6 {
		t.Fatalf("third Link = %d, want 6", id)
	}

	for i := 0; i < 4; i++ {
		if root := uf.Find(i); root != 6 {
			t.Errorf("Find(%d) = %d, want 6", i, root)
		}
	}
	if uf.Size(0) != 4 {
		t.Errorf("Size = %d, want 4", uf.Size(0))
	}
}

func TestUnionFind_LinkSameSet(t *testing.T) {
	uf := NewUnionFind(3)
	uf.Link(0, 1)
	if id := uf.Link(1, 0); id != -1 {
		t.Errorf("Link within one set = %d, want -1", id)
	}
	if uf.Next() != 4 {
		t.Errorf("failed Link consumed an ID: Next() = %d", uf.Next())
	}
}

func TestUnionFind_LinkExhausted(t *testing.T) {
	uf := NewUnionFind(2)
	if id := uf.Link(0, 1); id != 2 {
		t.Fatalf("Link = %d, want 2", id)
	}
	// Every leaf is already joined; no slot is left either.
	if id := uf.Link(2, 0); id != -1 {
		t.Errorf("Link = %d, want -1", id)
	}
}

func TestUnionFind_PathCompression(t *testing.T) {
	uf := NewUnionFind(4)
	uf.Link(0, 1) // 4
	uf.Link(4, 2) // 5
	uf.Link(5, 3) // 6

	uf.Find(0)
	// After Find, 0 points straight at the root.
	if uf.parent[0] != 6 {
		t.Errorf("parent[0] = %d after Find, want 6", uf.parent[0])
	}
}

func TestUnionFind_SingleLeaf(t *testing.T) {
	uf := NewUnionFind(1)
	if uf.Find(0) != 0 || uf.Size(0) != 1 {
		t.Errorf("single leaf: Find=%d Size=%d", uf.Find(0), uf.Size(0))
	}
}
