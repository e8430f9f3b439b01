package purerand_test

import (
	"slices"
	"testing"

	"github.com/louisbranch/purerand"
)

// TestPickMembership ensures Pick returns an element of the slice.
func TestPickMembership(t *testing.T) {
	options := []string{"sword", "shield", "potion", "scroll"}
	root := purerand.New("loot")
	for i := 0; i < 100; i++ {
		v, ok := purerand.Pick(root.Derive(i), options)
		if !ok {
			t.Fatal("Pick reported empty slice")
		}
		if !slices.Contains(options, v) {
			t.Fatalf("Pick returned %q", v)
		}
	}

	if v, ok := purerand.Pick(root.Derive("empty"), []string(nil)); ok {
		t.Fatalf("Pick on empty slice returned %q", v)
	}
}

// TestPickConsumes ensures Pick consumes even on the empty slice.
func TestPickConsumes(t *testing.T) {
	g := purerand.New("consume").Derive("pick")
	purerand.Pick(g, []int{})
	mustPanic(t, "reuse after empty Pick", func() { g.Uint64() })
}

// TestPickNDistinct ensures PickN returns distinct elements and clamps.
func TestPickNDistinct(t *testing.T) {
	options := []int{10, 20, 30, 40, 50}
	root := purerand.New("multi")

	picked := purerand.PickN(root.Derive("three"), options, 3)
	if len(picked) != 3 {
		t.Fatalf("PickN returned %d elements", len(picked))
	}
	seen := map[int]bool{}
	for _, v := range picked {
		if !slices.Contains(options, v) || seen[v] {
			t.Fatalf("PickN returned invalid selection %v", picked)
		}
		seen[v] = true
	}

	all := purerand.PickN(root.Derive("all"), options, 99)
	if len(all) != len(options) {
		t.Fatalf("PickN over-ask returned %d elements", len(all))
	}

	replay := purerand.PickN(purerand.New("multi").Derive("three"), options, 3)
	if !slices.Equal(picked, replay) {
		t.Fatalf("PickN did not reproduce: %v vs %v", picked, replay)
	}
}

// TestPickWeighted ensures weighting is respected at the edges.
func TestPickWeighted(t *testing.T) {
	type option struct {
		name   string
		weight float64
	}
	options := []option{
		{"never", 0},
		{"always", 5},
	}
	root := purerand.New("weighted")
	for i := 0; i < 100; i++ {
		v, ok := purerand.PickWeighted(root.Derive(i), options, func(o option) float64 { return o.weight })
		if !ok || v.name != "always" {
			t.Fatalf("PickWeighted chose %+v ok=%v", v, ok)
		}
	}

	if _, ok := purerand.PickWeighted(root.Derive("zeros"), options[:1], func(o option) float64 { return o.weight }); ok {
		t.Fatal("PickWeighted chose from all-zero weights")
	}

	mustPanic(t, "negative weight", func() {
		purerand.PickWeighted(root.Derive("neg"), options, func(o option) float64 { return -1 })
	})
}

// TestShuffleSlice ensures the generic shuffle reorders without loss.
func TestShuffleSlice(t *testing.T) {
	vals := []string{"a", "b", "c", "d", "e"}
	purerand.ShuffleSlice(purerand.New("deck").Derive("cut"), vals)
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	if !slices.Equal(sorted, []string{"a", "b", "c", "d", "e"}) {
		t.Fatalf("shuffle lost elements: %v", vals)
	}

	replay := []string{"a", "b", "c", "d", "e"}
	purerand.ShuffleSlice(purerand.New("deck").Derive("cut"), replay)
	if !slices.Equal(vals, replay) {
		t.Fatalf("shuffle did not reproduce: %v vs %v", vals, replay)
	}
}

// TestPickSeq ensures reservoir sampling picks a member and handles empties.
func TestPickSeq(t *testing.T) {
	root := purerand.New("seq")
	v, ok := purerand.PickSeq(root.Derive("squares"), func(yield func(int) bool) {
		for i := 1; i <= 10; i++ {
			if !yield(i * i) {
				return
			}
		}
	})
	if !ok {
		t.Fatal("PickSeq reported empty sequence")
	}
	found := false
	for i := 1; i <= 10; i++ {
		if v == i*i {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("PickSeq returned %d", v)
	}

	if _, ok := purerand.PickSeq(root.Derive("empty"), func(func(int) bool) {}); ok {
		t.Fatal("PickSeq on empty sequence reported ok")
	}
}
