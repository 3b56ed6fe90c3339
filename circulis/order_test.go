package circulis_test

import (
	"sort"
	"testing"

	"github.com/kevin-panoptic-dev/circulis/circulis"
)

func TestSort(t *testing.T) {
	l := circulis.New(3, 1, 2)
	l.Sort(func(a, b int) bool { return a < b })
	assertSlice(t, l.All(), []int{1, 2, 3})
}

func TestSortStable(t *testing.T) {
	type pv struct {
		p, v int
	}
	l := circulis.New(pv{1, 0}, pv{0, 1}, pv{1, 2}, pv{0, 3})
	l.Sort(func(a, b pv) bool { return a.p < b.p })
	assertSlice(t, l.All(), []pv{{0, 1}, {0, 3}, {1, 0}, {1, 2}})
}

func TestSortBy(t *testing.T) {
	l := circulis.New("ccc", "a", "bb")
	l.SortBy(func(s string) float64 { return float64(len(s)) }, false)
	assertSlice(t, l.All(), []string{"a", "bb", "ccc"})
	l.SortBy(func(s string) float64 { return float64(len(s)) }, true)
	assertSlice(t, l.All(), []string{"ccc", "bb", "a"})
}

func TestReverse(t *testing.T) {
	l := circulis.New(1, 2, 3)
	l.Reverse()
	assertSlice(t, l.All(), []int{3, 2, 1})
}

func TestShufflePreservesMultiset(t *testing.T) {
	l := circulis.New(5, 3, 1, 4, 2, 2, 9)
	want := append([]int(nil), l.All()...)
	l.Shuffle()
	got := l.All()
	sort.Ints(got)
	sort.Ints(want)
	assertSlice(t, got, want)
}

func TestShuffleSmall(t *testing.T) {
	l := circulis.New(1)
	l.Shuffle()
	assertSlice(t, l.All(), []int{1})
	empty := circulis.Empty[int]()
	empty.Shuffle() // no-op with a diagnostic
	if empty.Len() != 0 {
		t.Fatal("shuffle grew an empty container")
	}
}
