package darray

import (
	"strings"
	"testing"
)

func TestSortNaturalOrder(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	d := Of(5, 3, 4, 1, 2)
	Sort(d)
	expectContent(t, d, []int{1, 2, 3, 4, 5})
	// Indexed access must match the new order exactly.
	for i := range d.Len() {
		if v, _ := d.At(i); v != i+1 {
			t.Fatalf("At(%d) = %d after sort", i, v)
		}
	}
}

func TestSortStability(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	type rec struct {
		key int
		tag string
	}
	d := Of(rec{5, "a"}, rec{3, "first"}, rec{3, "second"}, rec{1, "b"})
	d.SortFunc(func(a, b rec) bool { return a.key < b.key })
	if err := d.Check(); err != nil {
		t.Fatalf("invariant violation: %v", err)
	}
	want := []rec{{1, "b"}, {3, "first"}, {3, "second"}, {5, "a"}}
	for i, w := range want {
		got, err := d.At(i)
		if err != nil {
			t.Fatalf("At(%d) failed: %v", i, err)
		}
		if got != w {
			t.Fatalf("At(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestSortFuncCustomOrder(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	d := Of("elem 1", "elem 3", "elem 2")
	// Descending order via a custom comparator.
	d.SortFunc(func(a, b string) bool { return a > b })
	if err := d.Check(); err != nil {
		t.Fatalf("invariant violation: %v", err)
	}
	got := strings.Join(d.ToSlice(), ",")
	if got != "elem 3,elem 2,elem 1" {
		t.Fatalf("unexpected order: %s", got)
	}
}

func TestSortEmptyAndSingle(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	d := New[int]()
	Sort(d)
	expectContent(t, d, nil)
	d.Add(1)
	Sort(d)
	expectContent(t, d, []int{1})
}

func TestSortThenMutate(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	d := Of(4, 1, 3, 2)
	Sort(d)
	// The rebuilt index must support further edits seamlessly.
	if err := d.AddAt(2, 9); err != nil {
		t.Fatalf("AddAt after sort failed: %v", err)
	}
	expectContent(t, d, []int{1, 2, 9, 3, 4})
	if err := d.RemoveAt(0); err != nil {
		t.Fatalf("RemoveAt after sort failed: %v", err)
	}
	expectContent(t, d, []int{2, 9, 3, 4})
}
