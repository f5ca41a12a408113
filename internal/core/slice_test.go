package core

import (
	"strings"
	"testing"
)

func TestSliceLiteral(t *testing.T) {
	l := NewLiteral([]byte("hello world"))

	if got := string(Materialize(Slice(l, 0, 5))); got != "hello" {
		t.Errorf("Slice(0,5) = %q", got)
	}
	if got := string(Materialize(Slice(l, 6, 11))); got != "world" {
		t.Errorf("Slice(6,11) = %q", got)
	}
	if Slice(l, 0, 11) != Node(l) {
		t.Error("full-range slice should return the node itself")
	}
	if Slice(l, 4, 4) != Node(EmptyLiteral()) {
		t.Error("empty range should return the empty literal")
	}
	if Slice(l, 6, 100).Len() != 5 {
		t.Error("stop should clamp to the length")
	}
}

func TestSliceConcatBoundaryReuse(t *testing.T) {
	left := NewLiteral([]byte("abc"))
	right := NewLiteral([]byte("defg"))
	c := NewConcat(left, right)

	// A cut on the concat boundary must reuse the whole child.
	if Slice(c, 0, 3) != Node(left) {
		t.Error("prefix slice on the boundary should be the left child itself")
	}
	if Slice(c, 3, 7) != Node(right) {
		t.Error("suffix slice on the boundary should be the right child itself")
	}
}

func TestSliceConcatSplit(t *testing.T) {
	// "abc" + "def" + "ghi", sliced across both cuts.
	c := NewConcat(NewConcat(NewLiteral([]byte("abc")), NewLiteral([]byte("def"))), NewLiteral([]byte("ghi")))
	if got := string(Materialize(Slice(c, 2, 7))); got != "cdefg" {
		t.Errorf("Slice(2,7) = %q, want %q", got, "cdefg")
	}
	if got := string(Materialize(Slice(c, 1, 9))); got != "bcdefghi" {
		t.Errorf("Slice(1,9) = %q", got)
	}
	if got := string(Materialize(Slice(c, 0, 4))); got != "abcd" {
		t.Errorf("Slice(0,4) = %q", got)
	}
}

func TestSliceRightReusesSpine(t *testing.T) {
	tail := NewLiteral([]byte("0123456789"))
	c := NewConcat(NewLiteral([]byte("ab")), tail)
	s := Slice(c, 2, 12)
	if s != Node(tail) {
		t.Error("suffix landing on the spine boundary should reuse the sub-tree")
	}
}

func TestSliceRepeatUnaligned(t *testing.T) {
	// "abcd" * 5, [3:14) -> "dabcdabcdab": head, whole repetitions, tail.
	rep := NewRepeat(NewLiteral([]byte("abcd")), 5)
	s := Slice(rep, 3, 14)

	if got := string(Materialize(s)); got != "dabcdabcdab" {
		t.Fatalf("Slice(3,14) = %q, want %q", got, "dabcdabcdab")
	}
	if !containsRepeat(s) {
		t.Error("slicing a repeat should keep a compact Repeat node")
	}
}

func TestSliceRepeatAligned(t *testing.T) {
	rep := NewRepeat(NewLiteral([]byte("abcd")), 5)

	s := Slice(rep, 4, 12)
	r, ok := s.(*Repeat)
	if !ok {
		t.Fatalf("aligned slice should be a bare Repeat, got %T", s)
	}
	if r.Count != 2 {
		t.Errorf("count = %d, want 2", r.Count)
	}
	if got := string(Materialize(s)); got != "abcdabcd" {
		t.Errorf("content = %q", got)
	}

	// Exactly one repetition collapses to the child.
	if got := string(Materialize(Slice(rep, 8, 12))); got != "abcd" {
		t.Errorf("single repetition = %q", got)
	}
}

func TestSliceRepeatWithinBlock(t *testing.T) {
	rep := NewRepeat(NewLiteral([]byte("abcd")), 5)

	// Entirely inside one repetition of the child.
	if got := string(Materialize(Slice(rep, 5, 7))); got != "bc" {
		t.Errorf("Slice(5,7) = %q, want %q", got, "bc")
	}
	// Spanning two repetitions with no whole block between.
	if got := string(Materialize(Slice(rep, 3, 6))); got != "dab" {
		t.Errorf("Slice(3,6) = %q, want %q", got, "dab")
	}
}

func TestSliceRepeatCompactness(t *testing.T) {
	// The slice of a huge repeat must not materialize it: node count in the
	// result stays small no matter the count.
	rep := NewRepeat(NewLiteral([]byte("abcd")), 1<<20)
	s := Slice(rep, 3, rep.Len()-3)
	if nodes := countNodes(s); nodes > 8 {
		t.Errorf("slice of a repeat produced %d nodes", nodes)
	}
	if s.Len() != rep.Len()-6 {
		t.Errorf("length = %d", s.Len())
	}
}

func TestSliceLargeRepeatContent(t *testing.T) {
	rep := NewRepeat(NewLiteral([]byte("xyz")), 7)
	flat := strings.Repeat("xyz", 7)
	for start := 0; start <= len(flat); start += 4 {
		for stop := start; stop <= len(flat); stop += 3 {
			got := string(Materialize(Slice(rep, start, stop)))
			if got != flat[start:stop] {
				t.Fatalf("Slice(%d,%d) = %q, want %q", start, stop, got, flat[start:stop])
			}
		}
	}
}

func countNodes(n Node) int {
	switch v := n.(type) {
	case *Concat:
		return 1 + countNodes(v.Left) + countNodes(v.Right)
	case *Repeat:
		return 1 + countNodes(v.Child)
	}
	return 1
}
