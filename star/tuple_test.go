package star_test

import (
	"testing"

	"github.com/caffeineduck/staru/star"
)

func TestTupleAt(t *testing.T) {
	tp := testRT.NewTuple("a", "b", "c")
	if got, _ := tp.At(0).AsText(); got != "a" {
		t.Errorf("at 0 = %q", got)
	}
	if got, _ := tp.At(-1).AsText(); got != "c" {
		t.Errorf("at -1 = %q", got)
	}
	if !tp.At(3).IsNull() || !tp.At(-4).IsNull() {
		t.Error("out-of-range access returned a value")
	}
}

func TestTupleSearch(t *testing.T) {
	tp := testRT.NewTuple(1, 2, 1)
	if got := tp.IndexOf(2); got != 1 {
		t.Errorf("index = %d, want 1", got)
	}
	if got := tp.Count(1); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
	if !tp.Contains(2) || tp.Contains(9) {
		t.Error("contains misreported")
	}
}

func TestTupleDerivations(t *testing.T) {
	a := testRT.NewTuple(1)
	b := testRT.NewTuple(2)

	c := a.Concat(b)
	if got := star.Repr(c.Handle); got != "(1, 2)" {
		t.Errorf("concat: %s", got)
	}
	if a.Len() != 1 {
		t.Error("concat mutated an immutable sequence")
	}

	r := a.Repeat(2)
	if got := star.Repr(r.Handle); got != "(1, 1)" {
		t.Errorf("repeat: %s", got)
	}
}

func TestTupleToList(t *testing.T) {
	tp := testRT.NewTuple(1, 2)
	l := tp.ToList()
	if !l.IsList() || l.Len() != 2 {
		t.Fatalf("to_list produced %s of len %d", l.Type(), l.Len())
	}
	l.Append(3)
	if tp.Len() != 2 {
		t.Error("list mutation reached the source tuple")
	}
}

func TestTupleCompare(t *testing.T) {
	a := testRT.NewTuple(1, 2)
	b := testRT.NewTuple(1, 3)
	if !a.Lt(b) || !b.Gt(a) {
		t.Error("tuple ordering inverted")
	}
	if !a.Eq(testRT.NewTuple(1, 2)) {
		t.Error("equal tuples compare unequal")
	}
}

func TestTupleCoercion(t *testing.T) {
	tp := star.AsTuple(testRT.NewList(1, 2).Handle)
	if tp.Len() != 0 {
		t.Errorf("coerced tuple len = %d, want 0", tp.Len())
	}
}
