package star_test

import (
	"testing"

	"github.com/caffeineduck/staru/star"
)

func TestSetMembership(t *testing.T) {
	s := testRT.NewSet(1, 2)

	if !s.Contains(1) || s.Contains(3) {
		t.Error("contains misreported")
	}

	s.Add(3)
	if !s.Contains(3) || s.Len() != 3 {
		t.Error("add did not insert")
	}
	s.Add(3) // duplicates collapse
	if s.Len() != 3 {
		t.Errorf("duplicate add changed len to %d", s.Len())
	}

	s.Discard(3)
	if s.Contains(3) {
		t.Error("discard left the element")
	}
	s.Discard(99) // absent: ignored

	if !s.Remove(2) || s.Remove(2) {
		t.Error("remove misreported presence")
	}
}

func TestSetPopClear(t *testing.T) {
	s := testRT.NewSet("only")
	popped := s.Pop()
	if text, _ := popped.AsText(); text != "only" {
		t.Errorf("pop = %q", text)
	}
	if !s.Pop().IsNull() {
		t.Error("pop on empty set returned a value")
	}

	s2 := testRT.NewSet(1, 2, 3)
	s2.Clear()
	if s2.Len() != 0 {
		t.Errorf("after clear len = %d", s2.Len())
	}
}

func TestSetAlgebra(t *testing.T) {
	a := testRT.NewSet(1, 2, 3)
	b := testRT.NewSet(3, 4)

	if got := a.Union(b).Len(); got != 4 {
		t.Errorf("union len = %d, want 4", got)
	}
	inter := a.Intersection(b)
	if inter.Len() != 1 || !inter.Contains(3) {
		t.Errorf("intersection = %s", star.Repr(inter.Handle))
	}
	diff := a.Difference(b)
	if diff.Len() != 2 || diff.Contains(3) {
		t.Errorf("difference = %s", star.Repr(diff.Handle))
	}
	sym := a.SymmetricDifference(b)
	if sym.Len() != 3 || sym.Contains(3) {
		t.Errorf("symmetric difference = %s", star.Repr(sym.Handle))
	}

	// Each algebra result is a fresh set.
	if a.Len() != 3 || b.Len() != 2 {
		t.Error("algebra mutated an operand")
	}
}

func TestSetInPlaceForms(t *testing.T) {
	a := testRT.NewSet(1, 2)
	a.InPlaceUnion(testRT.NewSet(3))
	if a.Len() != 3 {
		t.Errorf("after |=: len = %d, want 3", a.Len())
	}

	a.InPlaceDifference(testRT.NewSet(1))
	if a.Contains(1) || a.Len() != 2 {
		t.Error("-= did not remove")
	}

	a.InPlaceIntersection(testRT.NewSet(2, 9))
	if a.Len() != 1 || !a.Contains(2) {
		t.Errorf("after &=: %s", star.Repr(a.Handle))
	}

	a.InPlaceSymmetricDifference(testRT.NewSet(2, 5))
	if a.Contains(2) || !a.Contains(5) {
		t.Errorf("after ^=: %s", star.Repr(a.Handle))
	}
}

func TestSetOrdering(t *testing.T) {
	small := testRT.NewSet(1)
	big := testRT.NewSet(1, 2)

	if !small.IsSubset(big) || small.IsSuperset(big) {
		t.Error("subset/superset misreported")
	}
	if !big.IsSuperset(small) {
		t.Error("superset misreported")
	}

	if !small.StrictSubset(big) || small.StrictSubset(small) {
		t.Error("strict subset misreported")
	}
	if !big.StrictSuperset(small) || big.StrictSuperset(big) {
		t.Error("strict superset misreported")
	}
}

func TestSetCoercion(t *testing.T) {
	s := star.AsSet(testRT.Int(1))
	if s.Len() != 0 {
		t.Errorf("coerced set len = %d", s.Len())
	}
	if !s.Add(1) {
		t.Error("coerced set not usable")
	}
}
