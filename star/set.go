package star

import (
	"go.starlark.net/starlark"
)

// Set is the unordered unique-membership view. Algebraic operations
// derive new sets; the InPlace and mutator forms change the wrapped
// value.
type Set struct {
	Handle
}

// NewSet constructs a fresh set from native elements. Elements that have
// no conversion (or are unhashable) are dropped with a diagnostic.
func (rt *Runtime) NewSet(elems ...any) Set {
	s := Set{rt.wrap(starlark.NewSet(len(elems)))}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// AsSet views a handle as a set. Any other kind coerces to a fresh empty
// set.
func AsSet(h Handle) Set {
	if h.IsSet() {
		return Set{h.Clone()}
	}
	if h.rt != nil {
		return Set{h.rt.wrap(starlark.NewSet(0))}
	}
	return Set{}
}

func (s Set) set() *starlark.Set {
	v, _ := s.Value().(*starlark.Set)
	return v
}

// Add inserts an element, reporting success.
func (s Set) Add(elem any) bool {
	v := s.set()
	if v == nil {
		return false
	}
	ev, err := s.rt.toValue(elem)
	if err != nil {
		s.report("add: %v", err)
		return false
	}
	if err := v.Insert(ev); err != nil {
		s.report("add: %v", err)
		return false
	}
	return true
}

// Contains reports membership.
func (s Set) Contains(elem any) bool {
	v := s.set()
	if v == nil {
		return false
	}
	ev, err := s.rt.toValue(elem)
	if err != nil {
		return false
	}
	found, err := v.Has(ev)
	return err == nil && found
}

// Discard removes an element if present; absent elements are ignored.
func (s Set) Discard(elem any) {
	v := s.set()
	if v == nil {
		return
	}
	ev, err := s.rt.toValue(elem)
	if err != nil {
		s.report("discard: %v", err)
		return
	}
	if _, err := v.Delete(ev); err != nil {
		s.report("discard: %v", err)
	}
}

// Remove removes an element, reporting whether it was present.
func (s Set) Remove(elem any) bool {
	v := s.set()
	if v == nil {
		return false
	}
	ev, err := s.rt.toValue(elem)
	if err != nil {
		return false
	}
	found, err := v.Delete(ev)
	return err == nil && found
}

// Pop removes and returns an arbitrary element; an empty set yields a
// null handle.
func (s Set) Pop() Handle {
	if s.Len() == 0 {
		return Handle{}
	}
	return s.quietMethod("pop")
}

// Clear removes every element.
func (s Set) Clear() {
	if v := s.set(); v != nil {
		if err := v.Clear(); err != nil {
			s.report("clear: %v", err)
		}
	}
}

// Algebra, delegated to the runtime's set methods. Each returns a new
// set.

func (s Set) Union(other Set) Set        { return s.algebra("union", other) }
func (s Set) Intersection(other Set) Set { return s.algebra("intersection", other) }
func (s Set) Difference(other Set) Set   { return s.algebra("difference", other) }
func (s Set) SymmetricDifference(other Set) Set {
	return s.algebra("symmetric_difference", other)
}

func (s Set) algebra(name string, other Set) Set {
	ov := other.Value()
	if ov == nil {
		ov = starlark.NewSet(0)
	}
	return Set{s.mustMethod(name, ov)}
}

// In-place compound forms. These mutate the wrapped value, matching the
// compound-assignment vocabulary of the runtime.

// InPlaceUnion inserts every element of other.
func (s Set) InPlaceUnion(other Set) {
	v := s.set()
	ov := other.set()
	if v == nil || ov == nil {
		return
	}
	it := ov.Iterate()
	defer it.Done()
	var x starlark.Value
	for it.Next(&x) {
		if err := v.Insert(x); err != nil {
			s.report("union update: %v", err)
			return
		}
	}
}

// InPlaceDifference removes every element of other.
func (s Set) InPlaceDifference(other Set) {
	v := s.set()
	ov := other.set()
	if v == nil || ov == nil {
		return
	}
	it := ov.Iterate()
	defer it.Done()
	var x starlark.Value
	for it.Next(&x) {
		if _, err := v.Delete(x); err != nil {
			s.report("difference update: %v", err)
			return
		}
	}
}

// InPlaceIntersection keeps only elements also in other.
func (s Set) InPlaceIntersection(other Set) {
	s.replaceWith(s.Intersection(other))
}

// InPlaceSymmetricDifference keeps elements in exactly one of the two.
func (s Set) InPlaceSymmetricDifference(other Set) {
	s.replaceWith(s.SymmetricDifference(other))
}

// replaceWith rewrites the wrapped set's membership from result, then
// releases result.
func (s Set) replaceWith(result Set) {
	v := s.set()
	rv := result.set()
	if v == nil || rv == nil {
		return
	}
	if err := v.Clear(); err != nil {
		s.report("update: %v", err)
		return
	}
	it := rv.Iterate()
	var x starlark.Value
	for it.Next(&x) {
		if err := v.Insert(x); err != nil {
			it.Done()
			s.report("update: %v", err)
			return
		}
	}
	it.Done()
	result.Close()
}

// IsSubset reports whether every element is in other.
func (s Set) IsSubset(other Set) bool { return s.subsetMethod("issubset", other) }

// IsSuperset reports whether every element of other is in this set.
func (s Set) IsSuperset(other Set) bool { return s.subsetMethod("issuperset", other) }

// StrictSubset is the set ordering's <: subset and not equal.
func (s Set) StrictSubset(other Set) bool {
	return s.IsSubset(other) && s.Len() < other.Len()
}

// StrictSuperset is the set ordering's >: superset and not equal.
func (s Set) StrictSuperset(other Set) bool {
	return s.IsSuperset(other) && s.Len() > other.Len()
}

func (s Set) subsetMethod(name string, other Set) bool {
	ov := other.Value()
	if ov == nil {
		ov = starlark.NewSet(0)
	}
	res := s.quietMethod(name, ov)
	defer res.Close()
	b, _ := res.AsBool()
	return b
}

// Eq reports equality under the runtime's equality protocol.
func (s Set) Eq(other Set) bool { return s.Equal(other.Handle) }
