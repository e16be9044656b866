package star

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tuple is the fixed-sequence view: immutable and indexable. Concat and
// Repeat derive new values; nothing mutates the wrapped one.
type Tuple struct {
	Handle
}

// NewTuple constructs a fresh tuple from native elements. Elements that
// have no conversion are dropped with a diagnostic.
func (rt *Runtime) NewTuple(elems ...any) Tuple {
	vals := make(starlark.Tuple, 0, len(elems))
	for _, e := range elems {
		v, err := rt.toValue(e)
		if err != nil {
			rt.reportf("tuple: %v", err)
			continue
		}
		vals = append(vals, v)
	}
	return Tuple{rt.wrap(vals)}
}

// AsTuple views a handle as a fixed sequence. Any other kind coerces to
// the empty tuple.
func AsTuple(h Handle) Tuple {
	if h.IsTuple() {
		return Tuple{h.Clone()}
	}
	if h.rt != nil {
		return Tuple{h.rt.wrap(starlark.Tuple{})}
	}
	return Tuple{}
}

// At returns the element at index i with negative wraparound; out of
// range yields a null handle.
func (t Tuple) At(i int) Handle { return t.GetItem(i) }

// IndexOf returns the index of the first element equal to elem, or -1.
func (t Tuple) IndexOf(elem any) int { return t.seqIndex(elem) }

// Count returns the number of elements equal to elem.
func (t Tuple) Count(elem any) int { return t.seqCount(elem) }

// Contains reports element membership under runtime equality.
func (t Tuple) Contains(elem any) bool { return t.seqIndex(elem) >= 0 }

// Concat returns a new tuple holding the elements of both.
func (t Tuple) Concat(other Tuple) Tuple { return Tuple{t.binary(syntax.PLUS, other.Handle)} }

// Repeat returns a new tuple holding n copies of the elements.
func (t Tuple) Repeat(n int) Tuple {
	if t.rt == nil {
		return Tuple{}
	}
	return Tuple{t.binary(syntax.STAR, t.rt.Int(int64(n)))}
}

// ToList returns a new mutable list holding the same elements.
func (t Tuple) ToList() List {
	if t.rt == nil {
		return List{}
	}
	v, _ := t.Value().(starlark.Tuple)
	elems := make([]starlark.Value, len(v))
	copy(elems, v)
	return List{t.rt.wrap(starlark.NewList(elems))}
}

// Lexicographic comparisons under the runtime's comparison protocol.

func (t Tuple) Lt(other Tuple) bool { return t.compare(syntax.LT, other.Handle) }
func (t Tuple) Le(other Tuple) bool { return t.compare(syntax.LE, other.Handle) }
func (t Tuple) Gt(other Tuple) bool { return t.compare(syntax.GT, other.Handle) }
func (t Tuple) Ge(other Tuple) bool { return t.compare(syntax.GE, other.Handle) }
func (t Tuple) Eq(other Tuple) bool { return t.Equal(other.Handle) }
