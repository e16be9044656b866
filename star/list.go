package star

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// List is the ordered-sequence view: mutable, indexable, insertion
// ordered. Mutators change the wrapped value in place; Concat and Repeat
// derive new values.
type List struct {
	Handle
}

// NewList constructs a fresh list from native elements. Elements that
// have no conversion are dropped with a diagnostic.
func (rt *Runtime) NewList(elems ...any) List {
	vals := make([]starlark.Value, 0, len(elems))
	for _, e := range elems {
		v, err := rt.toValue(e)
		if err != nil {
			rt.reportf("list: %v", err)
			continue
		}
		vals = append(vals, v)
	}
	return List{rt.wrap(starlark.NewList(vals))}
}

// AsList views a handle as an ordered sequence. Any other kind coerces
// to a fresh empty list.
func AsList(h Handle) List {
	if h.IsList() {
		return List{h.Clone()}
	}
	if h.rt != nil {
		return List{h.rt.wrap(starlark.NewList(nil))}
	}
	return List{}
}

func (l List) list() *starlark.List {
	v, _ := l.Value().(*starlark.List)
	return v
}

// Append adds one element at the end.
func (l List) Append(elem any) {
	l.mutate("append", elem)
}

// Extend appends every element of the given iterable value.
func (l List) Extend(elems any) {
	l.mutate("extend", elems)
}

// Insert places an element before index i (with the runtime's index
// clamping).
func (l List) Insert(i int, elem any) {
	if l.rt == nil {
		return
	}
	v, err := l.rt.toValue(elem)
	if err != nil {
		l.report("insert: %v", err)
		return
	}
	res := l.mustMethod("insert", starlark.MakeInt(i), v)
	res.Close()
}

// Remove deletes the first element equal to elem, reporting whether one
// was found.
func (l List) Remove(elem any) bool {
	if l.rt == nil {
		return false
	}
	v, err := l.rt.toValue(elem)
	if err != nil {
		l.report("remove: %v", err)
		return false
	}
	res, err := l.method("remove", v)
	if err != nil {
		return false
	}
	res.Close()
	return true
}

// Pop removes and returns the element at index i (default last), with
// negative wraparound; out of range yields a null handle and no change.
func (l List) Pop(index ...int) Handle {
	i := -1
	if len(index) > 0 {
		i = index[0]
	}
	n := l.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return Handle{}
	}
	return l.quietMethod("pop", starlark.MakeInt(i))
}

// Clear removes all elements.
func (l List) Clear() {
	res := l.mustMethod("clear")
	res.Close()
}

// IndexOf returns the index of the first element equal to elem, or -1.
func (l List) IndexOf(elem any) int { return l.seqIndex(elem) }

// Count returns the number of elements equal to elem.
func (l List) Count(elem any) int { return l.seqCount(elem) }

// Contains reports element membership under runtime equality.
func (l List) Contains(elem any) bool { return l.seqIndex(elem) >= 0 }

// Reverse reverses the list in place.
func (l List) Reverse() {
	v := l.list()
	if v == nil {
		return
	}
	n := v.Len()
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		a, b := v.Index(i), v.Index(j)
		if err := v.SetIndex(i, b); err != nil {
			l.report("reverse: %v", err)
			return
		}
		if err := v.SetIndex(j, a); err != nil {
			l.report("reverse: %v", err)
			return
		}
	}
}

// Sort sorts the list in place under the runtime's ordering, by running
// the runtime's sorted builtin and writing the result back.
func (l List) Sort() {
	v := l.list()
	if v == nil || l.rt == nil {
		return
	}
	sorted, err := l.rt.call(starlark.Universe["sorted"], starlark.Tuple{v}, nil)
	if err != nil {
		l.report("sort: %v", err)
		return
	}
	res := sorted.(*starlark.List)
	for i := 0; i < res.Len(); i++ {
		if err := v.SetIndex(i, res.Index(i)); err != nil {
			l.report("sort: %v", err)
			return
		}
	}
}

// At returns the element at index i with negative wraparound; out of
// range yields a null handle.
func (l List) At(i int) Handle { return l.GetItem(i) }

// SetAt stores an element at index i, reporting success.
func (l List) SetAt(i int, elem any) bool { return l.SetItem(i, elem) }

// Concat returns a new list holding the elements of both.
func (l List) Concat(other List) List { return List{l.binary(syntax.PLUS, other.Handle)} }

// Repeat returns a new list holding n copies of the elements.
func (l List) Repeat(n int) List {
	if l.rt == nil {
		return List{}
	}
	return List{l.binary(syntax.STAR, l.rt.Int(int64(n)))}
}

// Lexicographic comparisons under the runtime's comparison protocol.

func (l List) Lt(other List) bool { return l.compare(syntax.LT, other.Handle) }
func (l List) Le(other List) bool { return l.compare(syntax.LE, other.Handle) }
func (l List) Gt(other List) bool { return l.compare(syntax.GT, other.Handle) }
func (l List) Ge(other List) bool { return l.compare(syntax.GE, other.Handle) }
func (l List) Eq(other List) bool { return l.Equal(other.Handle) }

func (l List) mutate(name string, elem any) {
	if l.rt == nil {
		return
	}
	v, err := l.rt.toValue(elem)
	if err != nil {
		l.report("%s: %v", name, err)
		return
	}
	res := l.mustMethod(name, v)
	res.Close()
}

// seqIndex scans an iterable for the first element equal to elem.
func (h Handle) seqIndex(elem any) int {
	v := h.Value()
	if v == nil || h.rt == nil {
		return -1
	}
	target, err := h.rt.toValue(elem)
	if err != nil {
		return -1
	}
	it := starlark.Iterate(v)
	if it == nil {
		return -1
	}
	defer it.Done()

	var x starlark.Value
	for i := 0; it.Next(&x); i++ {
		if eq, err := starlark.Equal(x, target); err == nil && eq {
			return i
		}
	}
	return -1
}

// seqCount counts elements equal to elem.
func (h Handle) seqCount(elem any) int {
	v := h.Value()
	if v == nil || h.rt == nil {
		return 0
	}
	target, err := h.rt.toValue(elem)
	if err != nil {
		return 0
	}
	it := starlark.Iterate(v)
	if it == nil {
		return 0
	}
	defer it.Done()

	count := 0
	var x starlark.Value
	for it.Next(&x) {
		if eq, err := starlark.Equal(x, target); err == nil && eq {
			count++
		}
	}
	return count
}
