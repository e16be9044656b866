package star

import (
	"go.starlark.net/starlark"
)

// All reports whether every element of the sequence is true under the
// runtime's truth protocol. An empty or coerced sequence answers true.
func All(l List) bool {
	return !eachTruth(l, false)
}

// Any reports whether at least one element is true.
func Any(l List) bool {
	return eachTruth(l, true)
}

// eachTruth scans for an element whose truth equals want.
func eachTruth(l List, want bool) bool {
	v := l.Value()
	if v == nil {
		return false
	}
	it := starlark.Iterate(v)
	if it == nil {
		return false
	}
	defer it.Done()

	var x starlark.Value
	for it.Next(&x) {
		if bool(x.Truth()) == want {
			return true
		}
	}
	return false
}

// Map applies a callable to every element and collects the results in a
// new list. Elements whose call fails are skipped (the failure surfaces
// on the diagnostic stream via Call).
func Map(f Handle, l List) List {
	if l.rt == nil {
		return List{}
	}
	out := l.rt.NewList()
	v := l.Value()
	if v == nil {
		return out
	}
	it := starlark.Iterate(v)
	if it == nil {
		return out
	}
	defer it.Done()

	var x starlark.Value
	for it.Next(&x) {
		res := f.Call(x)
		if res.IsNull() {
			continue
		}
		out.Append(res)
		res.Close()
	}
	return out
}

// TypeName returns the runtime's name for the value's type; the null
// handle names NoneType.
func TypeName(h Handle) string { return h.Type() }
