package star

import (
	"unicode/utf8"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// cell is the shared ownership record behind one or more handles.
// The value is dropped when the last reference is closed.
type cell struct {
	v    starlark.Value
	refs int
}

// Handle owns one reference to a value inside the embedded runtime.
// The zero Handle is the null handle: every operation on it degrades to
// the empty/default result of that operation.
//
// Clone acquires an additional reference; Close releases one. A handle
// contributes exactly one count to its cell while open, and zero after
// Close. Close is idempotent per handle.
type Handle struct {
	rt *Runtime
	c  *cell
}

// wrap takes ownership of a freshly produced runtime value.
func (rt *Runtime) wrap(v starlark.Value) Handle {
	if v == nil {
		return Handle{}
	}
	rt.live.Add(1)
	return Handle{rt: rt, c: &cell{v: v, refs: 1}}
}

// None returns a handle for the runtime's None value.
func (rt *Runtime) None() Handle { return rt.wrap(starlark.None) }

// Int constructs a fresh integer value.
func (rt *Runtime) Int(v int64) Handle { return rt.wrap(starlark.MakeInt64(v)) }

// Float constructs a fresh floating-point value.
func (rt *Runtime) Float(v float64) Handle { return rt.wrap(starlark.Float(v)) }

// Bool constructs a boolean value.
func (rt *Runtime) Bool(v bool) Handle { return rt.wrap(starlark.Bool(v)) }

// Text constructs a fresh text value.
func (rt *Runtime) Text(v string) Handle { return rt.wrap(starlark.String(v)) }

// Wrap adopts an existing runtime value into a new handle.
func (rt *Runtime) Wrap(v starlark.Value) Handle { return rt.wrap(v) }

// Value returns the wrapped runtime value, or nil for a null or closed
// handle.
func (h Handle) Value() starlark.Value {
	if h.c == nil {
		return nil
	}
	return h.c.v
}

// Runtime returns the owning runtime, or nil for the null handle.
func (h Handle) Runtime() *Runtime { return h.rt }

// Clone acquires an additional reference to the same value.
func (h Handle) Clone() Handle {
	if h.c == nil || h.c.v == nil {
		return Handle{}
	}
	h.c.refs++
	if h.rt != nil {
		h.rt.live.Add(1)
	}
	return h
}

// Close releases this handle's reference. The cell drops its value when
// the last reference is released. Closing an already-closed or null
// handle is a no-op.
func (h *Handle) Close() {
	if h.c == nil {
		return
	}
	c := h.c
	h.c = nil
	c.refs--
	if h.rt != nil {
		h.rt.live.Add(-1)
	}
	if c.refs <= 0 {
		c.v = nil
	}
}

// IsNull reports whether the handle holds no value at all.
func (h Handle) IsNull() bool { return h.Value() == nil }

// IsEmpty reports whether the handle is null, or holds a zero-length
// text, sequence, mapping, or set. Numeric zero and False are not empty.
func (h Handle) IsEmpty() bool {
	v := h.Value()
	if v == nil {
		return true
	}
	switch v.(type) {
	case starlark.String, *starlark.List, starlark.Tuple, *starlark.Dict, *starlark.Set:
		return starlark.Len(v) == 0
	}
	return false
}

// Kind predicates. All return false on a null handle.

func (h Handle) IsStr() bool  { _, ok := h.Value().(starlark.String); return ok }
func (h Handle) IsList() bool { _, ok := h.Value().(*starlark.List); return ok }
func (h Handle) IsTuple() bool {
	_, ok := h.Value().(starlark.Tuple)
	return ok
}
func (h Handle) IsDict() bool  { _, ok := h.Value().(*starlark.Dict); return ok }
func (h Handle) IsSet() bool   { _, ok := h.Value().(*starlark.Set); return ok }
func (h Handle) IsInt() bool   { _, ok := h.Value().(starlark.Int); return ok }
func (h Handle) IsFloat() bool { _, ok := h.Value().(starlark.Float); return ok }
func (h Handle) IsBool() bool  { _, ok := h.Value().(starlark.Bool); return ok }
func (h Handle) IsNone() bool  { return h.Value() == starlark.None }

// IsCallable reports whether the value can be invoked.
func (h Handle) IsCallable() bool {
	_, ok := h.Value().(starlark.Callable)
	return ok
}

// IsSequence reports whether the value is indexable (text, list, tuple).
func (h Handle) IsSequence() bool {
	_, ok := h.Value().(starlark.Indexable)
	return ok
}

// Type returns the runtime's name for the value's type, "NoneType" for
// the null handle.
func (h Handle) Type() string {
	v := h.Value()
	if v == nil {
		return "NoneType"
	}
	return v.Type()
}

// Len returns the value's length, or 0 where length does not apply.
func (h Handle) Len() int {
	v := h.Value()
	if v == nil {
		return 0
	}
	if n := starlark.Len(v); n >= 0 {
		return n
	}
	return 0
}

// Truth reports the value's truth under the runtime's truth protocol.
func (h Handle) Truth() bool {
	v := h.Value()
	if v == nil {
		return false
	}
	return bool(v.Truth())
}

// Native extraction. The bool result reports whether the value had the
// requested kind.

func (h Handle) AsInt() (int64, bool) {
	if i, ok := h.Value().(starlark.Int); ok {
		return i.Int64()
	}
	return 0, false
}

func (h Handle) AsFloat() (float64, bool) {
	if f, ok := h.Value().(starlark.Float); ok {
		return float64(f), true
	}
	return 0, false
}

func (h Handle) AsBool() (bool, bool) {
	if b, ok := h.Value().(starlark.Bool); ok {
		return bool(b), true
	}
	return false, false
}

func (h Handle) AsText() (string, bool) {
	return starlark.AsString(h.Value())
}

// Equal reports equality under the runtime's equality protocol.
func (h Handle) Equal(other Handle) bool {
	x, y := h.Value(), other.Value()
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	eq, err := starlark.Equal(x, y)
	if err != nil {
		return false
	}
	return eq
}

// compare applies the runtime's comparison protocol; failures and null
// operands compare false.
func (h Handle) compare(op syntax.Token, other Handle) bool {
	x, y := h.Value(), other.Value()
	if x == nil || y == nil {
		return false
	}
	ok, err := starlark.Compare(op, x, y)
	if err != nil {
		h.report("compare: %v", err)
		return false
	}
	return ok
}

// binary applies one of the runtime's binary operators, wrapping the
// derived value; failures and null operands yield a null handle.
func (h Handle) binary(op syntax.Token, other Handle) Handle {
	x, y := h.Value(), other.Value()
	if x == nil || y == nil {
		return Handle{}
	}
	res, err := starlark.Binary(op, x, y)
	if err != nil {
		h.report("%s: %v", op, err)
		return Handle{}
	}
	return h.rt.wrap(res)
}

// GetItem performs a generic element lookup: key lookup on mappings,
// index lookup (with negative wraparound) on text and sequences. Any
// miss or out-of-range access yields a null handle.
func (h Handle) GetItem(key any) Handle {
	v := h.Value()
	if v == nil {
		return Handle{}
	}

	switch val := v.(type) {
	case starlark.String:
		i, ok := asIndex(key)
		if !ok {
			return Handle{}
		}
		return h.runeAt(string(val), i)

	case starlark.Mapping:
		kv, err := h.rt.toValue(key)
		if err != nil {
			h.report("get_item: %v", err)
			return Handle{}
		}
		res, found, err := val.Get(kv)
		if err != nil {
			h.report("get_item: %v", err)
			return Handle{}
		}
		if !found {
			return Handle{}
		}
		return h.rt.wrap(res)

	case starlark.Indexable:
		i, ok := asIndex(key)
		if !ok {
			return Handle{}
		}
		n := val.Len()
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return Handle{}
		}
		return h.rt.wrap(val.Index(i))
	}

	return Handle{}
}

// SetItem performs a generic element store and reports success: key store
// on mappings, index store (with negative wraparound) on mutable
// sequences.
func (h Handle) SetItem(key, value any) bool {
	v := h.Value()
	if v == nil {
		return false
	}

	vv, err := h.rt.toValue(value)
	if err != nil {
		h.report("set_item: %v", err)
		return false
	}

	switch val := v.(type) {
	case *starlark.Dict:
		kv, err := h.rt.toValue(key)
		if err != nil {
			h.report("set_item: %v", err)
			return false
		}
		if err := val.SetKey(kv, vv); err != nil {
			h.report("set_item: %v", err)
			return false
		}
		return true

	case starlark.HasSetIndex:
		i, ok := asIndex(key)
		if !ok {
			return false
		}
		n := val.Len()
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return false
		}
		if err := val.SetIndex(i, vv); err != nil {
			h.report("set_item: %v", err)
			return false
		}
		return true
	}

	return false
}

// Call invokes the wrapped value with positional arguments, each
// converted by the standard native conversion rules. Invoking a
// non-callable or a failing callable yields a diagnostic and a null
// handle; no failure propagates.
func (h Handle) Call(args ...any) Handle {
	v := h.Value()
	fn, ok := v.(starlark.Callable)
	if !ok {
		h.report("call: %s is not callable", h.Type())
		return Handle{}
	}

	tuple, err := h.rt.toTuple(args)
	if err != nil {
		h.report("call %s: %v", fn.Name(), err)
		return Handle{}
	}

	res, err := h.rt.call(fn, tuple, nil)
	if err != nil {
		h.report("call %s: %v", fn.Name(), err)
		return Handle{}
	}
	return h.rt.wrap(res)
}

// runeAt resolves code-point indexing with negative wraparound.
func (h Handle) runeAt(s string, i int) Handle {
	runes := []rune(s)
	if i < 0 {
		i += len(runes)
	}
	if i < 0 || i >= len(runes) {
		return Handle{}
	}
	return h.rt.Text(string(runes[i]))
}

// report writes a diagnostic through the owning runtime, if any.
func (h Handle) report(format string, args ...any) {
	if h.rt != nil {
		h.rt.reportf(format, args...)
	}
}

// method invokes a named attribute method on the wrapped value through
// the runtime, returning the wrapped result.
func (h Handle) method(name string, args ...starlark.Value) (Handle, error) {
	v := h.Value()
	if v == nil {
		return Handle{}, ErrNotFound
	}
	ha, ok := v.(starlark.HasAttrs)
	if !ok {
		return Handle{}, ErrNotCallable
	}
	m, err := ha.Attr(name)
	if err != nil || m == nil {
		return Handle{}, ErrNotFound
	}
	res, err := h.rt.call(m, starlark.Tuple(args), nil)
	if err != nil {
		return Handle{}, err
	}
	return h.rt.wrap(res), nil
}

// mustMethod is method with the uniform failure policy applied: the
// error becomes a diagnostic and a null handle.
func (h Handle) mustMethod(name string, args ...starlark.Value) Handle {
	res, err := h.method(name, args...)
	if err != nil {
		h.report("%s.%s: %v", h.Type(), name, err)
		return Handle{}
	}
	return res
}

// quietMethod is method with misses swallowed entirely (search misses
// are not failures).
func (h Handle) quietMethod(name string, args ...starlark.Value) Handle {
	res, err := h.method(name, args...)
	if err != nil {
		return Handle{}
	}
	return res
}

// asIndex extracts a native index from the accepted key forms.
func asIndex(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int32:
		return int(k), true
	case int64:
		return int(k), true
	case Handle:
		if i, ok := k.AsInt(); ok {
			return int(i), true
		}
	}
	return 0, false
}

// runeLen is the code-point length used by the text view.
func runeLen(s string) int { return utf8.RuneCountInString(s) }
