package star

import (
	"go.starlark.net/starlark"
)

// Dict is the mapping view: unique keys, insertion order preserved by
// the runtime.
type Dict struct {
	Handle
}

// NewDict constructs a fresh empty mapping, optionally seeded from
// string-keyed native maps.
func (rt *Runtime) NewDict(seed ...map[string]any) Dict {
	d := Dict{rt.wrap(starlark.NewDict(0))}
	for _, m := range seed {
		for k, v := range m {
			d.Add(k, v)
		}
	}
	return d
}

// AsDict views a handle as a mapping. Any other kind coerces to a fresh
// empty mapping.
func AsDict(h Handle) Dict {
	if h.IsDict() {
		return Dict{h.Clone()}
	}
	if h.rt != nil {
		return Dict{h.rt.wrap(starlark.NewDict(0))}
	}
	return Dict{}
}

func (d Dict) dict() *starlark.Dict {
	v, _ := d.Value().(*starlark.Dict)
	return v
}

// Add binds key to value, replacing any previous binding, and reports
// success.
func (d Dict) Add(key, value any) bool {
	v := d.dict()
	if v == nil {
		return false
	}
	kv, err := d.rt.toValue(key)
	if err != nil {
		d.report("add: %v", err)
		return false
	}
	vv, err := d.rt.toValue(value)
	if err != nil {
		d.report("add: %v", err)
		return false
	}
	if err := v.SetKey(kv, vv); err != nil {
		d.report("add: %v", err)
		return false
	}
	return true
}

// Get returns the value bound to key; a miss yields a null handle.
func (d Dict) Get(key any) Handle {
	h, _ := d.Lookup(key)
	return h
}

// Lookup is Get with the miss made explicit: the bool distinguishes an
// absent key from a binding to a null-rendering value.
func (d Dict) Lookup(key any) (Handle, bool) {
	v := d.dict()
	if v == nil {
		return Handle{}, false
	}
	kv, err := d.rt.toValue(key)
	if err != nil {
		d.report("get: %v", err)
		return Handle{}, false
	}
	res, found, err := v.Get(kv)
	if err != nil {
		d.report("get: %v", err)
		return Handle{}, false
	}
	if !found {
		return Handle{}, false
	}
	return d.rt.wrap(res), true
}

// Pop removes the binding at key and returns its value; a miss yields a
// null handle and no change.
func (d Dict) Pop(key any) Handle {
	v := d.dict()
	if v == nil {
		return Handle{}
	}
	kv, err := d.rt.toValue(key)
	if err != nil {
		d.report("pop: %v", err)
		return Handle{}
	}
	res, found, err := v.Delete(kv)
	if err != nil {
		d.report("pop: %v", err)
		return Handle{}
	}
	if !found {
		return Handle{}
	}
	return d.rt.wrap(res)
}

// Contains reports whether key is bound.
func (d Dict) Contains(key any) bool {
	_, found := d.Lookup(key)
	return found
}

// Clear removes every binding.
func (d Dict) Clear() {
	if v := d.dict(); v != nil {
		if err := v.Clear(); err != nil {
			d.report("clear: %v", err)
		}
	}
}

// Keys returns the keys as a new list, in insertion order.
func (d Dict) Keys() List {
	v := d.dict()
	if v == nil {
		return List{}
	}
	return List{d.rt.wrap(starlark.NewList(v.Keys()))}
}

// Values returns the values as a new list, in key insertion order.
func (d Dict) Values() List {
	v := d.dict()
	if v == nil {
		return List{}
	}
	items := v.Items()
	vals := make([]starlark.Value, len(items))
	for i, kv := range items {
		vals[i] = kv[1]
	}
	return List{d.rt.wrap(starlark.NewList(vals))}
}

// Items returns the bindings as a new list of (key, value) tuples, in
// insertion order.
func (d Dict) Items() List {
	v := d.dict()
	if v == nil {
		return List{}
	}
	items := v.Items()
	pairs := make([]starlark.Value, len(items))
	for i, kv := range items {
		pairs[i] = kv
	}
	return List{d.rt.wrap(starlark.NewList(pairs))}
}

// Update merges other's bindings into this mapping in place. Other may
// be a Dict view, a mapping-kind Handle, or a string-keyed native map.
func (d Dict) Update(other any) {
	v := d.dict()
	if v == nil {
		return
	}
	src := d.asDictValue(other)
	if src == nil {
		d.report("update: no mapping conversion for %T", other)
		return
	}
	for _, kv := range src.Items() {
		if err := v.SetKey(kv[0], kv[1]); err != nil {
			d.report("update: %v", err)
			return
		}
	}
}

// Merge returns a new mapping holding this mapping's bindings overlaid
// with other's.
func (d Dict) Merge(other any) Dict {
	if d.rt == nil {
		return Dict{}
	}
	out := d.rt.NewDict()
	out.Update(d)
	out.Update(other)
	return out
}

// At returns the deferred-write proxy for the binding at key. Nothing is
// read or written until the proxy is used.
func (d Dict) At(key any) Item {
	return Item{dict: d, key: key}
}

// Eq reports equality under the runtime's equality protocol.
func (d Dict) Eq(other Dict) bool { return d.Equal(other.Handle) }

func (d Dict) asDictValue(other any) *starlark.Dict {
	if d.rt == nil {
		return nil
	}
	v, err := d.rt.toValue(other)
	if err != nil {
		return nil
	}
	dv, _ := v.(*starlark.Dict)
	return dv
}
