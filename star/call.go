package star

import (
	"fmt"

	"go.starlark.net/starlark"
)

// Invoke calls a callable handle with native arguments. If the last
// argument converts to a mapping, it is consumed as the keyword bundle
// (string keys become keyword names); every other argument is marshaled
// positionally.
//
// The trailing-mapping rule is a heuristic: a mapping meant as a genuine
// final positional argument cannot be expressed through Invoke. Use
// Handle.Call for purely positional invocation.
//
// Failures surface on the diagnostic stream and yield a null handle.
func Invoke(f Handle, args ...any) Handle {
	res, err := invoke(f, args)
	if err != nil {
		f.report("invoke: %v", err)
		return Handle{}
	}
	return res
}

func invoke(f Handle, args []any) (Handle, error) {
	v := f.Value()
	fn, ok := v.(starlark.Callable)
	if !ok {
		return Handle{}, fmt.Errorf("%s: %w", f.Type(), ErrNotCallable)
	}

	positional := args
	var kwargs []starlark.Tuple

	if len(args) > 0 {
		if last, ok := asMapping(f.rt, args[len(args)-1]); ok {
			var err error
			kwargs, err = keywordBundle(last)
			if err != nil {
				return Handle{}, err
			}
			positional = args[:len(args)-1]
		}
	}

	tuple, err := f.rt.toTuple(positional)
	if err != nil {
		return Handle{}, err
	}

	res, err := f.rt.call(fn, tuple, kwargs)
	if err != nil {
		return Handle{}, err
	}
	return f.rt.wrap(res), nil
}

// asMapping reports whether a native argument is mapping-kind, without
// converting scalars.
func asMapping(rt *Runtime, x any) (*starlark.Dict, bool) {
	if rt == nil {
		return nil, false
	}
	switch v := x.(type) {
	case Dict:
		d, _ := v.Value().(*starlark.Dict)
		return d, d != nil
	case Handle:
		d, ok := v.Value().(*starlark.Dict)
		return d, ok
	case *starlark.Dict:
		return v, true
	case map[string]any:
		converted, err := rt.toValue(v)
		if err != nil {
			return nil, false
		}
		d, _ := converted.(*starlark.Dict)
		return d, d != nil
	}
	return nil, false
}

// keywordBundle flattens a mapping into keyword pairs. Keys must be
// text.
func keywordBundle(d *starlark.Dict) ([]starlark.Tuple, error) {
	items := d.Items()
	kwargs := make([]starlark.Tuple, 0, len(items))
	for _, kv := range items {
		if _, ok := kv[0].(starlark.String); !ok {
			return nil, fmt.Errorf("keyword name must be text, got %s", kv[0].Type())
		}
		kwargs = append(kwargs, kv)
	}
	return kwargs, nil
}
