package star

import (
	"fmt"

	"go.starlark.net/starlark"
)

// toValue converts one native argument to a runtime value. Handles and
// views pass through; native literals construct fresh values; slices and
// string-keyed maps convert recursively. This is the single conversion
// point for every argument crossing the boundary.
func (rt *Runtime) toValue(x any) (starlark.Value, error) {
	switch v := x.(type) {
	case nil:
		return starlark.None, nil
	case Handle:
		if inner := v.Value(); inner != nil {
			return inner, nil
		}
		return starlark.None, nil
	case Str:
		return handleValue(v.Handle), nil
	case List:
		return handleValue(v.Handle), nil
	case Tuple:
		return handleValue(v.Handle), nil
	case Dict:
		return handleValue(v.Handle), nil
	case Set:
		return handleValue(v.Handle), nil
	case Func:
		return handleValue(v.Handle), nil
	case starlark.Value:
		return v, nil
	case bool:
		return starlark.Bool(v), nil
	case int:
		return starlark.MakeInt(v), nil
	case int32:
		return starlark.MakeInt64(int64(v)), nil
	case int64:
		return starlark.MakeInt64(v), nil
	case uint:
		return starlark.MakeUint(v), nil
	case uint64:
		return starlark.MakeUint64(v), nil
	case float32:
		return starlark.Float(float64(v)), nil
	case float64:
		return starlark.Float(v), nil
	case string:
		return starlark.String(v), nil
	case []any:
		elems := make([]starlark.Value, 0, len(v))
		for _, e := range v {
			ev, err := rt.toValue(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, ev)
		}
		return starlark.NewList(elems), nil
	case []string:
		elems := make([]starlark.Value, 0, len(v))
		for _, s := range v {
			elems = append(elems, starlark.String(s))
		}
		return starlark.NewList(elems), nil
	case map[string]any:
		d := starlark.NewDict(len(v))
		for key, e := range v {
			ev, err := rt.toValue(e)
			if err != nil {
				return nil, err
			}
			if err := d.SetKey(starlark.String(key), ev); err != nil {
				return nil, err
			}
		}
		return d, nil
	}
	return nil, fmt.Errorf("no conversion for native type %T", x)
}

func handleValue(h Handle) starlark.Value {
	if v := h.Value(); v != nil {
		return v
	}
	return starlark.None
}

// toTuple converts a native argument list to a positional bundle.
func (rt *Runtime) toTuple(args []any) (starlark.Tuple, error) {
	tuple := make(starlark.Tuple, 0, len(args))
	for i, a := range args {
		v, err := rt.toValue(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		tuple = append(tuple, v)
	}
	return tuple, nil
}

// hostBuiltin adapts a HostFunc into a runtime builtin.
func (rt *Runtime) hostBuiltin(name string, fn HostFunc) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(kwargs) > 0 {
			return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
		}
		handles := make([]Handle, len(args))
		for i, a := range args {
			handles[i] = rt.wrap(a)
		}
		defer func() {
			for i := range handles {
				handles[i].Close()
			}
		}()
		res, err := fn(handles...)
		if err != nil {
			return nil, err
		}
		return rt.toValue(res)
	})
}

// Display renders a value for human-facing interpolation: text keeps its
// raw characters, everything else uses the canonical form. Native Go
// values format as their literal text.
func Display(x any) string {
	switch v := x.(type) {
	case Handle:
		return displayHandle(v)
	case Str:
		return displayHandle(v.Handle)
	case List:
		return displayHandle(v.Handle)
	case Tuple:
		return displayHandle(v.Handle)
	case Dict:
		return displayHandle(v.Handle)
	case Set:
		return displayHandle(v.Handle)
	case Func:
		return displayHandle(v.Handle)
	case starlark.Value:
		if s, ok := starlark.AsString(v); ok {
			return s
		}
		return v.String()
	case string:
		return v
	}
	return fmt.Sprintf("%v", x)
}

func displayHandle(h Handle) string {
	if s, ok := h.AsText(); ok {
		return s
	}
	return Repr(h)
}
