package star

import (
	"go.starlark.net/starlark"
)

// Func is the callable view.
type Func struct {
	Handle
}

// AsFunc views a handle as a callable. A non-callable coerces to the
// null view, whose invocations yield diagnostics and null handles.
func AsFunc(h Handle) Func {
	if h.IsCallable() {
		return Func{h.Clone()}
	}
	return Func{Handle{rt: h.rt}}
}

// Name returns the callable's name, "" for the null view.
func (f Func) Name() string {
	if c, ok := f.Value().(starlark.Callable); ok {
		return c.Name()
	}
	return ""
}

// Call invokes the callable with purely positional arguments; see
// Handle.Call.
func (f Func) Call(args ...any) Handle {
	return f.Handle.Call(args...)
}

// Invoke applies the keyword heuristic of the package-level Invoke and
// additionally returns the failure, for callers that need to tell a
// legitimate None result from a failed call.
func (f Func) Invoke(args ...any) (Handle, error) {
	return invoke(f.Handle, args)
}
