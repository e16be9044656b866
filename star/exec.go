package star

import (
	"os"

	"go.starlark.net/starlark"
)

// reservedGlobals are environment bookkeeping names excluded from
// RunFileResult: they describe the execution environment, not user data.
var reservedGlobals = map[string]bool{
	"__builtins__":    true,
	"__name__":        true,
	"__doc__":         true,
	"__package__":     true,
	"__loader__":      true,
	"__spec__":        true,
	"__annotations__": true,
}

// Exec executes a statement block for side effect. Top-level bindings
// persist in the runtime's globals for later Exec and Eval calls.
// Failures surface on the diagnostic stream only.
func (rt *Runtime) Exec(code string) {
	if err := rt.ExecErr(code); err != nil {
		rt.reportf("exec: %v", err)
	}
}

// ExecErr is Exec with the failure returned instead of swallowed.
func (rt *Runtime) ExecErr(code string) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return ErrFinalized
	}
	globals, err := starlark.ExecFile(rt.thread, "<exec>", code, rt.env())
	if err != nil {
		return err
	}
	for k, v := range globals {
		rt.globals[k] = v
	}
	return nil
}

// Eval evaluates one expression and returns its value; failure yields a
// diagnostic and a null handle.
func (rt *Runtime) Eval(code string) Handle {
	h, err := rt.EvalErr(code)
	if err != nil {
		rt.reportf("eval: %v", err)
		return Handle{}
	}
	return h
}

// EvalErr is Eval with the failure returned, for callers that need to
// tell a legitimate None from a failed evaluation.
func (rt *Runtime) EvalErr(code string) (Handle, error) {
	rt.mu.Lock()
	v, err := func() (starlark.Value, error) {
		if rt.closed {
			return nil, ErrFinalized
		}
		return starlark.Eval(rt.thread, "<eval>", code, rt.env())
	}()
	rt.mu.Unlock()

	if err != nil {
		return Handle{}, err
	}
	return rt.wrap(v), nil
}

// RunFile executes a file for side effect, merging its top-level
// bindings into the runtime's globals. Failures (including an unreadable
// file) surface on the diagnostic stream only.
func (rt *Runtime) RunFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		rt.reportf("run_file: %v", err)
		return
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		rt.reportf("run_file: %v", ErrFinalized)
		return
	}
	globals, err := starlark.ExecFile(rt.thread, path, src, rt.env())
	if err != nil {
		rt.reportf("run_file %s: %v", path, err)
		return
	}
	for k, v := range globals {
		rt.globals[k] = v
	}
}

// RunFileResult executes a file in a fresh environment and returns its
// resulting top-level bindings as a mapping, excluding reserved
// bookkeeping names. Failures yield a diagnostic and an empty mapping;
// bindings made before the failure are kept, matching the runtime's
// partial-execution semantics.
func (rt *Runtime) RunFileResult(path string) Dict {
	result := rt.NewDict()

	src, err := os.ReadFile(path)
	if err != nil {
		rt.reportf("run_file_result: %v", err)
		return result
	}

	rt.mu.Lock()
	globals, err := func() (starlark.StringDict, error) {
		if rt.closed {
			return nil, ErrFinalized
		}
		return starlark.ExecFile(rt.thread, path, src, rt.env())
	}()
	rt.mu.Unlock()

	if err != nil {
		rt.reportf("run_file_result %s: %v", path, err)
	}
	for _, name := range globals.Keys() {
		if name == "" || reservedGlobals[name] {
			continue
		}
		result.Add(name, globals[name])
	}
	return result
}
