package star

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.starlark.net/starlark"
)

var (
	// ErrFinalized reports use of a runtime after Close.
	ErrFinalized = errors.New("runtime finalized")

	// ErrNotCallable reports an invocation target that is not callable.
	ErrNotCallable = errors.New("value is not callable")

	// ErrNotFound reports an absent key, index, or name.
	ErrNotFound = errors.New("not found")
)

// Runtime owns one embedded Starlark interpreter and all values created
// through it. All foreign calls are serialized behind an internal mutex;
// handles themselves are not safe to share across goroutines.
type Runtime struct {
	mu      sync.Mutex
	thread  *starlark.Thread
	globals starlark.StringDict
	loads   map[string]*loadEntry

	cfg  config
	live atomic.Int64

	closed bool
}

type loadEntry struct {
	globals starlark.StringDict
	err     error
}

// New creates an active Runtime.
func New(opts ...Option) (*Runtime, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rt := &Runtime{
		cfg:     cfg,
		globals: make(starlark.StringDict),
		loads:   make(map[string]*loadEntry),
	}

	rt.thread = &starlark.Thread{
		Name: "staru",
		Print: func(_ *starlark.Thread, msg string) {
			rt.cfg.print(msg)
		},
	}
	if cfg.loadRoot != "" {
		rt.thread.Load = rt.load
	}

	for name, fn := range cfg.builtins {
		rt.globals[name] = rt.hostBuiltin(name, fn)
	}
	for name, raw := range cfg.globals {
		v, err := rt.toValue(raw)
		if err != nil {
			return nil, fmt.Errorf("global %s: %w", name, err)
		}
		rt.globals[name] = v
	}

	return rt, nil
}

// Close releases the runtime. It is idempotent; handles left open are
// counted and reported to the diagnostic stream, not reclaimed.
func (rt *Runtime) Close() error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return nil
	}
	rt.closed = true

	if n := rt.live.Load(); n > 0 {
		rt.reportf("finalize: %d handle(s) still open", n)
	}
	rt.globals = nil
	rt.loads = nil
	return nil
}

// Active reports whether the runtime has not been closed.
func (rt *Runtime) Active() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return !rt.closed
}

// Live returns the number of open handle references owned against the
// runtime. Useful for leak accounting in tests.
func (rt *Runtime) Live() int64 {
	return rt.live.Load()
}

// reportf writes one diagnostic line.
func (rt *Runtime) reportf(format string, args ...any) {
	fmt.Fprintf(rt.cfg.diag, format+"\n", args...)
}

// env returns the evaluation environment: accumulated globals, with host
// builtins and predeclared values already merged at construction time.
func (rt *Runtime) env() starlark.StringDict {
	env := make(starlark.StringDict, len(rt.globals))
	for k, v := range rt.globals {
		env[k] = v
	}
	return env
}

// call invokes fn inside the runtime. All invocation paths funnel here.
func (rt *Runtime) call(fn starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return nil, ErrFinalized
	}
	return starlark.Call(rt.thread, fn, args, kwargs)
}

// load implements the Starlark load() protocol relative to the configured
// load root, with result caching and cycle detection.
func (rt *Runtime) load(_ *starlark.Thread, module string) (starlark.StringDict, error) {
	entry, ok := rt.loads[module]
	if entry != nil {
		return entry.globals, entry.err
	}
	if ok {
		return nil, fmt.Errorf("cycle in load graph at %s", module)
	}

	rt.loads[module] = nil // in progress

	path := filepath.Join(rt.cfg.loadRoot, module)
	src, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("load %s: %w", module, err)
		rt.loads[module] = &loadEntry{err: err}
		return nil, err
	}

	globals, err := starlark.ExecFile(rt.thread, path, src, rt.env())
	rt.loads[module] = &loadEntry{globals: globals, err: err}
	return globals, err
}

// Process-wide default runtime, for hosts that want the ambient lifecycle
// instead of threading a *Runtime through their code.
var (
	defaultMu sync.Mutex
	defaultRT *Runtime
)

// Init creates the process-wide default runtime. Calling Init while a
// default runtime is active is a no-op that returns the active runtime.
func Init(opts ...Option) (*Runtime, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRT != nil && defaultRT.Active() {
		return defaultRT, nil
	}
	rt, err := New(opts...)
	if err != nil {
		return nil, err
	}
	defaultRT = rt
	return rt, nil
}

// Finalize closes the process-wide default runtime. Calling Finalize with
// no active default runtime is a no-op.
func Finalize() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRT != nil {
		defaultRT.Close()
		defaultRT = nil
	}
}

// Default returns the process-wide default runtime, or nil if Init has not
// been called (or Finalize has been).
func Default() *Runtime {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultRT
}
