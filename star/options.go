package star

import (
	"fmt"
	"io"
	"os"
)

// Option configures a Runtime at creation time.
type Option func(*config)

// HostFunc is a Go function exposed to the embedded runtime as a builtin.
// Arguments arrive as handles; the result is converted with the same rules
// as call arguments (handles pass through, native literals are wrapped).
type HostFunc func(args ...Handle) (any, error)

type config struct {
	diag     io.Writer
	print    func(string)
	loadRoot string
	globals  map[string]any
	builtins map[string]HostFunc
}

func defaultConfig() config {
	return config{
		diag:     os.Stderr,
		print:    func(msg string) { fmt.Println(msg) },
		globals:  make(map[string]any),
		builtins: make(map[string]HostFunc),
	}
}

// WithDiagnostics redirects diagnostic output (caught runtime failures,
// leak reports). Defaults to os.Stderr; use io.Discard to silence.
func WithDiagnostics(w io.Writer) Option {
	return func(c *config) {
		c.diag = w
	}
}

// WithPrint sets the sink for the runtime's print() builtin.
// Defaults to standard output.
func WithPrint(fn func(msg string)) Option {
	return func(c *config) {
		c.print = fn
	}
}

// WithLoadRoot enables the load() builtin, resolving module paths relative
// to dir. Without this option load() is unavailable.
func WithLoadRoot(dir string) Option {
	return func(c *config) {
		c.loadRoot = dir
	}
}

// WithGlobal predeclares a value under the given name. The value is
// converted with the standard native conversion rules; New fails if the
// value has no conversion.
func WithGlobal(name string, value any) Option {
	return func(c *config) {
		c.globals[name] = value
	}
}

// WithBuiltin exposes a Go function to the embedded runtime.
//
// Example:
//
//	star.New(star.WithBuiltin("greet", func(args ...star.Handle) (any, error) {
//	    return "hello " + star.AsStr(args[0]).Text(), nil
//	}))
func WithBuiltin(name string, fn HostFunc) Option {
	return func(c *config) {
		c.builtins[name] = fn
	}
}
