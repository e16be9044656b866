// Package staru provides typed, native-feeling views over values that live
// inside an embedded Starlark runtime.
//
// # Overview
//
// staru hosts a Starlark interpreter in-process and exposes its values
// through ownership-tracked handles and typed views (strings, lists, tuples,
// dicts, sets, callables). Views speak the vocabulary of their kind while
// the underlying value stays inside the runtime; mutation, comparison, and
// rendering are delegated to the runtime's own protocols.
//
// # Basic Usage
//
//	rt, _ := star.New()
//	defer rt.Close()
//
//	l := rt.NewList(1, 2, 3)
//	l.Append(4)
//	fmt.Println(star.Repr(l.Handle)) // [1, 2, 3, 4]
//
//	h := rt.Eval(`{"a": [1, 2]}`)
//	fmt.Println(star.Pretty(h))
//
// # Calling Starlark from Go
//
//	rt.Exec(`def add(x, y): return x + y`)
//	f := star.AsFunc(rt.Eval("add"))
//	sum := f.Call(2, 3) // handle for 5
//
// See the [star], [format], and [cmd/staru] packages for detailed API
// documentation.
package staru
