// Package star implements the embedded-runtime bridge: handle ownership,
// typed views, call marshaling, structural rendering, and the JSON bridge.
//
// # Overview
//
// A Runtime owns one embedded Starlark interpreter: its thread, its globals
// table (state persists across Exec calls, like a session), and a diagnostic
// stream. Every value crossing the boundary is wrapped in a Handle, which
// owns exactly one reference to the value until it is closed.
//
// # Error policy
//
// Misses are not errors: a key or index that is absent yields an empty
// handle, a failed search yields -1. Runtime failures are caught at the
// call boundary, written to the diagnostic stream, and surfaced as empty
// handles; no failure crosses the API as a panic. Callers that need to
// distinguish "absent" from "failed" use the tagged variants (Dict.Lookup,
// Runtime.EvalErr, Func.Invoke).
//
// # Basic Usage
//
//	rt, err := star.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close()
//
//	d := rt.NewDict()
//	d.Add("answer", 42)
//	fmt.Println(star.Pretty(d.Handle))
package star
