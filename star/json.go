package star

import (
	"fmt"
	"os"
	"strings"

	starjson "go.starlark.net/lib/json"
	"go.starlark.net/starlark"
)

// The encode/decode work is the runtime's own; this file only marshals
// arguments and results across the wrapper boundary.

// JSONDumps marshals a handle tree to JSON text. indent > 0 selects the
// indented multi-line rendering; otherwise the output is one compact
// line. Failure yields a diagnostic and "".
func (rt *Runtime) JSONDumps(h Handle, indent int) string {
	text, err := rt.jsonEncode(h, indent)
	if err != nil {
		rt.reportf("json_dumps: %v", err)
		return ""
	}
	return text
}

// JSONLoads parses JSON text into the runtime's value model. Failure
// yields a diagnostic and a null handle.
func (rt *Runtime) JSONLoads(text string) Handle {
	res, err := rt.jsonCall("decode", starlark.String(text))
	if err != nil {
		rt.reportf("json_loads: %v", err)
		return Handle{}
	}
	return rt.wrap(res)
}

// JSONDump marshals a handle tree to a UTF-8 JSON file.
func (rt *Runtime) JSONDump(h Handle, path string, indent int) error {
	text, err := rt.jsonEncode(h, indent)
	if err != nil {
		return fmt.Errorf("json_dump: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("json_dump: %w", err)
	}
	return nil
}

// JSONLoad parses a JSON file into the runtime's value model. Failure
// (including an unopenable file) yields a diagnostic and a null handle.
func (rt *Runtime) JSONLoad(path string) Handle {
	data, err := os.ReadFile(path)
	if err != nil {
		rt.reportf("json_load: %v", err)
		return Handle{}
	}
	return rt.JSONLoads(string(data))
}

func (rt *Runtime) jsonEncode(h Handle, indent int) (string, error) {
	v := h.Value()
	if v == nil {
		v = starlark.None
	}
	res, err := rt.jsonCall("encode", v)
	if err != nil {
		return "", err
	}
	if indent <= 0 {
		return string(res.(starlark.String)), nil
	}
	indented, err := rt.jsonIndent(res, indent)
	if err != nil {
		return "", err
	}
	return indented, nil
}

func (rt *Runtime) jsonIndent(encoded starlark.Value, indent int) (string, error) {
	fn := starjson.Module.Members["indent"]
	kwargs := []starlark.Tuple{
		{starlark.String("indent"), starlark.String(strings.Repeat(" ", indent))},
	}
	res, err := rt.call(fn, starlark.Tuple{encoded}, kwargs)
	if err != nil {
		return "", err
	}
	return string(res.(starlark.String)), nil
}

func (rt *Runtime) jsonCall(member string, arg starlark.Value) (starlark.Value, error) {
	fn := starjson.Module.Members[member]
	return rt.call(fn, starlark.Tuple{arg}, nil)
}
