package star

import (
	"strings"

	"go.starlark.net/starlark"
)

const indentStep = 4

// Repr returns the canonical form: the runtime's own unambiguous,
// single-line representation (text double-quoted, structure bracketed).
// The null handle renders as None.
func Repr(h Handle) string {
	v := h.Value()
	if v == nil {
		return "None"
	}
	return v.String()
}

// Pretty returns the indented multi-line form. Nesting indents by four
// columns per level; empty containers render inline; mapping entries
// render as "key: value". Set entries appear in the runtime's iteration
// order, which is unspecified and not guaranteed stable across versions.
// Kinds without a structural rendering fall back to the canonical form.
func Pretty(h Handle) string {
	v := h.Value()
	if v == nil {
		return "None"
	}
	var b strings.Builder
	pretty(&b, v, 0)
	return b.String()
}

func pretty(b *strings.Builder, v starlark.Value, indent int) {
	switch val := v.(type) {
	case *starlark.List:
		elems := make([]starlark.Value, val.Len())
		for i := 0; i < val.Len(); i++ {
			elems[i] = val.Index(i)
		}
		prettySeq(b, "[", "]", elems, indent)

	case starlark.Tuple:
		prettySeq(b, "(", ")", val, indent)

	case *starlark.Dict:
		items := val.Items()
		if len(items) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		for i, kv := range items {
			writePad(b, indent+indentStep)
			pretty(b, kv[0], indent+indentStep)
			b.WriteString(": ")
			pretty(b, kv[1], indent+indentStep)
			if i < len(items)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		writePad(b, indent)
		b.WriteString("}")

	case *starlark.Set:
		if val.Len() == 0 {
			b.WriteString(val.String())
			return
		}
		var elems []starlark.Value
		it := val.Iterate()
		var x starlark.Value
		for it.Next(&x) {
			elems = append(elems, x)
		}
		it.Done()
		prettySeq(b, "{", "}", elems, indent)

	default:
		// Scalars and unrecognized kinds use the canonical form.
		b.WriteString(v.String())
	}
}

func prettySeq(b *strings.Builder, open, close string, elems []starlark.Value, indent int) {
	if len(elems) == 0 {
		b.WriteString(open + close)
		return
	}
	b.WriteString(open + "\n")
	for i, e := range elems {
		writePad(b, indent+indentStep)
		pretty(b, e, indent+indentStep)
		if i < len(elems)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	writePad(b, indent)
	b.WriteString(close)
}

func writePad(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteByte(' ')
	}
}
