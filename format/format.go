// Package format implements positional/named placeholder substitution
// over a literal template string.
//
// Syntax:
//
//	{}      next unconsumed positional argument
//	{name}  named argument, bound with Farg
//	{{  }}  literal braces
//
// Unmatched placeholders pass through verbatim: "{}" with no positional
// arguments left, "{name}" with no such name, and an unterminated "{"
// all emit their literal text. One left-to-right scan, no recursion.
package format

import (
	"strings"

	"github.com/caffeineduck/staru/star"
)

// Arg is a named template argument.
type Arg struct {
	Name  string
	Value any
}

// Farg binds a value to a placeholder name.
func Farg(name string, value any) Arg {
	return Arg{Name: name, Value: value}
}

// Fstring renders the template. Plain arguments are consumed
// positionally, left to right; Arg values bind to their names. Values
// are stringified the way the rest of the library displays them: text
// keeps its raw characters, handles use their canonical form.
func Fstring(template string, args ...any) string {
	var positional []any
	named := make(map[string]any)
	for _, a := range args {
		if arg, ok := a.(Arg); ok {
			named[arg.Name] = arg.Value
		} else {
			positional = append(positional, a)
		}
	}

	var b strings.Builder
	b.Grow(len(template))
	next := 0 // next positional argument to consume

	for i := 0; i < len(template); i++ {
		c := template[i]

		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			b.WriteByte('{')
			i++

		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			b.WriteByte('}')
			i++

		case c == '{':
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				// Unterminated: emit the rest verbatim.
				b.WriteString(template[i:])
				return b.String()
			}
			name := template[i+1 : i+end]
			switch {
			case name == "":
				if next < len(positional) {
					b.WriteString(star.Display(positional[next]))
					next++
				} else {
					b.WriteString("{}")
				}
			default:
				if v, ok := named[name]; ok {
					b.WriteString(star.Display(v))
				} else {
					b.WriteString(template[i : i+end+1])
				}
			}
			i += end

		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
