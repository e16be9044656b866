package star

import (
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Str is the text view: an immutable character sequence. Transforms
// return new values; the wrapped value is never mutated.
type Str struct {
	Handle
}

// NewStr constructs a fresh text value wrapped in a Str view.
func (rt *Runtime) NewStr(s string) Str { return Str{rt.Text(s)} }

// AsStr views a handle as text. A handle of any other kind coerces to
// the empty text value rather than failing.
func AsStr(h Handle) Str {
	if h.IsStr() {
		return Str{h.Clone()}
	}
	if h.rt != nil {
		return Str{h.rt.Text("")}
	}
	return Str{}
}

// Text returns the native string, "" for a coerced or null view.
func (s Str) Text() string {
	str, _ := s.AsText()
	return str
}

// Len returns the length in code points.
func (s Str) Len() int { return runeLen(s.Text()) }

// Case transforms, delegated to the runtime's text methods.

func (s Str) Capitalize() Str { return Str{s.mustMethod("capitalize")} }
func (s Str) Upper() Str      { return Str{s.mustMethod("upper")} }
func (s Str) Lower() Str      { return Str{s.mustMethod("lower")} }
func (s Str) Title() Str      { return Str{s.mustMethod("title")} }

// SwapCase inverts the case of every cased character. The runtime has no
// method for this one, so it is computed host-side.
func (s Str) SwapCase() Str {
	swapped := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s.Text())
	if s.rt == nil {
		return Str{}
	}
	return s.rt.NewStr(swapped)
}

// Strip variants.

func (s Str) Strip() Str  { return Str{s.mustMethod("strip")} }
func (s Str) LStrip() Str { return Str{s.mustMethod("lstrip")} }
func (s Str) RStrip() Str { return Str{s.mustMethod("rstrip")} }

// Classification predicates. Delegated where the runtime has the method;
// a coerced empty view answers false throughout.

func (s Str) IsDigit() bool { return s.boolMethod("isdigit") }
func (s Str) IsAlpha() bool { return s.boolMethod("isalpha") }
func (s Str) IsAlnum() bool { return s.boolMethod("isalnum") }
func (s Str) IsTitle() bool { return s.boolMethod("istitle") }
func (s Str) IsUpper() bool { return s.boolMethod("isupper") }
func (s Str) IsLower() bool { return s.boolMethod("islower") }

// IsDecimal reports whether the text is non-empty and entirely decimal
// digits. Computed host-side; the runtime's method set stops at isdigit.
func (s Str) IsDecimal() bool { return s.every(unicode.IsDigit) }

// IsNumeric reports whether the text is non-empty and entirely numeric
// characters (digits plus numeric letters and forms).
func (s Str) IsNumeric() bool { return s.every(unicode.IsNumber) }

func (s Str) every(pred func(rune) bool) bool {
	text := s.Text()
	if text == "" {
		return false
	}
	for _, r := range text {
		if !pred(r) {
			return false
		}
	}
	return true
}

func (s Str) boolMethod(name string, args ...starlark.Value) bool {
	res := s.quietMethod(name, args...)
	defer res.Close()
	b, _ := res.AsBool()
	return b
}

// Find returns the code-point index of the first occurrence of sub, or
// -1 on a miss.
func (s Str) Find(sub string) int { return s.intMethod("find", starlark.String(sub)) }

// RFind is Find searching from the right.
func (s Str) RFind(sub string) int { return s.intMethod("rfind", starlark.String(sub)) }

// Index and RIndex follow the same miss convention as Find: -1, never a
// raised failure.
func (s Str) Index(sub string) int { return s.intMethod("index", starlark.String(sub)) }
func (s Str) RIndex(sub string) int {
	return s.intMethod("rindex", starlark.String(sub))
}

func (s Str) intMethod(name string, args ...starlark.Value) int {
	res, err := s.method(name, args...)
	if err != nil {
		return -1
	}
	defer res.Close()
	if i, ok := res.AsInt(); ok {
		return int(i)
	}
	return -1
}

// Replace returns the text with every occurrence of old replaced.
func (s Str) Replace(old, new string) Str {
	return Str{s.mustMethod("replace", starlark.String(old), starlark.String(new))}
}

// Split divides the text around sep. An empty sep splits on runs of
// whitespace, matching the runtime's no-argument split.
func (s Str) Split(sep string) List {
	if sep == "" {
		return List{s.mustMethod("split")}
	}
	return List{s.mustMethod("split", starlark.String(sep))}
}

// Join concatenates the arguments with this text as the separator.
// Arguments follow the standard native conversion rules.
func (s Str) Join(elems ...any) Str {
	if s.rt == nil {
		return Str{}
	}
	parts, err := s.rt.toTuple(elems)
	if err != nil {
		s.report("join: %v", err)
		return Str{}
	}
	return Str{s.mustMethod("join", starlark.NewList(parts))}
}

// CharAt returns the single code point at index i, with negative
// wraparound; out of range yields the empty text.
func (s Str) CharAt(i int) Str {
	if s.rt == nil {
		return Str{}
	}
	res := s.runeAt(s.Text(), i)
	if res.IsNull() {
		return Str{s.rt.Text("")}
	}
	return Str{res}
}

// Contains reports substring membership.
func (s Str) Contains(sub string) bool {
	return strings.Contains(s.Text(), sub)
}

// Concat returns the concatenation of this text and other, as a new
// value.
func (s Str) Concat(other Str) Str { return Str{s.binary(syntax.PLUS, other.Handle)} }

// Repeat returns this text repeated n times, as a new value.
func (s Str) Repeat(n int) Str {
	if s.rt == nil {
		return Str{}
	}
	return Str{s.binary(syntax.STAR, s.rt.Int(int64(n)))}
}

// Lexicographic comparisons, delegated to the runtime's comparison
// protocol.

func (s Str) Lt(other Str) bool { return s.compare(syntax.LT, other.Handle) }
func (s Str) Le(other Str) bool { return s.compare(syntax.LE, other.Handle) }
func (s Str) Gt(other Str) bool { return s.compare(syntax.GT, other.Handle) }
func (s Str) Ge(other Str) bool { return s.compare(syntax.GE, other.Handle) }
func (s Str) Eq(other Str) bool { return s.Equal(other.Handle) }
