package format_test

import (
	"io"
	"testing"

	"github.com/caffeineduck/staru/format"
	"github.com/caffeineduck/staru/star"
)

var testRT *star.Runtime

func TestMain(m *testing.M) {
	var err error
	testRT, err = star.New(star.WithDiagnostics(io.Discard))
	if err != nil {
		panic("failed to create shared runtime: " + err.Error())
	}

	code := m.Run()

	testRT.Close()
	if code != 0 {
		panic("tests failed")
	}
}

func TestFstring(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{
			name:     "positional and named",
			template: "{} and {name}",
			args:     []any{1, format.Farg("name", "x")},
			want:     "1 and x",
		},
		{
			name:     "literal braces",
			template: "{{literal}}",
			want:     "{literal}",
		},
		{
			name:     "unknown name passes through",
			template: "{missing}",
			want:     "{missing}",
		},
		{
			name:     "exhausted positionals pass through",
			template: "{} {}",
			args:     []any{1},
			want:     "1 {}",
		},
		{
			name:     "unterminated brace emits rest verbatim",
			template: "a {b",
			args:     []any{1},
			want:     "a {b",
		},
		{
			name:     "no placeholders",
			template: "plain",
			args:     []any{1, 2},
			want:     "plain",
		},
		{
			name:     "named used twice",
			template: "{n}{n}",
			args:     []any{format.Farg("n", 7)},
			want:     "77",
		},
		{
			name:     "positional order",
			template: "{}-{}-{}",
			args:     []any{"a", "b", "c"},
			want:     "a-b-c",
		},
		{
			name:     "doubled close brace",
			template: "x}}y",
			want:     "x}y",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := format.Fstring(tt.template, tt.args...); got != tt.want {
				t.Errorf("Fstring(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestFstringDisplaysHandles(t *testing.T) {
	// Text keeps raw characters; other kinds render canonically.
	text := testRT.Text("raw")
	list := testRT.NewList(1, 2)

	got := format.Fstring("{} {}", text, list.Handle)
	if got != "raw [1, 2]" {
		t.Errorf("handle display = %q", got)
	}
}

func TestFstringNamedHandle(t *testing.T) {
	got := format.Fstring("v={v}", format.Farg("v", testRT.Int(3)))
	if got != "v=3" {
		t.Errorf("named handle = %q", got)
	}
}
