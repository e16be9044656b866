// Package bench benchmarks the hot paths of the staru wrapper.
//
// Run with: go test -bench=. ./bench/
package bench

import (
	"io"
	"testing"

	"github.com/caffeineduck/staru/format"
	"github.com/caffeineduck/staru/star"
)

var benchRT *star.Runtime

func TestMain(m *testing.M) {
	var err error
	benchRT, err = star.New(star.WithDiagnostics(io.Discard))
	if err != nil {
		panic("failed to create benchmark runtime: " + err.Error())
	}
	m.Run()
	benchRT.Close()
}

func BenchmarkHandleClone(b *testing.B) {
	h := benchRT.Int(42)
	defer h.Close()
	for i := 0; i < b.N; i++ {
		c := h.Clone()
		c.Close()
	}
}

func BenchmarkListAppend(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := benchRT.NewList()
		for j := 0; j < 100; j++ {
			l.Append(j)
		}
		l.Close()
	}
}

func BenchmarkDictAddGet(b *testing.B) {
	d := benchRT.NewDict()
	defer d.Close()
	d.Add("k", 1)
	for i := 0; i < b.N; i++ {
		d.Add("k", i)
		v := d.Get("k")
		v.Close()
	}
}

func BenchmarkEval(b *testing.B) {
	for i := 0; i < b.N; i++ {
		h := benchRT.Eval("1 + 2 * 3")
		h.Close()
	}
}

func BenchmarkCall(b *testing.B) {
	benchRT.Exec("def add(a, b): return a + b")
	f := benchRT.Eval("add")
	defer f.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res := f.Call(1, 2)
		res.Close()
	}
}

func BenchmarkPretty(b *testing.B) {
	h := benchRT.Eval(`{"a": [1, 2, 3], "b": {"c": (4, 5)}}`)
	defer h.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		star.Pretty(h)
	}
}

func BenchmarkJSONDumps(b *testing.B) {
	h := benchRT.Eval(`{"a": [1, 2, 3], "b": "text"}`)
	defer h.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchRT.JSONDumps(h, 0)
	}
}

func BenchmarkFstring(b *testing.B) {
	for i := 0; i < b.N; i++ {
		format.Fstring("{} and {name}", i, format.Farg("name", "x"))
	}
}
