package star_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/caffeineduck/staru/star"
)

// Shared runtime for tests that only need an active interpreter.
// Ownership-accounting tests create their own.
var testRT *star.Runtime

func TestMain(m *testing.M) {
	var err error
	testRT, err = star.New(star.WithDiagnostics(io.Discard))
	if err != nil {
		panic("failed to create shared runtime: " + err.Error())
	}

	code := m.Run()

	testRT.Close()
	os.Exit(code)
}

func TestCloseIdempotent(t *testing.T) {
	rt, err := star.New(star.WithDiagnostics(io.Discard))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := rt.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := rt.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if rt.Active() {
		t.Error("runtime still active after Close")
	}
}

func TestDefaultLifecycleIdempotent(t *testing.T) {
	rt1, err := star.Init(star.WithDiagnostics(io.Discard))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rt2, err := star.Init()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt1 != rt2 {
		t.Error("second Init replaced the active default runtime")
	}

	star.Finalize()
	star.Finalize() // must not fail
	if star.Default() != nil {
		t.Error("default runtime survived Finalize")
	}
}

func TestUseAfterClose(t *testing.T) {
	rt, err := star.New(star.WithDiagnostics(io.Discard))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rt.Close()

	if err := rt.ExecErr("x = 1"); err == nil {
		t.Error("ExecErr succeeded on a finalized runtime")
	}
	if h := rt.Eval("1 + 1"); !h.IsNull() {
		t.Error("Eval on a finalized runtime returned a live handle")
	}
}

func TestLiveAccounting(t *testing.T) {
	rt, err := star.New(star.WithDiagnostics(io.Discard))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rt.Close()

	h := rt.Int(7)
	if got := rt.Live(); got != 1 {
		t.Fatalf("after create: Live() = %d, want 1", got)
	}

	clone := h.Clone()
	if got := rt.Live(); got != 2 {
		t.Fatalf("after clone: Live() = %d, want 2", got)
	}

	h.Close()
	if h.Value() == nil {
		// The clone still owns a reference; the value must survive.
		t.Log("original view released")
	}
	if clone.Value() == nil {
		t.Fatal("value dropped while a clone was still open")
	}

	clone.Close()
	if got := rt.Live(); got != 0 {
		t.Fatalf("after both closed: Live() = %d, want 0", got)
	}
	if clone.Value() != nil {
		t.Error("cell kept its value after the last release")
	}

	h.Close() // double close is a no-op
	if got := rt.Live(); got != 0 {
		t.Errorf("after double close: Live() = %d, want 0", got)
	}
}

func TestWithGlobal(t *testing.T) {
	rt, err := star.New(
		star.WithDiagnostics(io.Discard),
		star.WithGlobal("greeting", "hello"),
		star.WithGlobal("retries", 3),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rt.Close()

	h := rt.Eval("greeting + ' x'")
	if got, _ := h.AsText(); got != "hello x" {
		t.Errorf("greeting = %q, want %q", got, "hello x")
	}
	n := rt.Eval("retries + 1")
	if got, _ := n.AsInt(); got != 4 {
		t.Errorf("retries + 1 = %d, want 4", got)
	}
}

func TestWithBuiltin(t *testing.T) {
	rt, err := star.New(
		star.WithDiagnostics(io.Discard),
		star.WithBuiltin("shout", func(args ...star.Handle) (any, error) {
			s := star.AsStr(args[0])
			defer s.Close()
			return strings.ToUpper(s.Text()), nil
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rt.Close()

	h := rt.Eval(`shout("quiet")`)
	if got, _ := h.AsText(); got != "QUIET" {
		t.Errorf("shout = %q, want %q", got, "QUIET")
	}
}

func TestWithPrint(t *testing.T) {
	var lines []string
	rt, err := star.New(
		star.WithDiagnostics(io.Discard),
		star.WithPrint(func(msg string) { lines = append(lines, msg) }),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rt.Close()

	rt.Exec(`print("one"); print("two")`)
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Errorf("captured prints = %v", lines)
	}
}

func TestDiagnosticsStream(t *testing.T) {
	var buf strings.Builder
	rt, err := star.New(star.WithDiagnostics(&buf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rt.Close()

	rt.Eval("1 / ")
	if buf.Len() == 0 {
		t.Error("failed eval produced no diagnostic")
	}
}
