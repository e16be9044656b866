package star_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/caffeineduck/staru/star"
)

func TestDictRoundTrip(t *testing.T) {
	d := testRT.NewDict()

	if !d.Add("k", "v") {
		t.Fatal("add failed")
	}
	got := d.Get("k")
	if !got.Equal(testRT.Text("v")) {
		t.Errorf("get k = %s", star.Repr(got))
	}

	popped := d.Pop("k")
	if text, _ := popped.AsText(); text != "v" {
		t.Errorf("pop = %q", text)
	}
	if d.Contains("k") {
		t.Error("key survived pop")
	}
	if !d.Pop("k").IsNull() {
		t.Error("second pop returned a value")
	}
}

func TestDictLookup(t *testing.T) {
	d := testRT.NewDict()
	d.Add("present", testRT.None())

	// Lookup tells a binding to None apart from a genuine miss.
	h, ok := d.Lookup("present")
	if !ok || !h.IsNone() {
		t.Error("lookup of None binding misreported")
	}
	if _, ok := d.Lookup("absent"); ok {
		t.Error("lookup of absent key reported found")
	}
	if !d.Get("absent").IsNull() {
		t.Error("get of absent key returned a value")
	}
}

func TestDictViews(t *testing.T) {
	d := testRT.NewDict()
	d.Add("a", 1)
	d.Add("b", 2)

	var keys []string
	kl := d.Keys()
	for i := 0; i < kl.Len(); i++ {
		k, _ := kl.At(i).AsText()
		keys = append(keys, k)
	}
	// Insertion order is the runtime's iteration order for mappings.
	if diff := cmp.Diff([]string{"a", "b"}, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	if got := star.Repr(d.Values().Handle); got != "[1, 2]" {
		t.Errorf("values: %s", got)
	}
	if got := star.Repr(d.Items().Handle); got != `[("a", 1), ("b", 2)]` {
		t.Errorf("items: %s", got)
	}
}

func TestDictUpdateMerge(t *testing.T) {
	d := testRT.NewDict()
	d.Add("a", 1)

	d.Update(map[string]any{"b": 2})
	if !d.Contains("b") {
		t.Error("update did not merge native map")
	}

	other := testRT.NewDict()
	other.Add("a", 9)
	merged := d.Merge(other)
	if got, _ := merged.Get("a").AsInt(); got != 9 {
		t.Errorf("merged a = %d, want 9 (right side wins)", got)
	}
	if got, _ := d.Get("a").AsInt(); got != 1 {
		t.Errorf("merge mutated its receiver: a = %d", got)
	}
}

func TestDictItemProxy(t *testing.T) {
	d := testRT.NewDict()

	it := d.At("k")
	// Nothing is committed until the proxy is used.
	if d.Contains("k") {
		t.Fatal("proxy creation wrote a binding")
	}

	// Reading resolves as a lookup, possibly a miss.
	if !it.Get().IsNull() {
		t.Error("reading an unbound proxy returned a value")
	}

	// Writing resolves as a store.
	if !it.Set(42) {
		t.Fatal("proxy store failed")
	}
	if got, _ := d.Get("k").AsInt(); got != 42 {
		t.Errorf("stored value = %d, want 42", got)
	}
	if got, _ := it.Get().AsInt(); got != 42 {
		t.Errorf("proxy read = %d, want 42", got)
	}
}

func TestDictClear(t *testing.T) {
	d := testRT.NewDict(map[string]any{"a": 1, "b": 2})
	d.Clear()
	if d.Len() != 0 {
		t.Errorf("after clear len = %d", d.Len())
	}
}

func TestDictCoercion(t *testing.T) {
	d := star.AsDict(testRT.NewList(1).Handle)
	if d.Len() != 0 {
		t.Errorf("coerced dict len = %d", d.Len())
	}
	if !d.Add("k", 1) {
		t.Error("coerced dict not usable")
	}
}
