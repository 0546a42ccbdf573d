package jsontree

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleYAML = `name: demo
items:
  - 1
  - two
nested:
  z: true
  a: null
`

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	root, err := DecodeYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("DecodeYAML() error = %v", err)
	}

	if got := root.Keys(); !slices.Equal(got, []string{"name", "items", "nested"}) {
		t.Fatalf("Keys() = %v, want [name items nested]", got)
	}

	nested, ok, _ := root.ReadPath(Key("nested"))
	if !ok {
		t.Fatal("nested not found")
	}
	if got := nested.Keys(); !slices.Equal(got, []string{"z", "a"}) {
		t.Fatalf("nested Keys() = %v, want [z a]", got)
	}

	first, ok, _ := root.ReadPath(Key("items"), Index(0))
	if !ok || fmt.Sprint(first.Value()) != "1" {
		t.Fatalf("items[0] = %v, %t, want 1", first, ok)
	}

	a, ok, _ := root.ReadPath(Key("nested"), Key("a"))
	if !ok || !a.IsNull() {
		t.Fatalf("nested.a = %v, %t, want null", a, ok)
	}
}

func TestEncodeYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	root, err := DecodeYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("DecodeYAML() error = %v", err)
	}

	out, err := EncodeYAML(root)
	if err != nil {
		t.Fatalf("EncodeYAML() error = %v", err)
	}

	again, err := DecodeYAML(out)
	if err != nil {
		t.Fatalf("DecodeYAML(EncodeYAML()) error = %v\n%s", err, out)
	}

	if diff := cmp.Diff(root.Any(), again.Any()); diff != "" {
		t.Fatalf("YAML round trip mismatch (-want +got):\n%s", diff)
	}
	if !slices.Equal(again.Keys(), root.Keys()) {
		t.Fatalf("round trip key order = %v, want %v", again.Keys(), root.Keys())
	}
}

func TestEncodeYAML_FromJSON(t *testing.T) {
	t.Parallel()

	root := mustDecode(t, `{"count":3,"ratio":0.5,"tags":["a"]}`)

	out, err := EncodeYAML(root)
	if err != nil {
		t.Fatalf("EncodeYAML() error = %v", err)
	}

	text := string(out)
	for _, want := range []string{"count: 3\n", "ratio: 0.5\n"} {
		if !strings.Contains(text, want) {
			t.Errorf("EncodeYAML() = %q, want it to contain %q", text, want)
		}
	}
	if strings.Index(text, "count") > strings.Index(text, "tags") {
		t.Errorf("EncodeYAML() = %q, want keys in insertion order", text)
	}
}

func TestDecodeYAML_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := DecodeYAML([]byte("a: [1, 2")); !errors.Is(err, ErrMalformed) {
		t.Fatalf("DecodeYAML() error = %v, want %v", err, ErrMalformed)
	}
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	root, err := FromAny(map[string]any{
		"b": []any{int64(1), "x", nil},
		"a": map[string]any{"k": true},
	})
	if err != nil {
		t.Fatalf("FromAny() error = %v", err)
	}

	if got := root.Keys(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("Keys() = %v, want sorted [a b]", got)
	}
	if got := mustJSON(t, root); got != `{"a":{"k":true},"b":[1,"x",null]}` {
		t.Fatalf("FromAny() = %s", got)
	}
}

func TestFromAny_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := FromAny(map[string]any{"f": func() {}})
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("FromAny() error = %v, want %v", err, ErrUnsupported)
	}
	if !strings.Contains(err.Error(), "f:") {
		t.Fatalf("FromAny() error = %q, want the failing key", err)
	}
}

func TestFromAny_ClonesNode(t *testing.T) {
	t.Parallel()

	orig := NewArray(NewScalar(1))
	got, err := FromAny(orig)
	if err != nil {
		t.Fatalf("FromAny() error = %v", err)
	}
	if got == orig || !Equal(got, orig) {
		t.Fatal("FromAny(*Node) should return an equal copy")
	}
}
