package jsontree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var elementCmp = cmp.AllowUnexported(Element{})

func TestParsePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
		want Path
	}{
		{name: "empty", expr: "", want: nil},
		{name: "root", expr: "$", want: nil},
		{name: "bare name", expr: "store", want: Path{Key("store")}},
		{name: "dotted", expr: "store.book", want: Path{Key("store"), Key("book")}},
		{name: "rooted", expr: "$.store.book[0].title", want: Path{Key("store"), Key("book"), Index(0), Key("title")}},
		{name: "leading index", expr: "[3].id", want: Path{Index(3), Key("id")}},
		{name: "leading dot", expr: ".a", want: Path{Key("a")}},
		{name: "nested indices", expr: "$[0][12]", want: Path{Index(0), Index(12)}},
		{name: "single quoted", expr: "$['first name']", want: Path{Key("first name")}},
		{name: "double quoted", expr: `$["a.b"]`, want: Path{Key("a.b")}},
		{name: "escaped quote", expr: `$['it\'s']`, want: Path{Key("it's")}},
		{name: "empty key", expr: "$['']", want: Path{Key("")}},
		{name: "dash and underscore", expr: "x-y.z_w", want: Path{Key("x-y"), Key("z_w")}},
		{name: "spaced index", expr: "a[ 1 ]", want: Path{Key("a"), Index(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePath(tt.expr)
			if err != nil {
				t.Fatalf("ParsePath(%q) error = %v", tt.expr, err)
			}
			if diff := cmp.Diff(tt.want, got, elementCmp); diff != "" {
				t.Fatalf("ParsePath(%q) mismatch (-want +got):\n%s", tt.expr, diff)
			}
		})
	}
}

func TestParsePath_Errors(t *testing.T) {
	t.Parallel()

	tests := []string{
		"a.",
		"a..b",
		"a[",
		"a[]",
		"a[x]",
		"a[-1]",
		"a['x'",
		"a['x'b]",
		`a['x\`,
		"$x",
		"a b",
		"a.b c",
	}

	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			t.Parallel()

			if _, err := ParsePath(expr); !errors.Is(err, ErrSyntax) {
				t.Fatalf("ParsePath(%q) error = %v, want %v", expr, err, ErrSyntax)
			}
		})
	}
}

func TestPath_StringRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path Path
		want string
	}{
		{path: nil, want: "$"},
		{path: Path{Key("a"), Index(0), Key("b")}, want: "$.a[0].b"},
		{path: Path{Key("first name")}, want: "$['first name']"},
		{path: Path{Key(`it's \ here`)}, want: `$['it\'s \\ here']`},
		{path: Path{Key("")}, want: "$['']"},
	}

	for _, tt := range tests {
		got := tt.path.String()
		if got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
			continue
		}

		parsed, err := ParsePath(got)
		if err != nil {
			t.Errorf("ParsePath(%q) error = %v", got, err)
			continue
		}
		if diff := cmp.Diff(tt.path, parsed, elementCmp); diff != "" {
			t.Errorf("ParsePath(String()) mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestPath_Validate(t *testing.T) {
	t.Parallel()

	if err := (Path{Key("a"), Index(0)}).Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}

	for _, p := range []Path{{Element{}}, {Key("a"), Index(-2)}} {
		if err := p.Validate(); !errors.Is(err, ErrPathElement) {
			t.Errorf("Validate(%s) error = %v, want %v", p, err, ErrPathElement)
		}
	}
}

func TestElement_Accessors(t *testing.T) {
	t.Parallel()

	if name, ok := Key("k").Key(); !ok || name != "k" {
		t.Errorf("Key(\"k\").Key() = %q, %t, want \"k\", true", name, ok)
	}
	if _, ok := Key("k").Index(); ok {
		t.Error("Key(\"k\").Index() reported an index")
	}
	if i, ok := Index(4).Index(); !ok || i != 4 {
		t.Errorf("Index(4).Index() = %d, %t, want 4, true", i, ok)
	}
	if _, ok := (Element{}).Key(); ok {
		t.Error("zero Element reported a key")
	}
}

func TestMustParsePath_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("MustParsePath(\"a[\") did not panic")
		}
	}()
	MustParsePath("a[")
}
