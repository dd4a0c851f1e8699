package astdump

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const validTest = "def test_add():\n    assert add(1, 2) == 3\n"

func TestDumpDeterministic(t *testing.T) {
	first, err := Dump(validTest)
	if err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		again, err := Dump(validTest)
		if err != nil {
			t.Fatalf("Dump failed on repeat %d: %v", i, err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("dump not deterministic (-first +repeat):\n%s", diff)
		}
	}
}

func TestDumpStructure(t *testing.T) {
	dump, err := Dump(validTest)
	if err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	for _, want := range []string{
		"module",
		"function_definition",
		`name: identifier "test_add"`,
		"assert_statement",
		`integer "3"`,
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump missing %q:\n%s", want, dump)
		}
	}
}

func TestDumpFieldLabels(t *testing.T) {
	dump, err := Dump("def test_query(db):\n    result = db.query(\"SELECT *\")\n    assert result is not None\n")
	if err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	if !strings.Contains(dump, "parameters: parameters") {
		t.Errorf("expected field label for parameters:\n%s", dump)
	}
	if !strings.Contains(dump, "SELECT *") {
		t.Errorf("expected string literal preserved:\n%s", dump)
	}
}

func TestDumpInvalidSource(t *testing.T) {
	cases := []string{
		"def test(:",
		"def test_add(\n    assert",
		"class :",
	}
	for _, src := range cases {
		dump, err := Dump(src)
		if err == nil {
			t.Errorf("Dump(%q) succeeded, want parse error", src)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Dump(%q) error = %v, want *ParseError", src, err)
			continue
		}
		if dump != "" {
			t.Errorf("Dump(%q) returned partial dump with error", src)
		}
		if perr.Line < 1 {
			t.Errorf("Dump(%q) reported line %d, want >= 1", src, perr.Line)
		}
	}
}

func TestDumpEmptySource(t *testing.T) {
	dump, err := Dump("")
	if err != nil {
		t.Fatalf("Dump(\"\") failed: %v", err)
	}
	if !strings.HasPrefix(dump, "module") {
		t.Errorf("empty source should dump a bare module, got %q", dump)
	}
}
