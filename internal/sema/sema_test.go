package sema

import (
	"strings"
	"testing"

	"github.com/HicaroD/Otag/internal/diagnostics"
	"github.com/HicaroD/Otag/internal/parser"
)

func parseAndCheck(t *testing.T, src string) *diagnostics.Collector {
	collector := diagnostics.New()

	program, err := parser.New(collector).ParseFile(parser.FakeLoc(""), []byte(src))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	_ = New(collector).Check(program)
	return collector
}

func containsDiag(diags []diagnostics.Diag, substr string) bool {
	for _, d := range diags {
		if strings.Contains(d.Message, substr) {
			return true
		}
	}
	return false
}

func TestDeclarations(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		hasError bool
		message  string
	}{
		{
			name:     "single declaration",
			src:      "x'ı tamsayı olarak tanımla",
			hasError: false,
		},
		{
			name:     "declaration then assignment",
			src:      "x'ı tamsayı olarak tanımla\nx = 5",
			hasError: false,
		},
		{
			name:     "duplicate declaration",
			src:      "x'ı tamsayı olarak tanımla\nx'ı metin olarak tanımla",
			hasError: true,
			message:  "Değişken 'x' zaten tanımlanmış",
		},
		{
			name:     "assignment to undeclared variable",
			src:      "y = 3",
			hasError: true,
			message:  "Tanımlanmamış değişken: y",
		},
		{
			name:     "assignment inside if is not checked",
			src:      "eğer doğru ise\n  z = 3\nson",
			hasError: false,
		},
		{
			name:     "function body is not checked",
			src:      "fonksiyon f() -> tamsayı {\n  q = 1\n  return q\n}",
			hasError: false,
		},
		{
			name:     "output of undeclared variable is deferred",
			src:      "söyle bilinmeyen",
			hasError: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			collector := parseAndCheck(t, test.src)
			if test.hasError && len(collector.Diags) == 0 {
				t.Fatalf("expected error, got none")
			}
			if !test.hasError && len(collector.Diags) > 0 {
				t.Fatalf("unexpected errors: %v", collector.Diags)
			}
			if test.hasError && !containsDiag(collector.Diags, test.message) {
				t.Errorf("expected diagnostic containing %q, got %v", test.message, collector.Diags)
			}
		})
	}
}

func TestFunctionAndStructRegistries(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		hasError bool
		message  string
	}{
		{
			name:     "distinct functions",
			src:      "fonksiyon a() -> tamsayı { return 1 }\nfonksiyon b() -> tamsayı { return 2 }",
			hasError: false,
		},
		{
			name:     "duplicate function",
			src:      "fonksiyon a() -> tamsayı { return 1 }\nfonksiyon a() -> tamsayı { return 2 }",
			hasError: true,
			message:  "Fonksiyon 'a' zaten tanımlanmış",
		},
		{
			name:     "duplicate struct",
			src:      "nokta { x: tamsayı }\nnokta { y: tamsayı }",
			hasError: true,
			message:  "Yapı 'nokta' zaten tanımlanmış",
		},
		{
			name:     "struct and function may share a name",
			src:      "nokta { x: tamsayı }\nfonksiyon nokta() -> tamsayı { return 1 }",
			hasError: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			collector := parseAndCheck(t, test.src)
			if test.hasError != (len(collector.Diags) > 0) {
				t.Fatalf("expected hasError=%v, got %v", test.hasError, collector.Diags)
			}
			if test.hasError && !containsDiag(collector.Diags, test.message) {
				t.Errorf("expected diagnostic containing %q, got %v", test.message, collector.Diags)
			}
		})
	}
}

func TestSemanticErrorKindAndPosition(t *testing.T) {
	collector := diagnostics.New()
	program, err := parser.ParseSource("main.otağ", "x'ı tamsayı olarak tanımla\n\nx'ı tamsayı olarak tanımla")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	err = New(collector).Check(program)
	if !diagnostics.Is(err, diagnostics.SEMANTIC) {
		t.Fatalf("expected semantic error, got %v", err)
	}

	diag := collector.Last()
	if diag.Pos.Line != 3 || diag.Pos.Column != 1 {
		t.Errorf("expected position 3:1, got %s", diag.Pos)
	}
}
