package diagnostics

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/HicaroD/Otag/internal/lexer/token"
)

func TestDiagFormat(t *testing.T) {
	pos := token.NewPosition("main.otağ", 3, 7)

	tests := []struct {
		name     string
		diag     *Diag
		expected string
	}{
		{
			name:     "syntax",
			diag:     NewSyntax(pos, "beklenmeyen '%s'", "son"),
			expected: "\nSözdizimi Hatası: beklenmeyen 'son'\n  --> main.otağ:3:7\n",
		},
		{
			name:     "semantic",
			diag:     NewSemantic(pos, "Değişken 'x' zaten tanımlanmış"),
			expected: "\nAnlamsal Hata: Değişken 'x' zaten tanımlanmış\n  --> main.otağ:3:7\n",
		},
		{
			name:     "runtime",
			diag:     NewRuntime(token.UnknownPos(), "Tanımlanmamış değişken: x"),
			expected: "\nÇalışma Zamanı Hatası: Tanımlanmamış değişken: x\n  --> <unknown>:0:0\n",
		},
		{
			name:     "not implemented",
			diag:     NewNotImplemented(pos, "For döngüsü henüz uygulanmadı"),
			expected: "\nUygulanmamış İşlem: For döngüsü henüz uygulanmadı\n  --> main.otağ:3:7\n",
		},
		{
			name: "suggestions",
			diag: NewSyntax(pos, "Bilinmeyen tür 'sayı'").WithSuggestions("tamsayı", "metin"),
			expected: "\nSözdizimi Hatası: Bilinmeyen tür 'sayı'\n  --> main.otağ:3:7\n" +
				"\nÖneriler:\n  • tamsayı\n  • metin\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.diag.Error(); got != test.expected {
				t.Errorf("expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestCollector(t *testing.T) {
	var out bytes.Buffer
	collector := NewWithOutput(&out)

	if collector.HasErrors() || collector.Last() != nil {
		t.Fatal("expected an empty collector")
	}

	diag := NewRuntime(token.NewPosition("a.otağ", 1, 1), "ilk")
	err := collector.Report(diag)
	if err != diag {
		t.Errorf("expected Report to return the reported diag")
	}
	collector.Report(NewRuntime(token.NewPosition("a.otağ", 2, 1), "ikinci"))

	if len(collector.Diags) != 2 {
		t.Fatalf("expected 2 diags, got %d", len(collector.Diags))
	}
	if collector.Last().Message != "ikinci" {
		t.Errorf("expected last diag to be 'ikinci', got %s", collector.Last().Message)
	}
	if out.String() != diag.Error()+collector.Last().Error() {
		t.Errorf("expected both diags to be printed, got %q", out.String())
	}

	collector.Reset()
	if collector.HasErrors() {
		t.Error("expected Reset to clear diagnostics")
	}
}

func TestSilentCollector(t *testing.T) {
	collector := New()
	collector.Report(NewSyntax(token.UnknownPos(), "sessiz"))
	if !collector.HasErrors() {
		t.Error("expected the diag to be saved")
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("çalıştırma: %w", NewSemantic(token.UnknownPos(), "x"))

	kind, ok := KindOf(wrapped)
	if !ok || kind != SEMANTIC {
		t.Errorf("expected SEMANTIC, got %s (ok=%v)", kind, ok)
	}
	if !Is(wrapped, SEMANTIC) || Is(wrapped, RUNTIME) {
		t.Error("Is disagrees with KindOf")
	}
	if _, ok := KindOf(errors.New("düz hata")); ok {
		t.Error("expected plain errors to carry no kind")
	}
}

func TestConstructorKinds(t *testing.T) {
	pos := token.NewPosition("main.otağ", 1, 1)
	tests := []struct {
		diag     *Diag
		expected Kind
	}{
		{NewSyntax(pos, "a"), SYNTAX},
		{NewSemantic(pos, "b"), SEMANTIC},
		{NewRuntime(pos, "c"), RUNTIME},
		{NewNotImplemented(pos, "d"), NOT_IMPLEMENTED},
	}

	for _, test := range tests {
		t.Run(test.expected.String(), func(t *testing.T) {
			if !Is(test.diag, test.expected) {
				t.Errorf("expected kind %s, got %s", test.expected, test.diag.Kind)
			}
			if test.diag.Pos != pos {
				t.Errorf("expected position %s, got %s", pos, test.diag.Pos)
			}
		})
	}
}
