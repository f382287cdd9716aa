package diagnostics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HicaroD/Otag/internal/lexer/token"
)

type Kind int

const (
	SYNTAX Kind = iota
	SEMANTIC
	RUNTIME
	NOT_IMPLEMENTED
)

func (kind Kind) String() string {
	switch kind {
	case SYNTAX:
		return "Sözdizimi Hatası"
	case SEMANTIC:
		return "Anlamsal Hata"
	case RUNTIME:
		return "Çalışma Zamanı Hatası"
	case NOT_IMPLEMENTED:
		return "Uygulanmamış İşlem"
	}
	return "Hata"
}

type Diag struct {
	Kind        Kind
	Message     string
	Pos         token.Pos
	Suggestions []string
}

func newDiag(kind Kind, pos token.Pos, format string, args ...any) *Diag {
	return &Diag{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

func NewSyntax(pos token.Pos, format string, args ...any) *Diag {
	return newDiag(SYNTAX, pos, format, args...)
}

func NewSemantic(pos token.Pos, format string, args ...any) *Diag {
	return newDiag(SEMANTIC, pos, format, args...)
}

func NewRuntime(pos token.Pos, format string, args ...any) *Diag {
	return newDiag(RUNTIME, pos, format, args...)
}

func NewNotImplemented(pos token.Pos, format string, args ...any) *Diag {
	return newDiag(NOT_IMPLEMENTED, pos, format, args...)
}

func (diag *Diag) WithSuggestions(suggestions ...string) *Diag {
	diag.Suggestions = append(diag.Suggestions, suggestions...)
	return diag
}

// Error renders the diagnostic the way it is shown to the user:
//
//	Sözdizimi Hatası: beklenmeyen 'son'
//	  --> main.otağ:3:1
//
//	Öneriler:
//	  • ...
func (diag Diag) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s: %s\n", diag.Kind, diag.Message)
	fmt.Fprintf(&b, "  --> %s\n", diag.Pos)
	if len(diag.Suggestions) > 0 {
		b.WriteString("\nÖneriler:\n")
		for _, suggestion := range diag.Suggestions {
			fmt.Fprintf(&b, "  • %s\n", suggestion)
		}
	}
	return b.String()
}

// KindOf reports the diagnostic kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var diag *Diag
	if errors.As(err, &diag) {
		return diag.Kind, true
	}
	return 0, false
}

func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
