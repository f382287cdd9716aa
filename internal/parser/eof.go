package parser

import (
	"errors"
	"strings"

	"github.com/HicaroD/Otag/internal/diagnostics"
	"github.com/HicaroD/Otag/internal/lexer/token"
)

// IsUnexpectedEOF reports whether err was caused by the source ending in
// the middle of a statement or a string.
func IsUnexpectedEOF(err error) bool {
	var diag *diagnostics.Diag
	if !errors.As(err, &diag) || diag.Kind != diagnostics.SYNTAX {
		return false
	}
	if strings.HasSuffix(diag.Message, token.EOF.String()+" bulundu") {
		return true
	}
	return strings.HasPrefix(diag.Message, "sonlandırılmamış metin")
}
