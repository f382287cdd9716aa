package parser

import (
	"github.com/HicaroD/Otag/internal/ast"
	"github.com/HicaroD/Otag/internal/diagnostics"
	"github.com/HicaroD/Otag/internal/lexer"
)

const defaultFilename = "test.otağ"

func FakeLoc(filename string) *ast.Loc {
	if filename == "" {
		filename = defaultFilename
	}
	return ast.LocFromName(filename)
}

// ParseSource parses src under filename with a fresh collector.
func ParseSource(filename, src string) (*ast.Program, error) {
	collector := diagnostics.New()
	p := New(collector)
	return p.ParseFile(FakeLoc(filename), []byte(src))
}

func ParseExprFrom(expr, filename string) (*ast.Node, error) {
	collector := diagnostics.New()

	lex := lexer.New(FakeLoc(filename), []byte(expr), collector)
	p := NewWithLex(lex, collector)

	return p.parseExpr()
}

func ParseStmtFrom(stmt, filename string) (*ast.Node, error) {
	collector := diagnostics.New()

	lex := lexer.New(FakeLoc(filename), []byte(stmt), collector)
	p := NewWithLex(lex, collector)

	return p.parseStmt()
}
