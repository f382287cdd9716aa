package parser

import (
	"strconv"

	"github.com/HicaroD/Otag/internal/ast"
	"github.com/HicaroD/Otag/internal/diagnostics"
	"github.com/HicaroD/Otag/internal/lexer/token"
)

func canStartExpr(kind token.Kind) bool {
	return kind == token.ID || kind == token.OPEN_BRACKET || kind.IsLiteral()
}

// parseExpr reads term { op term } and folds it strictly from the left:
// there is no precedence between operators.
func (p *Parser) parseExpr() (*ast.Node, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		next := p.lex.Peek()
		if !next.Kind.IsBinaryOp() {
			break
		}
		p.lex.Skip()

		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		lhs = ast.NewNode(ast.KIND_BINARY_EXPR, lhs.Pos, &ast.BinaryExpr{Left: lhs, Op: next.Kind, Right: rhs})
	}
	return lhs, nil
}

// term = primary { "[" expr "]" | "." ID }
func (p *Parser) parseTerm() (*ast.Node, error) {
	term, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		next := p.lex.Peek()
		switch next.Kind {
		case token.OPEN_BRACKET:
			p.lex.Skip() // [
			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			closeBracket, ok := p.expect(token.CLOSE_BRACKET)
			if !ok {
				return nil, p.unexpected(closeBracket, "']'")
			}
			term = ast.NewNode(ast.KIND_INDEX_EXPR, term.Pos, &ast.IndexExpr{Array: term, Index: index})
		case token.DOT:
			p.lex.Skip() // .
			field, ok := p.expect(token.ID)
			if !ok {
				return nil, p.unexpected(field, "alan adı")
			}
			term = ast.NewNode(ast.KIND_FIELD_ACCESS, term.Pos, &ast.FieldAccess{Left: term, Field: field})
		default:
			return term, nil
		}
	}
}

func (p *Parser) parsePrimary() (*ast.Node, error) {
	tok := p.lex.Peek()

	switch tok.Kind {
	case token.ID:
		switch p.lex.Peek1().Kind {
		case token.OPEN_PAREN:
			return p.parseFnCall()
		case token.OPEN_CURLY:
			return p.parseStructLiteral()
		}
		p.lex.Skip()
		return ast.NewNode(ast.KIND_ID_EXPR, tok.Pos, &ast.IdExpr{Name: tok}), nil
	case token.OPEN_BRACKET:
		return p.parseArrayLiteral()
	case token.INTEGER_LITERAL:
		p.lex.Skip()
		if _, err := strconv.ParseInt(string(tok.Lexeme), 10, 32); err != nil {
			return nil, p.collector.Report(
				diagnostics.NewSyntax(tok.Pos, "geçersiz tamsayı değeri '%s'", tok.Lexeme).
					WithSuggestions("tamsayılar -2147483648 ile 2147483647 arasında olmalıdır"),
			)
		}
		return p.literal(tok), nil
	case token.FLOAT_LITERAL:
		p.lex.Skip()
		if _, err := strconv.ParseFloat(string(tok.Lexeme), 64); err != nil {
			return nil, p.collector.Report(diagnostics.NewSyntax(tok.Pos, "geçersiz ondalıklı değer '%s'", tok.Lexeme))
		}
		return p.literal(tok), nil
	case token.STRING_LITERAL, token.TRUE_BOOL_LITERAL, token.FALSE_BOOL_LITERAL:
		p.lex.Skip()
		return p.literal(tok), nil
	default:
		return nil, p.unexpected(tok, "değer")
	}
}

func (p *Parser) literal(tok *token.Token) *ast.Node {
	return ast.NewNode(ast.KIND_LITERAL_EXPR, tok.Pos, &ast.LiteralExpr{Kind: tok.Kind, Value: tok.Lexeme})
}

func (p *Parser) parseFnCall() (*ast.Node, error) {
	name, ok := p.expect(token.ID)
	if !ok {
		return nil, p.unexpected(name, "fonksiyon adı")
	}

	openParen, ok := p.expect(token.OPEN_PAREN)
	if !ok {
		return nil, p.unexpected(openParen, "'('")
	}

	args, err := p.parseExprList(token.CLOSE_PAREN)
	if err != nil {
		return nil, err
	}

	return ast.NewNode(ast.KIND_FN_CALL, name.Pos, &ast.FnCall{Name: name, Args: args}), nil
}

func (p *Parser) parseArrayLiteral() (*ast.Node, error) {
	openBracket, ok := p.expect(token.OPEN_BRACKET)
	if !ok {
		return nil, p.unexpected(openBracket, "'['")
	}

	elems, err := p.parseExprList(token.CLOSE_BRACKET)
	if err != nil {
		return nil, err
	}

	return ast.NewNode(ast.KIND_ARRAY_LITERAL_EXPR, openBracket.Pos, &ast.ArrayLiteralExpr{Elems: elems}), nil
}

func (p *Parser) parseStructLiteral() (*ast.Node, error) {
	name, ok := p.expect(token.ID)
	if !ok {
		return nil, p.unexpected(name, "yapı adı")
	}

	openCurly, ok := p.expect(token.OPEN_CURLY)
	if !ok {
		return nil, p.unexpected(openCurly, "'{'")
	}

	var values []*ast.StructFieldValue
	for !p.lex.NextIs(token.CLOSE_CURLY) {
		field, ok := p.expect(token.ID)
		if !ok {
			return nil, p.unexpected(field, "alan adı veya '}'")
		}

		colon, ok := p.expect(token.COLON)
		if !ok {
			return nil, p.unexpected(colon, "':'")
		}

		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		values = append(values, &ast.StructFieldValue{Name: field, Value: value})

		if p.lex.NextIs(token.COMMA) {
			p.lex.Skip() // ,
			continue
		}
		if !p.lex.NextIs(token.CLOSE_CURLY) {
			return nil, p.unexpected(p.lex.Peek(), "',' veya '}'")
		}
	}
	p.lex.Skip() // }

	return ast.NewNode(ast.KIND_STRUCT_LITERAL_EXPR, name.Pos, &ast.StructLiteralExpr{Name: name, Values: values}), nil
}

// parseExprList reads a comma separated list of expressions and consumes
// the closing token.
func (p *Parser) parseExprList(end token.Kind) ([]*ast.Node, error) {
	var exprs []*ast.Node

	for {
		if p.lex.NextIs(end) {
			p.lex.Skip()
			return exprs, nil
		}

		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)

		next := p.lex.Peek()
		switch next.Kind {
		case token.COMMA:
			p.lex.Skip()
		case end:
		default:
			return nil, p.unexpected(next, "',' veya "+quote(end))
		}
	}
}
