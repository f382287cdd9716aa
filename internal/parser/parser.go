package parser

import (
	"github.com/HicaroD/Otag/internal/ast"
	"github.com/HicaroD/Otag/internal/diagnostics"
	"github.com/HicaroD/Otag/internal/lexer"
	"github.com/HicaroD/Otag/internal/lexer/token"
)

type Parser struct {
	lex       *lexer.Lexer
	collector *diagnostics.Collector
}

func New(collector *diagnostics.Collector) *Parser {
	parser := new(Parser)
	parser.lex = nil
	parser.collector = collector
	return parser
}

// Useful for testing
func NewWithLex(lex *lexer.Lexer, collector *diagnostics.Collector) *Parser {
	return &Parser{lex: lex, collector: collector}
}

// ParseFile parses src as the contents of loc. The first syntax error stops
// parsing and is returned as a *diagnostics.Diag.
func (p *Parser) ParseFile(loc *ast.Loc, src []byte) (*ast.Program, error) {
	p.lex = lexer.New(loc, src, p.collector)
	return p.parseProgram(loc)
}

func (p *Parser) parseProgram(loc *ast.Loc) (*ast.Program, error) {
	program := &ast.Program{Loc: loc}

	for {
		node, eof, err := p.next()
		if err != nil {
			return nil, err
		}
		if eof {
			break
		}
		program.Append(node)
	}

	return program, nil
}

func (p *Parser) next() (*ast.Node, bool, error) {
	tok := p.lex.Peek()
	if tok.Kind == token.EOF {
		return nil, true, nil
	}
	node, err := p.parseStmt()
	return node, false, err
}

func (p *Parser) parseStmt() (*ast.Node, error) {
	tok := p.lex.Peek()

	switch tok.Kind {
	case token.USE:
		return p.parseUse()
	case token.ID:
		return p.parseIdStmt()
	case token.SAY:
		return p.parseOutput()
	case token.IF:
		return p.parseCondStmt()
	case token.WHILE:
		return p.parseWhileLoop()
	case token.FOR:
		return p.parseForLoop()
	case token.BREAK:
		p.lex.Skip()
		return ast.NewNode(ast.KIND_BREAK_STMT, tok.Pos, nil), nil
	case token.CONTINUE:
		p.lex.Skip()
		return ast.NewNode(ast.KIND_CONTINUE_STMT, tok.Pos, nil), nil
	case token.FN:
		return p.parseFnDecl()
	case token.RETURN:
		return p.parseReturn()
	default:
		return nil, p.unexpected(tok, "ifade")
	}
}

// parseBlock reads statements until one of ends is the next token. The
// terminator itself is left for the caller.
func (p *Parser) parseBlock(ends ...token.Kind) (*ast.BlockStmt, error) {
	block := new(ast.BlockStmt)

	for {
		tok := p.lex.Peek()
		for _, end := range ends {
			if tok.Kind == end {
				return block, nil
			}
		}
		if tok.Kind == token.EOF {
			return nil, p.unexpected(tok, quote(ends[0]))
		}

		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
}

func (p *Parser) parseUse() (*ast.Node, error) {
	use, ok := p.expect(token.USE)
	if !ok {
		return nil, p.unexpected(use, "'kullan'")
	}

	path, ok := p.expect(token.STRING_LITERAL)
	if !ok {
		return nil, p.unexpected(path, "içe aktarılacak dosya yolu")
	}

	return ast.NewNode(ast.KIND_IMPORT_STMT, use.Pos, &ast.ImportStmt{Path: string(path.Lexeme)}), nil
}

// parseIdStmt handles every statement that starts with an identifier:
// declarations, assignments, struct declarations and call statements.
func (p *Parser) parseIdStmt() (*ast.Node, error) {
	next := p.lex.Peek1()

	switch next.Kind {
	case token.POSSESSIVE:
		return p.parseVarDecl()
	case token.EQUAL:
		return p.parseAssign()
	case token.OPEN_CURLY:
		return p.parseStructDecl()
	case token.OPEN_PAREN:
		call, err := p.parseFnCall()
		if err != nil {
			return nil, err
		}
		return call, nil
	default:
		name := p.lex.Next()
		if next.Kind == token.INVALID {
			return nil, p.unexpected(next, "")
		}
		return nil, p.collector.Report(
			diagnostics.NewSyntax(next.Pos, "'%s' sonrasında %s beklenmiyordu", name.Name(), next.Describe()).
				WithSuggestions(
					"değişken tanımı: "+name.Name()+"'ı tamsayı olarak tanımla",
					"atama: "+name.Name()+" = 5",
				),
		)
	}
}

func (p *Parser) parseVarDecl() (*ast.Node, error) {
	name, ok := p.expect(token.ID)
	if !ok {
		return nil, p.unexpected(name, "değişken adı")
	}

	possessive, ok := p.expect(token.POSSESSIVE)
	if !ok {
		return nil, p.unexpected(possessive, "'ı")
	}

	ty, err := p.parseDeclType()
	if err != nil {
		return nil, err
	}

	as, ok := p.expect(token.AS)
	if !ok {
		return nil, p.unexpected(as, "'olarak'")
	}

	declare, ok := p.expect(token.DECLARE)
	if !ok {
		return nil, p.unexpected(declare, "'tanımla'")
	}

	return ast.NewNode(ast.KIND_VAR_DECL, name.Pos, &ast.VarDecl{Name: name, Type: ty}), nil
}

// parseDeclType only accepts the four type keywords and array types,
// anything else is reported with the keywords as suggestions.
func (p *Parser) parseDeclType() (*ast.ExprType, error) {
	tok := p.lex.Peek()
	if tok.Kind.IsBasicType() || tok.Kind == token.OPEN_BRACKET {
		return p.parseExprType()
	}
	if tok.Kind == token.INVALID {
		return nil, p.unexpected(tok, "")
	}

	return nil, p.collector.Report(
		diagnostics.NewSyntax(tok.Pos, "Bilinmeyen tür '%s'", tok.Name()).
			WithSuggestions(token.BASIC_TYPE_NAMES...),
	)
}

func (p *Parser) parseExprType() (*ast.ExprType, error) {
	tok := p.lex.Peek()

	switch {
	case tok.Kind.IsBasicType():
		p.lex.Skip()
		return ast.NewBasicType(tok.Kind), nil
	case tok.Kind == token.OPEN_BRACKET:
		p.lex.Skip() // [
		elem, err := p.parseExprType()
		if err != nil {
			return nil, err
		}
		closeBracket, ok := p.expect(token.CLOSE_BRACKET)
		if !ok {
			return nil, p.unexpected(closeBracket, "']'")
		}
		return ast.NewArrayType(elem), nil
	case tok.Kind == token.ID:
		p.lex.Skip()
		return ast.NewStructType(tok.Name()), nil
	default:
		return nil, p.unexpected(tok, "tür")
	}
}

func (p *Parser) parseAssign() (*ast.Node, error) {
	name, ok := p.expect(token.ID)
	if !ok {
		return nil, p.unexpected(name, "değişken adı")
	}

	equal, ok := p.expect(token.EQUAL)
	if !ok {
		return nil, p.unexpected(equal, "'='")
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return ast.NewNode(ast.KIND_ASSIGN_STMT, name.Pos, &ast.AssignStmt{Name: name, Value: value}), nil
}

func (p *Parser) parseStructDecl() (*ast.Node, error) {
	name, ok := p.expect(token.ID)
	if !ok {
		return nil, p.unexpected(name, "yapı adı")
	}

	openCurly, ok := p.expect(token.OPEN_CURLY)
	if !ok {
		return nil, p.unexpected(openCurly, "'{'")
	}

	var fields []*ast.Field
	declared := make(map[string]bool)
	for !p.lex.NextIs(token.CLOSE_CURLY) {
		fieldName, ok := p.expect(token.ID)
		if !ok {
			return nil, p.unexpected(fieldName, "alan adı veya '}'")
		}
		if declared[fieldName.Name()] {
			return nil, p.collector.Report(
				diagnostics.NewSyntax(fieldName.Pos, "'%s' yapısında '%s' alanı birden fazla tanımlanmış", name.Name(), fieldName.Name()),
			)
		}
		declared[fieldName.Name()] = true

		colon, ok := p.expect(token.COLON)
		if !ok {
			return nil, p.unexpected(colon, "':'")
		}

		ty, err := p.parseExprType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, &ast.Field{Name: fieldName, Type: ty})

		if p.lex.NextIs(token.COMMA) {
			p.lex.Skip() // ,
			continue
		}
		if !p.lex.NextIs(token.CLOSE_CURLY) {
			return nil, p.unexpected(p.lex.Peek(), "',' veya '}'")
		}
	}
	p.lex.Skip() // }

	return ast.NewNode(ast.KIND_STRUCT_DECL, name.Pos, &ast.StructDecl{Name: name, Fields: fields}), nil
}

func (p *Parser) parseOutput() (*ast.Node, error) {
	say, ok := p.expect(token.SAY)
	if !ok {
		return nil, p.unexpected(say, "'söyle'")
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return ast.NewNode(ast.KIND_OUTPUT_STMT, say.Pos, &ast.OutputStmt{Value: value}), nil
}

func (p *Parser) parseCondStmt() (*ast.Node, error) {
	ifTok, ok := p.expect(token.IF)
	if !ok {
		return nil, p.unexpected(ifTok, "'eğer'")
	}

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	then, ok := p.expect(token.THEN)
	if !ok {
		return nil, p.unexpected(then, "'ise'")
	}

	thenBlock, err := p.parseBlock(token.END, token.ELSE)
	if err != nil {
		return nil, err
	}

	var elseBlock *ast.BlockStmt
	if p.lex.NextIs(token.ELSE) {
		p.lex.Skip() // yoksa
		elseBlock, err = p.parseBlock(token.END)
		if err != nil {
			return nil, err
		}
	}

	end, ok := p.expect(token.END)
	if !ok {
		return nil, p.unexpected(end, "'son'")
	}

	return ast.NewNode(ast.KIND_COND_STMT, ifTok.Pos, &ast.CondStmt{Cond: cond, Then: thenBlock, Else: elseBlock}), nil
}

func (p *Parser) parseWhileLoop() (*ast.Node, error) {
	while, ok := p.expect(token.WHILE)
	if !ok {
		return nil, p.unexpected(while, "'döngü'")
	}

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	block, err := p.parseLoopBody()
	if err != nil {
		return nil, err
	}

	return ast.NewNode(ast.KIND_WHILE_LOOP_STMT, while.Pos, &ast.WhileLoop{Cond: cond, Block: block}), nil
}

func (p *Parser) parseForLoop() (*ast.Node, error) {
	forTok, ok := p.expect(token.FOR)
	if !ok {
		return nil, p.unexpected(forTok, "'için'")
	}

	loopVar, ok := p.expect(token.ID)
	if !ok {
		return nil, p.unexpected(loopVar, "döngü değişkeni")
	}

	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	from, ok := p.expect(token.FROM)
	if !ok {
		return nil, p.unexpected(from, "'dan'")
	}

	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	var step *ast.Node
	if p.lex.NextIs(token.STEP) {
		p.lex.Skip() // adım
		step, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	block, err := p.parseLoopBody()
	if err != nil {
		return nil, err
	}

	forLoop := &ast.ForLoop{Var: loopVar, Start: start, End: end, Step: step, Block: block}
	return ast.NewNode(ast.KIND_FOR_LOOP_STMT, forTok.Pos, forLoop), nil
}

// ise <block> son
func (p *Parser) parseLoopBody() (*ast.BlockStmt, error) {
	then, ok := p.expect(token.THEN)
	if !ok {
		return nil, p.unexpected(then, "'ise'")
	}

	block, err := p.parseBlock(token.END)
	if err != nil {
		return nil, err
	}

	end, ok := p.expect(token.END)
	if !ok {
		return nil, p.unexpected(end, "'son'")
	}
	return block, nil
}

func (p *Parser) parseFnDecl() (*ast.Node, error) {
	fn, ok := p.expect(token.FN)
	if !ok {
		return nil, p.unexpected(fn, "'fonksiyon'")
	}

	name, ok := p.expect(token.ID)
	if !ok {
		return nil, p.unexpected(name, "fonksiyon adı")
	}

	params, err := p.parseFunctionParams(name)
	if err != nil {
		return nil, err
	}

	retType, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}

	openCurly, ok := p.expect(token.OPEN_CURLY)
	if !ok {
		return nil, p.unexpected(openCurly, "'{'")
	}

	block, err := p.parseBlock(token.CLOSE_CURLY)
	if err != nil {
		return nil, err
	}
	p.lex.Skip() // }

	fnDecl := &ast.FnDecl{Name: name, Params: params, RetType: retType, Block: block}
	return ast.NewNode(ast.KIND_FN_DECL, fn.Pos, fnDecl), nil
}

func (p *Parser) parseFunctionParams(functionName *token.Token) ([]*ast.Field, error) {
	var params []*ast.Field

	openParen, ok := p.expect(token.OPEN_PAREN)
	if !ok {
		return nil, p.unexpected(openParen, "'('")
	}

	declared := make(map[string]bool)
	for {
		if p.lex.NextIs(token.CLOSE_PAREN) {
			break
		}

		param := new(ast.Field)

		name, ok := p.expect(token.ID)
		if !ok {
			return nil, p.unexpected(name, "parametre veya ')'")
		}
		param.Name = name

		if declared[name.Name()] {
			return nil, p.collector.Report(
				diagnostics.NewSyntax(
					name.Pos,
					"'%s' fonksiyonunda '%s' parametresi birden fazla tanımlanmış",
					functionName.Name(),
					name.Name(),
				),
			)
		}
		declared[name.Name()] = true

		colon, ok := p.expect(token.COLON)
		if !ok {
			return nil, p.unexpected(colon, "':'")
		}

		ty, err := p.parseExprType()
		if err != nil {
			return nil, err
		}
		param.Type = ty

		params = append(params, param)
		if p.lex.NextIs(token.COMMA) {
			p.lex.Skip() // ,
			continue
		}
		if !p.lex.NextIs(token.CLOSE_PAREN) {
			return nil, p.unexpected(p.lex.Peek(), "',' veya ')'")
		}
	}

	closeParen, ok := p.expect(token.CLOSE_PAREN)
	if !ok {
		return nil, p.unexpected(closeParen, "')'")
	}

	return params, nil
}

func (p *Parser) parseReturnType() (*ast.ExprType, error) {
	if !p.lex.NextIs(token.ARROW) {
		return nil, nil
	}
	p.lex.Skip() // ->
	return p.parseExprType()
}

func (p *Parser) parseReturn() (*ast.Node, error) {
	ret, ok := p.expect(token.RETURN)
	if !ok {
		return nil, p.unexpected(ret, "'return'")
	}

	stmt := &ast.ReturnStmt{Return: ret}
	if canStartExpr(p.lex.Peek().Kind) {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Value = value
	}

	return ast.NewNode(ast.KIND_RETURN_STMT, ret.Pos, stmt), nil
}

func (p *Parser) expect(expectedKind token.Kind) (*token.Token, bool) {
	tok := p.lex.Peek()
	if tok.Kind != expectedKind {
		return tok, false
	}
	p.lex.Skip()
	return tok, true
}

// unexpected reports tok, which must still be unconsumed, as a syntax error.
// Invalid tokens are scanned again so the lexer's own diagnostic is the one
// returned.
func (p *Parser) unexpected(tok *token.Token, expected string) error {
	if tok.Kind == token.INVALID {
		p.lex.Skip()
		if last := p.collector.Last(); last != nil {
			return last
		}
		return p.collector.Report(diagnostics.NewSyntax(tok.Pos, "geçersiz ifade"))
	}
	return p.collector.Report(
		diagnostics.NewSyntax(tok.Pos, "%s bekleniyordu, %s bulundu", expected, tok.Describe()),
	)
}

func quote(kind token.Kind) string {
	return "'" + kind.String() + "'"
}
