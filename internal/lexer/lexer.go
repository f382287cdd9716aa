package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/HicaroD/Otag/internal/ast"
	"github.com/HicaroD/Otag/internal/diagnostics"
	"github.com/HicaroD/Otag/internal/lexer/token"
)

const eof = rune(0)

type Lexer struct {
	Loc       *ast.Loc
	Collector *diagnostics.Collector

	src    []byte
	offset int
	pos    token.Pos
}

func New(loc *ast.Loc, src []byte, collector *diagnostics.Collector) *Lexer {
	lexer := new(Lexer)

	lexer.Loc = loc
	lexer.Collector = collector
	lexer.pos = token.NewPosition(loc.Name, 1, 1)
	lexer.src = src
	lexer.offset = 0

	return lexer
}

func (lex *Lexer) Peek() *token.Token {
	prevPos := lex.pos
	prevOffset := lex.offset
	restore := lex.muteCollector()

	token := lex.Next()

	lex.pos.SetPosition(prevPos)
	lex.offset = prevOffset
	restore()
	return token
}

func (lex *Lexer) Peek1() *token.Token {
	prevPos := lex.pos
	prevOffset := lex.offset
	restore := lex.muteCollector()

	var token *token.Token

	_ = lex.Next()
	token = lex.Next()

	lex.pos.SetPosition(prevPos)
	lex.offset = prevOffset
	restore()

	return token
}

// Lookahead must not leave diagnostics behind: the token is scanned again
// by Next and reported then.
func (lex *Lexer) muteCollector() func() {
	out := lex.Collector.Out
	count := len(lex.Collector.Diags)
	lex.Collector.Out = nil
	return func() {
		lex.Collector.Out = out
		lex.Collector.Diags = lex.Collector.Diags[:count]
	}
}

func (lex *Lexer) Skip() {
	lex.Next()
}

func (lex *Lexer) NextIs(expectedKind token.Kind) bool {
	token := lex.Peek()
	return token.Kind == expectedKind
}

// Next scans one token. On invalid input the returned token has kind
// INVALID and the reason is the last diagnostic in the collector.
func (lex *Lexer) Next() *token.Token {
	lex.skipWhitespace()
	character := lex.peekChar()

	tok := &token.Token{}
	tok.Kind = token.INVALID

	if character == eof && lex.offset >= len(lex.src) {
		lex.consumeTokenNoLex(tok, token.EOF)
		return tok
	}

	token := lex.getToken(tok, character)
	return token
}

// Useful for testing
func (lex *Lexer) Tokenize() ([]*token.Token, error) {
	var tokens []*token.Token
	for {
		tok := lex.Next()
		if tok.Kind == token.INVALID {
			return nil, diagnostics.COMPILER_ERROR_FOUND
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, nil
}

func (lex *Lexer) getToken(tok *token.Token, ch rune) *token.Token {
	switch ch {
	case '(':
		lex.consumeTokenNoLex(tok, token.OPEN_PAREN)
		lex.nextChar()
	case ')':
		lex.consumeTokenNoLex(tok, token.CLOSE_PAREN)
		lex.nextChar()
	case '{':
		lex.consumeTokenNoLex(tok, token.OPEN_CURLY)
		lex.nextChar()
	case '}':
		lex.consumeTokenNoLex(tok, token.CLOSE_CURLY)
		lex.nextChar()
	case '[':
		lex.consumeTokenNoLex(tok, token.OPEN_BRACKET)
		lex.nextChar()
	case ']':
		lex.consumeTokenNoLex(tok, token.CLOSE_BRACKET)
		lex.nextChar()
	case ',':
		lex.consumeTokenNoLex(tok, token.COMMA)
		lex.nextChar()
	case '.':
		lex.consumeTokenNoLex(tok, token.DOT)
		lex.nextChar()
	case ':':
		lex.consumeTokenNoLex(tok, token.COLON)
		lex.nextChar()
	case '+':
		lex.consumeTokenNoLex(tok, token.PLUS)
		lex.nextChar()
	case '=':
		lex.consumeTokenNoLex(tok, token.EQUAL)
		lex.nextChar()
	case '"':
		lex.getStringLit(tok)
	case '\'':
		lex.getPossessive(tok)
	case '-':
		tok.Pos = lex.pos
		lex.nextChar() // -

		if lex.peekChar() != '>' {
			lex.Collector.ReportAndSave(*diagnostics.NewSyntax(tok.Pos, "geçersiz karakter '-'").
				WithSuggestions("dönüş türü için '->' kullanın"))
			return tok
		}
		lex.nextChar() // >
		tok.Kind = token.ARROW
	case '>':
		tok.Pos = lex.pos

		tok.Kind = token.GREATER
		lex.nextChar() // >

		next := lex.peekChar()
		if next != '=' {
			return tok
		}
		lex.nextChar() // =
		tok.Kind = token.GREATER_EQ
	case '<':
		tok.Kind = token.LESS
		tok.Pos = lex.pos
		lex.nextChar() // <

		next := lex.peekChar()
		if next != '=' {
			return tok
		}
		lex.nextChar() // =
		tok.Kind = token.LESS_EQ
	default:
		if unicode.IsLower(ch) {
			lex.getIdOrKeyword(tok)
		} else if ch >= '0' && ch <= '9' {
			lex.getNumberLit(tok)
		} else {
			tok.Pos = lex.pos
			lex.Collector.ReportAndSave(*diagnostics.NewSyntax(tok.Pos, "geçersiz karakter '%c'", ch))
		}
	}
	return tok
}

// Escapes are validated but kept verbatim: only the delimiters are stripped.
func (lex *Lexer) getStringLit(tok *token.Token) *token.Token {
	tok.Pos = lex.pos
	lex.nextChar() // "

	start := lex.offset
	for {
		ch := lex.peekChar()
		if lex.atEnd() || ch == '"' {
			break
		}
		if ch == '\\' {
			lex.nextChar()
			if lex.atEnd() {
				break
			}
		}
		lex.nextChar()
	}
	end := lex.offset

	if lex.atEnd() {
		lex.Collector.ReportAndSave(*diagnostics.NewSyntax(tok.Pos, "sonlandırılmamış metin değeri"))
		return tok
	}
	lex.nextChar() // "

	tok.Kind = token.STRING_LITERAL
	tok.Lexeme = lex.src[start:end]
	return tok
}

func (lex *Lexer) getPossessive(tok *token.Token) {
	tok.Pos = lex.pos
	lex.nextChar() // '

	suffix := lex.readWhile(unicode.IsLetter)
	if !token.POSSESSIVE_SUFFIXES[string(suffix)] {
		lex.Collector.ReportAndSave(*diagnostics.NewSyntax(tok.Pos, "geçersiz iyelik eki '%s'", suffix).
			WithSuggestions("değişken tanımlarken 'ı eki kullanın: x'ı tamsayı olarak tanımla"))
		return
	}

	tok.Kind = token.POSSESSIVE
	tok.Lexeme = suffix
}

func (lex *Lexer) getNumberLit(tok *token.Token) {
	tok.Pos = lex.pos
	start := lex.offset

	lex.readWhile(isDigit)
	tok.Kind = token.INTEGER_LITERAL

	// A float needs at least one digit after the dot, otherwise the dot
	// belongs to the next token.
	if lex.peekChar() == '.' && isDigit(lex.peekCharAt(1)) {
		lex.nextChar() // .
		lex.readWhile(isDigit)
		tok.Kind = token.FLOAT_LITERAL
	}

	tok.Lexeme = lex.src[start:lex.offset]
}

func (lex *Lexer) getIdOrKeyword(tok *token.Token) {
	tok.Pos = lex.pos
	identifier := lex.readWhile(
		func(chr rune) bool { return unicode.IsLetter(chr) || unicode.IsDigit(chr) || chr == '_' },
	)
	tok.Kind = token.ID
	tok.Lexeme = identifier
	keyword, ok := token.KEYWORDS[string(identifier)]
	if ok {
		tok.Kind = keyword
	}
}

func (lex *Lexer) consumeTokenNoLex(tok *token.Token, kind token.Kind) {
	tok.Lexeme = nil
	tok.Kind = kind
	tok.Pos = lex.pos
}

func (lex *Lexer) skipWhitespace() {
	for {
		lex.readWhile(func(ch rune) bool {
			return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f'
		})
		if lex.peekChar() != '#' {
			return
		}
		lex.readWhile(func(ch rune) bool { return ch != '\n' })
	}
}

func (lex *Lexer) readWhile(isValid func(rune) bool) []byte {
	var start, end int
	start = lex.offset

	for {
		if lex.atEnd() {
			break
		}

		if isValid(lex.peekChar()) {
			lex.nextChar()
		} else {
			break
		}
	}

	end = lex.offset

	return lex.src[start:end]
}

func (lex *Lexer) atEnd() bool {
	return lex.offset >= len(lex.src)
}

func (lex *Lexer) nextChar() rune {
	if lex.atEnd() {
		return eof
	}
	character, size := utf8.DecodeRune(lex.src[lex.offset:])
	lex.pos.Move(character)
	lex.offset += size
	return character
}

func (lex *Lexer) peekChar() rune {
	if lex.atEnd() {
		return eof
	}
	character, _ := utf8.DecodeRune(lex.src[lex.offset:])
	return character
}

func (lex *Lexer) peekCharAt(n int) rune {
	offset := lex.offset
	for i := 0; i <= n; i++ {
		if offset >= len(lex.src) {
			return eof
		}
		character, size := utf8.DecodeRune(lex.src[offset:])
		if i == n {
			return character
		}
		offset += size
	}
	return eof
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
