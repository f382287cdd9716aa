package token

import "fmt"

type Token struct {
	Lexeme []byte
	Kind   Kind
	Pos    Pos
}

func New(lexeme []byte, kind Kind, position Pos) *Token {
	return &Token{Lexeme: lexeme, Kind: kind, Pos: position}
}

func (token *Token) Name() string {
	switch token.Kind {
	case ID, STRING_LITERAL, INTEGER_LITERAL, FLOAT_LITERAL:
		return string(token.Lexeme)
	}
	return token.Kind.String()
}

// Quoted form used in diagnostics.
func (token *Token) Describe() string {
	switch token.Kind {
	case EOF:
		return token.Kind.String()
	case STRING_LITERAL:
		return fmt.Sprintf("\"%s\"", token.Lexeme)
	}
	return fmt.Sprintf("'%s'", token.Name())
}

func (token *Token) String() string {
	return fmt.Sprintf("%s | %s | %s", string(token.Lexeme), token.Kind, token.Pos)
}
