package token

import (
	"fmt"
)

type Kind int

const (
	// EOF
	EOF Kind = iota
	INVALID

	// Identifier
	ID

	// Literals
	INTEGER_LITERAL
	FLOAT_LITERAL
	STRING_LITERAL
	TRUE_BOOL_LITERAL  // doğru
	FALSE_BOOL_LITERAL // yanlış

	// Keywords
	DECLARE  // tanımla
	AS       // olarak
	SAY      // söyle
	IF       // eğer
	THEN     // ise
	ELSE     // yoksa
	END      // son
	WHILE    // döngü
	FOR      // için
	FROM     // dan
	STEP     // adım
	FN       // fonksiyon
	USE      // kullan
	RETURN   // return
	BREAK    // kır
	CONTINUE // devam

	// Types
	INT_TYPE    // tamsayı
	STRING_TYPE // metin
	FLOAT_TYPE  // ondalıklı
	BOOL_TYPE   // mantıksal

	// 'ı, 'i, 'yı, ...
	POSSESSIVE

	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN

	// {
	OPEN_CURLY
	// }
	CLOSE_CURLY

	// [
	OPEN_BRACKET
	// ]
	CLOSE_BRACKET

	// ,
	COMMA
	// .
	DOT
	// :
	COLON
	// ->
	ARROW

	// =
	EQUAL

	// >
	GREATER
	// >=
	GREATER_EQ
	// <
	LESS
	// <=
	LESS_EQ

	// +
	PLUS
)

var KEYWORDS map[string]Kind = map[string]Kind{
	"tanımla":   DECLARE,
	"olarak":    AS,
	"söyle":     SAY,
	"eğer":      IF,
	"ise":       THEN,
	"yoksa":     ELSE,
	"son":       END,
	"döngü":     WHILE,
	"için":      FOR,
	"dan":       FROM,
	"adım":      STEP,
	"fonksiyon": FN,
	"kullan":    USE,
	"return":    RETURN,
	"kır":       BREAK,
	"devam":     CONTINUE,

	"doğru":  TRUE_BOOL_LITERAL,
	"yanlış": FALSE_BOOL_LITERAL,

	"tamsayı":   INT_TYPE,
	"metin":     STRING_TYPE,
	"ondalıklı": FLOAT_TYPE,
	"mantıksal": BOOL_TYPE,
}

// Suffixes accepted after the apostrophe of a declaration.
var POSSESSIVE_SUFFIXES map[string]bool = map[string]bool{
	"ı": true, "i": true, "u": true, "ü": true,
	"yı": true, "yi": true, "yu": true, "yü": true,
	"nı": true, "ni": true, "nu": true, "nü": true,
	"ları": true, "leri": true,
}

var BASIC_TYPES map[Kind]bool = map[Kind]bool{
	INT_TYPE:    true,
	STRING_TYPE: true,
	FLOAT_TYPE:  true,
	BOOL_TYPE:   true,
}

// Type keywords in the order they are suggested to the user.
var BASIC_TYPE_NAMES []string = []string{"tamsayı", "metin", "ondalıklı", "mantıksal"}

var LITERAL_KIND map[Kind]bool = map[Kind]bool{
	INTEGER_LITERAL:    true,
	FLOAT_LITERAL:      true,
	STRING_LITERAL:     true,
	TRUE_BOOL_LITERAL:  true,
	FALSE_BOOL_LITERAL: true,
}

var BINARY_OP map[Kind]bool = map[Kind]bool{
	PLUS:       true,
	GREATER:    true,
	GREATER_EQ: true,
	LESS:       true,
	LESS_EQ:    true,
}

func (kind Kind) IsBasicType() bool {
	_, ok := BASIC_TYPES[kind]
	return ok
}

func (kind Kind) IsLiteral() bool {
	_, ok := LITERAL_KIND[kind]
	return ok
}

func (kind Kind) IsBinaryOp() bool {
	_, ok := BINARY_OP[kind]
	return ok
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "dosya sonu"
	case INVALID:
		return "INVALID"
	case ID:
		return "tanımlayıcı"
	case INTEGER_LITERAL:
		return "tamsayı değeri"
	case FLOAT_LITERAL:
		return "ondalıklı değer"
	case STRING_LITERAL:
		return "metin değeri"
	case TRUE_BOOL_LITERAL:
		return "doğru"
	case FALSE_BOOL_LITERAL:
		return "yanlış"
	case DECLARE:
		return "tanımla"
	case AS:
		return "olarak"
	case SAY:
		return "söyle"
	case IF:
		return "eğer"
	case THEN:
		return "ise"
	case ELSE:
		return "yoksa"
	case END:
		return "son"
	case WHILE:
		return "döngü"
	case FOR:
		return "için"
	case FROM:
		return "dan"
	case STEP:
		return "adım"
	case FN:
		return "fonksiyon"
	case USE:
		return "kullan"
	case RETURN:
		return "return"
	case BREAK:
		return "kır"
	case CONTINUE:
		return "devam"
	case INT_TYPE:
		return "tamsayı"
	case STRING_TYPE:
		return "metin"
	case FLOAT_TYPE:
		return "ondalıklı"
	case BOOL_TYPE:
		return "mantıksal"
	case POSSESSIVE:
		return "'ı"
	case OPEN_PAREN:
		return "("
	case CLOSE_PAREN:
		return ")"
	case OPEN_CURLY:
		return "{"
	case CLOSE_CURLY:
		return "}"
	case OPEN_BRACKET:
		return "["
	case CLOSE_BRACKET:
		return "]"
	case COMMA:
		return ","
	case DOT:
		return "."
	case COLON:
		return ":"
	case ARROW:
		return "->"
	case EQUAL:
		return "="
	case GREATER:
		return ">"
	case GREATER_EQ:
		return ">="
	case LESS:
		return "<"
	case LESS_EQ:
		return "<="
	case PLUS:
		return "+"
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}
