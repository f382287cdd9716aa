package ast

import (
	"fmt"
	"strings"

	"github.com/HicaroD/Otag/internal/lexer/token"
)

type IdExpr struct {
	Name *token.Token
}

func (idExpr IdExpr) String() string {
	return idExpr.Name.Name()
}

// LiteralExpr keeps the raw lexeme; the interpreter decides how to read it.
type LiteralExpr struct {
	Kind  token.Kind
	Value []byte
}

func (literal LiteralExpr) String() string {
	if literal.Kind == token.STRING_LITERAL {
		return fmt.Sprintf("\"%s\"", literal.Value)
	}
	if literal.Kind == token.TRUE_BOOL_LITERAL || literal.Kind == token.FALSE_BOOL_LITERAL {
		return literal.Kind.String()
	}
	return string(literal.Value)
}

type BinaryExpr struct {
	Left  *Node
	Op    token.Kind
	Right *Node
}

func (binExpr BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", binExpr.Left, binExpr.Op, binExpr.Right)
}

type FnCall struct {
	Name *token.Token
	Args []*Node
}

func (call FnCall) String() string {
	return fmt.Sprintf("%s(%s)", call.Name.Name(), joinNodes(call.Args))
}

type ArrayLiteralExpr struct {
	Elems []*Node
}

func (array ArrayLiteralExpr) String() string {
	return fmt.Sprintf("[%s]", joinNodes(array.Elems))
}

type IndexExpr struct {
	Array *Node
	Index *Node
}

func (index IndexExpr) String() string {
	return fmt.Sprintf("%s[%s]", index.Array, index.Index)
}

type StructFieldValue struct {
	Name  *token.Token
	Value *Node
}

type StructLiteralExpr struct {
	Name   *token.Token
	Values []*StructFieldValue
}

func (st StructLiteralExpr) String() string {
	values := make([]string, 0, len(st.Values))
	for _, v := range st.Values {
		values = append(values, fmt.Sprintf("%s: %s", v.Name.Name(), v.Value))
	}
	return fmt.Sprintf("%s { %s }", st.Name.Name(), strings.Join(values, ", "))
}

type FieldAccess struct {
	Left  *Node
	Field *token.Token
}

func (f FieldAccess) String() string {
	return fmt.Sprintf("%s.%s", f.Left, f.Field.Name())
}

func joinNodes(nodes []*Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, ", ")
}
