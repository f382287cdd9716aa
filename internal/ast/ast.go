// Package ast defines the abstract syntax tree (AST) of an Otağ program.
package ast

import (
	"fmt"

	"github.com/HicaroD/Otag/internal/lexer/token"
)

type NodeKind int

const (
	STMT_START NodeKind = iota // statement node start delimiter
	KIND_IMPORT_STMT
	KIND_VAR_DECL
	KIND_ASSIGN_STMT
	KIND_OUTPUT_STMT
	KIND_COND_STMT
	KIND_WHILE_LOOP_STMT
	KIND_FOR_LOOP_STMT
	KIND_BREAK_STMT
	KIND_CONTINUE_STMT
	KIND_FN_DECL
	KIND_RETURN_STMT
	KIND_STRUCT_DECL

	EXPR_START // expression node start delimiter

	KIND_FN_CALL // expression and statement

	STMT_END // statement node end delimiter
	KIND_ID_EXPR
	KIND_LITERAL_EXPR
	KIND_BINARY_EXPR
	KIND_ARRAY_LITERAL_EXPR
	KIND_INDEX_EXPR
	KIND_STRUCT_LITERAL_EXPR
	KIND_FIELD_ACCESS
	EXPR_END // expression node end delimiter
)

type Node struct {
	Kind NodeKind
	Pos  token.Pos
	Node any
}

func NewNode(kind NodeKind, pos token.Pos, node any) *Node {
	return &Node{Kind: kind, Pos: pos, Node: node}
}

func (n *Node) IsStmt() bool {
	return n.Kind > STMT_START && n.Kind < STMT_END
}

func (n *Node) IsExpr() bool {
	return n.Kind > EXPR_START && n.Kind < EXPR_END
}

func (n *Node) IsId() bool {
	return n.Kind == KIND_ID_EXPR
}

func (n *Node) IsReturn() bool {
	return n.Kind == KIND_RETURN_STMT
}

func (n *Node) IsImport() bool {
	return n.Kind == KIND_IMPORT_STMT
}

func (kind NodeKind) String() string {
	switch kind {
	case KIND_IMPORT_STMT:
		return "KIND_IMPORT_STMT"
	case KIND_VAR_DECL:
		return "KIND_VAR_DECL"
	case KIND_ASSIGN_STMT:
		return "KIND_ASSIGN_STMT"
	case KIND_OUTPUT_STMT:
		return "KIND_OUTPUT_STMT"
	case KIND_COND_STMT:
		return "KIND_COND_STMT"
	case KIND_WHILE_LOOP_STMT:
		return "KIND_WHILE_LOOP_STMT"
	case KIND_FOR_LOOP_STMT:
		return "KIND_FOR_LOOP_STMT"
	case KIND_BREAK_STMT:
		return "KIND_BREAK_STMT"
	case KIND_CONTINUE_STMT:
		return "KIND_CONTINUE_STMT"
	case KIND_FN_DECL:
		return "KIND_FN_DECL"
	case KIND_RETURN_STMT:
		return "KIND_RETURN_STMT"
	case KIND_STRUCT_DECL:
		return "KIND_STRUCT_DECL"
	case KIND_FN_CALL:
		return "KIND_FN_CALL"
	case KIND_ID_EXPR:
		return "KIND_ID_EXPR"
	case KIND_LITERAL_EXPR:
		return "KIND_LITERAL_EXPR"
	case KIND_BINARY_EXPR:
		return "KIND_BINARY_EXPR"
	case KIND_ARRAY_LITERAL_EXPR:
		return "KIND_ARRAY_LITERAL_EXPR"
	case KIND_INDEX_EXPR:
		return "KIND_INDEX_EXPR"
	case KIND_STRUCT_LITERAL_EXPR:
		return "KIND_STRUCT_LITERAL_EXPR"
	case KIND_FIELD_ACCESS:
		return "KIND_FIELD_ACCESS"
	default:
		return fmt.Sprintf("Unknown Node Kind: %d", int(kind))
	}
}

func (n *Node) String() string {
	if s, ok := n.Node.(fmt.Stringer); ok {
		return s.String()
	}
	return n.Kind.String()
}
