package ast

import (
	"fmt"

	"github.com/HicaroD/Otag/internal/lexer/token"
)

type ExprTypeKind int

const (
	EXPR_TYPE_BASIC ExprTypeKind = iota
	EXPR_TYPE_ARRAY
	EXPR_TYPE_STRUCT
)

type ExprType struct {
	Kind ExprTypeKind
	T    any
}

type BasicType struct {
	Kind token.Kind
}

type ArrayType struct {
	Elem *ExprType
}

type StructType struct {
	Name string
}

func NewBasicType(kind token.Kind) *ExprType {
	return &ExprType{Kind: EXPR_TYPE_BASIC, T: &BasicType{Kind: kind}}
}

func NewArrayType(elem *ExprType) *ExprType {
	return &ExprType{Kind: EXPR_TYPE_ARRAY, T: &ArrayType{Elem: elem}}
}

func NewStructType(name string) *ExprType {
	return &ExprType{Kind: EXPR_TYPE_STRUCT, T: &StructType{Name: name}}
}

func (ty *ExprType) Equals(other *ExprType) bool {
	if ty == nil || other == nil {
		return ty == other
	}
	if ty.Kind != other.Kind {
		return false
	}

	switch ty.Kind {
	case EXPR_TYPE_BASIC:
		return ty.T.(*BasicType).Kind == other.T.(*BasicType).Kind
	case EXPR_TYPE_ARRAY:
		return ty.T.(*ArrayType).Elem.Equals(other.T.(*ArrayType).Elem)
	case EXPR_TYPE_STRUCT:
		return ty.T.(*StructType).Name == other.T.(*StructType).Name
	default:
		return false
	}
}

func (ty *ExprType) IsBasic() bool {
	return ty.Kind == EXPR_TYPE_BASIC
}

func (ty *ExprType) IsArray() bool {
	return ty.Kind == EXPR_TYPE_ARRAY
}

func (ty *ExprType) String() string {
	switch ty.Kind {
	case EXPR_TYPE_BASIC:
		return ty.T.(*BasicType).Kind.String()
	case EXPR_TYPE_ARRAY:
		return fmt.Sprintf("[%s]", ty.T.(*ArrayType).Elem)
	case EXPR_TYPE_STRUCT:
		return ty.T.(*StructType).Name
	}
	return "?"
}
