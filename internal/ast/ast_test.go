package ast

import (
	"testing"

	"github.com/HicaroD/Otag/internal/lexer/token"
)

func TestNodeCategories(t *testing.T) {
	tests := []struct {
		kind   NodeKind
		isStmt bool
		isExpr bool
	}{
		{KIND_VAR_DECL, true, false},
		{KIND_STRUCT_DECL, true, false},
		{KIND_FN_CALL, true, true},
		{KIND_ID_EXPR, false, true},
		{KIND_FIELD_ACCESS, false, true},
	}

	for _, test := range tests {
		t.Run(test.kind.String(), func(t *testing.T) {
			node := NewNode(test.kind, token.UnknownPos(), nil)
			if node.IsStmt() != test.isStmt {
				t.Errorf("expected IsStmt=%v, got %v", test.isStmt, node.IsStmt())
			}
			if node.IsExpr() != test.isExpr {
				t.Errorf("expected IsExpr=%v, got %v", test.isExpr, node.IsExpr())
			}
		})
	}
}

func TestExprTypes(t *testing.T) {
	intType := NewBasicType(token.INT_TYPE)
	ints := NewArrayType(NewBasicType(token.INT_TYPE))
	matrix := NewArrayType(NewArrayType(NewBasicType(token.FLOAT_TYPE)))

	tests := []struct {
		ty       *ExprType
		expected string
	}{
		{intType, "tamsayı"},
		{ints, "[tamsayı]"},
		{matrix, "[[ondalıklı]]"},
		{NewStructType("nokta"), "nokta"},
	}
	for _, test := range tests {
		if test.ty.String() != test.expected {
			t.Errorf("expected %s, got %s", test.expected, test.ty)
		}
	}

	if !ints.Equals(NewArrayType(NewBasicType(token.INT_TYPE))) {
		t.Error("expected equal array types")
	}
	if ints.Equals(intType) || intType.Equals(NewBasicType(token.STRING_TYPE)) {
		t.Error("expected different types to differ")
	}
	if !intType.IsBasic() || !ints.IsArray() {
		t.Error("unexpected type kind")
	}
}
