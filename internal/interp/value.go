package interp

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/HicaroD/Otag/internal/ast"
	"github.com/HicaroD/Otag/internal/lexer/token"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindBool
	KindArray
)

// String returns the type name shown to users in error messages.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "tamsayı"
	case KindFloat:
		return "ondalıklı"
	case KindString:
		return "metin"
	case KindBool:
		return "mantıksal"
	case KindArray:
		return "dizi"
	default:
		return fmt.Sprintf("bilinmeyen_tür_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. Values are never
// mutated after they are built, so they can be shared between bindings
// without copying.
type Value interface {
	Kind() Kind
}

type IntValue struct {
	Val int32
}

func (v IntValue) Kind() Kind { return KindInt }

type FloatValue struct {
	Val float64
}

func (v FloatValue) Kind() Kind { return KindFloat }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type ArrayValue struct {
	Elements []Value
}

func (v ArrayValue) Kind() Kind { return KindArray }

// ZeroValue returns the value a freshly declared variable of ty holds.
// Struct types have no zero value yet.
func ZeroValue(ty *ast.ExprType) (Value, bool) {
	switch {
	case ty.IsBasic():
		switch ty.T.(*ast.BasicType).Kind {
		case token.INT_TYPE:
			return IntValue{0}, true
		case token.STRING_TYPE:
			return StringValue{""}, true
		case token.FLOAT_TYPE:
			return FloatValue{0}, true
		case token.BOOL_TYPE:
			return BoolValue{false}, true
		}
	case ty.IsArray():
		return ArrayValue{}, true
	}
	return nil, false
}

// Format renders v the way "söyle" prints it.
func Format(v Value) string {
	switch v := v.(type) {
	case IntValue:
		return strconv.FormatInt(int64(v.Val), 10)
	case FloatValue:
		return formatFloat(v.Val)
	case StringValue:
		return v.Val
	case BoolValue:
		if v.Val {
			return "doğru"
		}
		return "yanlış"
	case ArrayValue:
		elems := make([]string, 0, len(v.Elements))
		for _, elem := range v.Elements {
			if s, ok := elem.(StringValue); ok {
				elems = append(elems, strconv.Quote(s.Val))
				continue
			}
			elems = append(elems, Format(elem))
		}
		return "[" + strings.Join(elems, ", ") + "]"
	}
	return fmt.Sprintf("%v", v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
