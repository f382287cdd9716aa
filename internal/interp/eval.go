package interp

import (
	"math"
	"strconv"

	"github.com/HicaroD/Otag/internal/ast"
	"github.com/HicaroD/Otag/internal/diagnostics"
	"github.com/HicaroD/Otag/internal/lexer/token"
)

func (in *Interpreter) Eval(node *ast.Node) (Value, error) {
	switch node.Kind {
	case ast.KIND_ID_EXPR:
		id := node.Node.(*ast.IdExpr)
		value, ok := in.env.Get(id.Name.Name())
		if !ok {
			return nil, in.fail(diagnostics.NewRuntime(node.Pos, "Tanımlanmamış değişken: %s", id.Name.Name()))
		}
		return value, nil
	case ast.KIND_LITERAL_EXPR:
		return in.evalLiteral(node)
	case ast.KIND_BINARY_EXPR:
		return in.evalBinaryExpr(node)
	case ast.KIND_FN_CALL:
		return in.evalFnCall(node)
	case ast.KIND_ARRAY_LITERAL_EXPR:
		array := node.Node.(*ast.ArrayLiteralExpr)
		elems := make([]Value, 0, len(array.Elems))
		for _, elem := range array.Elems {
			value, err := in.Eval(elem)
			if err != nil {
				return nil, err
			}
			elems = append(elems, value)
		}
		return ArrayValue{Elements: elems}, nil
	case ast.KIND_INDEX_EXPR:
		return in.evalIndexExpr(node)
	case ast.KIND_STRUCT_LITERAL_EXPR:
		return nil, in.fail(diagnostics.NewNotImplemented(node.Pos, "Yapı değişmezleri henüz uygulanmadı"))
	case ast.KIND_FIELD_ACCESS:
		return nil, in.fail(diagnostics.NewNotImplemented(node.Pos, "Yapı alanı erişimi henüz uygulanmadı"))
	default:
		return nil, in.fail(diagnostics.NewRuntime(node.Pos, "değerlendirilemeyen ifade: %s", node.Kind))
	}
}

func (in *Interpreter) evalLiteral(node *ast.Node) (Value, error) {
	literal := node.Node.(*ast.LiteralExpr)

	switch literal.Kind {
	case token.INTEGER_LITERAL:
		n, err := strconv.ParseInt(string(literal.Value), 10, 32)
		if err != nil {
			return nil, in.fail(diagnostics.NewSyntax(node.Pos, "geçersiz tamsayı değeri '%s'", literal.Value))
		}
		return IntValue{int32(n)}, nil
	case token.FLOAT_LITERAL:
		f, err := strconv.ParseFloat(string(literal.Value), 64)
		if err != nil {
			return nil, in.fail(diagnostics.NewSyntax(node.Pos, "geçersiz ondalıklı değer '%s'", literal.Value))
		}
		return FloatValue{f}, nil
	case token.STRING_LITERAL:
		return StringValue{string(literal.Value)}, nil
	case token.TRUE_BOOL_LITERAL:
		return BoolValue{true}, nil
	case token.FALSE_BOOL_LITERAL:
		return BoolValue{false}, nil
	}
	return nil, in.fail(diagnostics.NewSyntax(node.Pos, "bilinmeyen değer türü: %s", literal.Kind))
}

func (in *Interpreter) evalBinaryExpr(node *ast.Node) (Value, error) {
	binary := node.Node.(*ast.BinaryExpr)

	left, err := in.Eval(binary.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.Eval(binary.Right)
	if err != nil {
		return nil, err
	}

	if binary.Op == token.PLUS {
		return in.add(node, left, right)
	}
	return in.compare(node, binary.Op, left, right)
}

func (in *Interpreter) add(node *ast.Node, left, right Value) (Value, error) {
	switch l := left.(type) {
	case IntValue:
		if r, ok := right.(IntValue); ok {
			sum := int64(l.Val) + int64(r.Val)
			if sum > math.MaxInt32 || sum < math.MinInt32 {
				return nil, in.fail(diagnostics.NewRuntime(node.Pos, "Tamsayı taşması: %d + %d", l.Val, r.Val))
			}
			return IntValue{int32(sum)}, nil
		}
	case FloatValue:
		if r, ok := right.(FloatValue); ok {
			return FloatValue{l.Val + r.Val}, nil
		}
	case StringValue:
		if r, ok := right.(StringValue); ok {
			return StringValue{l.Val + r.Val}, nil
		}
	}
	return nil, in.fail(
		diagnostics.NewRuntime(node.Pos, "Tür uyumsuzluğu: %s ve %s toplanamaz", left.Kind(), right.Kind()),
	)
}

func (in *Interpreter) compare(node *ast.Node, op token.Kind, left, right Value) (Value, error) {
	var cmp int

	switch l := left.(type) {
	case IntValue:
		r, ok := right.(IntValue)
		if !ok {
			return nil, in.compareMismatch(node, left, right)
		}
		cmp = compareOrdered(l.Val, r.Val)
	case FloatValue:
		r, ok := right.(FloatValue)
		if !ok {
			return nil, in.compareMismatch(node, left, right)
		}
		// NaN compares false against everything
		if math.IsNaN(l.Val) || math.IsNaN(r.Val) {
			return BoolValue{false}, nil
		}
		cmp = compareOrdered(l.Val, r.Val)
	default:
		return nil, in.compareMismatch(node, left, right)
	}

	switch op {
	case token.GREATER:
		return BoolValue{cmp > 0}, nil
	case token.GREATER_EQ:
		return BoolValue{cmp >= 0}, nil
	case token.LESS:
		return BoolValue{cmp < 0}, nil
	case token.LESS_EQ:
		return BoolValue{cmp <= 0}, nil
	}
	return nil, in.fail(diagnostics.NewRuntime(node.Pos, "bilinmeyen işleç: %s", op))
}

func (in *Interpreter) compareMismatch(node *ast.Node, left, right Value) error {
	return in.fail(
		diagnostics.NewRuntime(node.Pos, "Tür uyumsuzluğu: %s ve %s karşılaştırılamaz", left.Kind(), right.Kind()),
	)
}

func compareOrdered[T int32 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (in *Interpreter) evalIndexExpr(node *ast.Node) (Value, error) {
	index := node.Node.(*ast.IndexExpr)

	target, err := in.Eval(index.Array)
	if err != nil {
		return nil, err
	}
	array, ok := target.(ArrayValue)
	if !ok {
		return nil, in.fail(diagnostics.NewRuntime(node.Pos, "Dizi değil, dizi erişimi yapılamaz"))
	}

	idxValue, err := in.Eval(index.Index)
	if err != nil {
		return nil, err
	}
	idx, ok := idxValue.(IntValue)
	if !ok {
		return nil, in.fail(diagnostics.NewRuntime(index.Index.Pos, "Dizi indeksi tamsayı olmalıdır"))
	}

	if idx.Val < 0 || int(idx.Val) >= len(array.Elements) {
		return nil, in.fail(
			diagnostics.NewRuntime(
				index.Index.Pos,
				"Dizi indeksi sınırların dışında: %d (dizi uzunluğu: %d)",
				idx.Val,
				len(array.Elements),
			),
		)
	}
	return array.Elements[idx.Val], nil
}

func (in *Interpreter) evalFnCall(node *ast.Node) (Value, error) {
	call := node.Node.(*ast.FnCall)
	name := call.Name.Name()

	fn, ok := in.symbols.LookupFunction(name)
	if !ok {
		return nil, in.fail(diagnostics.NewRuntime(node.Pos, "Tanımlanmamış fonksiyon: %s", name))
	}

	if len(call.Args) != len(fn.Params) {
		return nil, in.fail(
			diagnostics.NewRuntime(
				node.Pos,
				"Fonksiyon '%s' %d parametre bekliyor, %d verildi",
				name,
				len(fn.Params),
				len(call.Args),
			),
		)
	}

	// arguments are evaluated in the caller's environment
	args := make([]Value, 0, len(call.Args))
	for _, arg := range call.Args {
		value, err := in.Eval(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}

	frame := in.globals.Extend()
	in.symbols.PushScope()
	for i, param := range fn.Params {
		frame.Define(param.Name.Name(), args[i])
		in.symbols.Declare(param.Name.Name(), param.Type)
	}

	caller := in.env
	in.env = frame
	defer func() {
		in.env = caller
		in.symbols.PopScope()
	}()

	err := in.execBlock(fn.Block)
	if ret, ok := err.(returnSignal); ok {
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, in.noReturnValue(node, name)
}

func (in *Interpreter) noReturnValue(node *ast.Node, name string) error {
	return in.fail(
		diagnostics.NewRuntime(node.Pos, "Fonksiyon '%s' bir değer döndürmedi", name).
			WithSuggestions("fonksiyonun sonuna bir 'return <değer>' ekleyin"),
	)
}
