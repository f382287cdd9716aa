// Package interp executes a checked program by walking its AST.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/HicaroD/Otag/internal/ast"
	"github.com/HicaroD/Otag/internal/diagnostics"
	"github.com/HicaroD/Otag/internal/symtab"
)

// A while loop that runs its body this many times is treated as infinite.
const MAX_LOOP_ITERATIONS = 10000

// returnSignal unwinds the Go call stack from a "return" statement up to
// the function call that is running it.
type returnSignal struct {
	value Value
	node  *ast.Node
}

func (r returnSignal) Error() string {
	return "return outside of function"
}

// Interpreter is not safe for concurrent use: run one per program.
type Interpreter struct {
	globals   *Environment
	env       *Environment
	symbols   *symtab.Table
	out       io.Writer
	collector *diagnostics.Collector
}

func New(out io.Writer, collector *diagnostics.Collector) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	globals := NewEnvironment(nil)
	return &Interpreter{
		globals:   globals,
		env:       globals,
		symbols:   symtab.New(),
		out:       out,
		collector: collector,
	}
}

func (in *Interpreter) Globals() *Environment {
	return in.globals
}

// Run executes every top-level statement in order and stops at the first
// error. A top-level "return" is evaluated and otherwise ignored.
func (in *Interpreter) Run(program *ast.Program) error {
	for _, stmt := range program.Stmts {
		err := in.Exec(stmt)
		if _, ok := err.(returnSignal); ok {
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) Exec(node *ast.Node) error {
	switch node.Kind {
	case ast.KIND_IMPORT_STMT:
		// only top-level imports are resolved, by the loader
		return nil
	case ast.KIND_VAR_DECL:
		return in.execVarDecl(node)
	case ast.KIND_ASSIGN_STMT:
		return in.execAssign(node)
	case ast.KIND_OUTPUT_STMT:
		return in.execOutput(node)
	case ast.KIND_COND_STMT:
		return in.execCondStmt(node)
	case ast.KIND_WHILE_LOOP_STMT:
		return in.execWhileLoop(node)
	case ast.KIND_FOR_LOOP_STMT:
		return in.fail(diagnostics.NewNotImplemented(node.Pos, "For döngüsü henüz uygulanmadı"))
	case ast.KIND_BREAK_STMT:
		return in.fail(diagnostics.NewNotImplemented(node.Pos, "Break ifadesi henüz uygulanmadı"))
	case ast.KIND_CONTINUE_STMT:
		return in.fail(diagnostics.NewNotImplemented(node.Pos, "Continue ifadesi henüz uygulanmadı"))
	case ast.KIND_FN_DECL:
		return in.execFnDecl(node)
	case ast.KIND_RETURN_STMT:
		return in.execReturn(node)
	case ast.KIND_STRUCT_DECL:
		return in.execStructDecl(node)
	case ast.KIND_FN_CALL:
		_, err := in.Eval(node)
		return err
	default:
		return in.fail(diagnostics.NewRuntime(node.Pos, "çalıştırılamayan ifade: %s", node.Kind))
	}
}

func (in *Interpreter) execBlock(block *ast.BlockStmt) error {
	for _, stmt := range block.Statements {
		if err := in.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execVarDecl(node *ast.Node) error {
	decl := node.Node.(*ast.VarDecl)
	name := decl.Name.Name()

	value, ok := ZeroValue(decl.Type)
	if !ok {
		return in.fail(diagnostics.NewNotImplemented(node.Pos, "Desteklenmeyen tür: %s", decl.Type))
	}

	in.symbols.Declare(name, decl.Type)
	in.symbols.SetValue(name, value)
	in.env.Define(name, value)
	return nil
}

func (in *Interpreter) execAssign(node *ast.Node) error {
	assign := node.Node.(*ast.AssignStmt)
	name := assign.Name.Name()

	value, err := in.Eval(assign.Value)
	if err != nil {
		return err
	}

	if !in.env.Assign(name, value) {
		in.env.Define(name, value)
	}
	in.symbols.SetValue(name, value)
	return nil
}

func (in *Interpreter) execOutput(node *ast.Node) error {
	output := node.Node.(*ast.OutputStmt)

	value, err := in.Eval(output.Value)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(in.out, Format(value))
	return err
}

func (in *Interpreter) execCondStmt(node *ast.Node) error {
	cond := node.Node.(*ast.CondStmt)

	ok, err := in.evalCondition(cond.Cond, "Eğer koşulu mantıksal (doğru/yanlış) bir değer döndürmelidir")
	if err != nil {
		return err
	}

	if ok {
		return in.execBlock(cond.Then)
	}
	if cond.Else != nil {
		return in.execBlock(cond.Else)
	}
	return nil
}

func (in *Interpreter) execWhileLoop(node *ast.Node) error {
	while := node.Node.(*ast.WhileLoop)

	for iterations := 0; ; iterations++ {
		if iterations >= MAX_LOOP_ITERATIONS {
			return in.fail(
				diagnostics.NewRuntime(
					node.Pos,
					"Döngü maksimum iterasyon sayısını aştı (%d). Sonsuz döngü olabilir.",
					MAX_LOOP_ITERATIONS,
				).WithSuggestions("döngü koşulunun bir noktada yanlış olduğundan emin olun"),
			)
		}

		ok, err := in.evalCondition(while.Cond, "Döngü koşulu mantıksal (doğru/yanlış) bir değer döndürmelidir")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := in.execBlock(while.Block); err != nil {
			return err
		}
	}
}

func (in *Interpreter) evalCondition(node *ast.Node, message string) (bool, error) {
	value, err := in.Eval(node)
	if err != nil {
		return false, err
	}
	b, ok := value.(BoolValue)
	if !ok {
		return false, in.fail(diagnostics.NewRuntime(node.Pos, "%s", message))
	}
	return b.Val, nil
}

func (in *Interpreter) execFnDecl(node *ast.Node) error {
	fn := node.Node.(*ast.FnDecl)
	if err := in.symbols.DefineFunction(fn); err != nil {
		return in.fail(diagnostics.NewRuntime(node.Pos, "Fonksiyon '%s' zaten tanımlanmış", fn.Name.Name()))
	}
	return nil
}

func (in *Interpreter) execStructDecl(node *ast.Node) error {
	st := node.Node.(*ast.StructDecl)
	if err := in.symbols.DefineStruct(st); err != nil {
		return in.fail(diagnostics.NewRuntime(node.Pos, "Yapı '%s' zaten tanımlanmış", st.Name.Name()))
	}
	return nil
}

func (in *Interpreter) execReturn(node *ast.Node) error {
	ret := node.Node.(*ast.ReturnStmt)
	// a bare return yields nothing and execution moves on
	if ret.Value == nil {
		return nil
	}

	value, err := in.Eval(ret.Value)
	if err != nil {
		return err
	}
	return returnSignal{value: value, node: node}
}

func (in *Interpreter) fail(diag *diagnostics.Diag) error {
	return in.collector.Report(diag)
}
