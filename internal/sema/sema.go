package sema

import (
	"github.com/HicaroD/Otag/internal/ast"
	"github.com/HicaroD/Otag/internal/diagnostics"
	"github.com/HicaroD/Otag/internal/symtab"
)

// sema checks declarations of a flattened program before it runs. Only
// top-level statements are visited; anything deeper is left to the
// interpreter.
type sema struct {
	symbols   *symtab.Table
	collector *diagnostics.Collector
}

func New(collector *diagnostics.Collector) *sema {
	return &sema{symtab.New(), collector}
}

// NewWithTable checks against an existing table, so declarations survive
// across several Check calls (used by the REPL).
func NewWithTable(symbols *symtab.Table, collector *diagnostics.Collector) *sema {
	return &sema{symbols, collector}
}

func (s *sema) Check(program *ast.Program) error {
	for _, node := range program.Stmts {
		err := s.checkStmt(node)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *sema) checkStmt(node *ast.Node) error {
	switch node.Kind {
	case ast.KIND_VAR_DECL:
		return s.checkVarDecl(node)
	case ast.KIND_ASSIGN_STMT:
		return s.checkAssign(node)
	case ast.KIND_FN_DECL:
		return s.checkFnDecl(node)
	case ast.KIND_STRUCT_DECL:
		return s.checkStructDecl(node)
	default:
		// imports are already inlined by the loader, the rest is checked
		// while running
		return nil
	}
}

func (s *sema) checkVarDecl(node *ast.Node) error {
	decl := node.Node.(*ast.VarDecl)
	name := decl.Name.Name()

	if _, found := s.symbols.LookupCurrentScope(name); found {
		return s.collector.Report(
			diagnostics.NewSemantic(node.Pos, "Değişken '%s' zaten tanımlanmış", name).
				WithSuggestions("mevcut değişkene yeni bir değer atayın: " + name + " = ..."),
		)
	}
	s.symbols.Declare(name, decl.Type)
	return nil
}

func (s *sema) checkAssign(node *ast.Node) error {
	assign := node.Node.(*ast.AssignStmt)
	name := assign.Name.Name()

	if _, found := s.symbols.Lookup(name); !found {
		return s.collector.Report(
			diagnostics.NewSemantic(node.Pos, "Tanımlanmamış değişken: %s", name).
				WithSuggestions("önce değişkeni tanımlayın: " + name + "'ı tamsayı olarak tanımla"),
		)
	}
	return nil
}

func (s *sema) checkFnDecl(node *ast.Node) error {
	fn := node.Node.(*ast.FnDecl)

	if err := s.symbols.DefineFunction(fn); err != nil {
		return s.collector.Report(
			diagnostics.NewSemantic(node.Pos, "Fonksiyon '%s' zaten tanımlanmış", fn.Name.Name()),
		)
	}
	return nil
}

func (s *sema) checkStructDecl(node *ast.Node) error {
	st := node.Node.(*ast.StructDecl)

	if err := s.symbols.DefineStruct(st); err != nil {
		return s.collector.Report(
			diagnostics.NewSemantic(node.Pos, "Yapı '%s' zaten tanımlanmış", st.Name.Name()),
		)
	}
	return nil
}
