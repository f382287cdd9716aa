// Package symtab keeps the declarations seen while checking a program: a
// stack of variable scopes plus flat registries for functions and structs.
package symtab

import (
	"errors"
	"fmt"

	"github.com/HicaroD/Otag/internal/ast"
)

var (
	ERR_SYMBOL_NOT_FOUND_ON_SCOPE = errors.New("symbol not found on scope")
	ERR_FUNCTION_ALREADY_DEFINED  = errors.New("function already defined")
	ERR_STRUCT_ALREADY_DEFINED    = errors.New("struct already defined")
)

type Symbol struct {
	Name string
	Type *ast.ExprType
	// Last value stored through SetValue, nil until then.
	Value any
}

type Scope struct {
	Parent  *Scope
	Symbols map[string]*Symbol
}

func NewScope(parent *Scope) *Scope {
	return &Scope{Parent: parent, Symbols: make(map[string]*Symbol)}
}

func (scope *Scope) LookupCurrentScope(name string) (*Symbol, error) {
	if symbol, ok := scope.Symbols[name]; ok {
		return symbol, nil
	}
	return nil, ERR_SYMBOL_NOT_FOUND_ON_SCOPE
}

func (scope *Scope) LookupAcrossScopes(name string) (*Symbol, error) {
	if symbol, ok := scope.Symbols[name]; ok {
		return symbol, nil
	}
	if scope.Parent == nil {
		return nil, ERR_SYMBOL_NOT_FOUND_ON_SCOPE
	}
	return scope.Parent.LookupAcrossScopes(name)
}

func (scope Scope) String() string {
	if scope.Parent == nil {
		return fmt.Sprintf("Scope:\nParent: nil\nCurrent: %v\n", scope.Symbols)
	}
	return fmt.Sprintf("Scope:\nParent: %v\nCurrent: %v\n", scope.Parent, scope.Symbols)
}

type Table struct {
	current   *Scope
	depth     int
	functions map[string]*ast.FnDecl
	structs   map[string]*ast.StructDecl
}

func New() *Table {
	return &Table{
		current:   NewScope(nil),
		depth:     1,
		functions: make(map[string]*ast.FnDecl),
		structs:   make(map[string]*ast.StructDecl),
	}
}

// Declare binds name in the innermost scope, shadowing outer bindings. A
// second declaration in the same scope replaces the first; callers that
// must reject it check LookupCurrentScope first.
func (t *Table) Declare(name string, ty *ast.ExprType) {
	t.current.Symbols[name] = &Symbol{Name: name, Type: ty}
}

func (t *Table) Lookup(name string) (*Symbol, bool) {
	symbol, err := t.current.LookupAcrossScopes(name)
	return symbol, err == nil
}

func (t *Table) LookupCurrentScope(name string) (*Symbol, bool) {
	symbol, err := t.current.LookupCurrentScope(name)
	return symbol, err == nil
}

// SetValue updates the nearest binding of name. Unbound names are ignored.
func (t *Table) SetValue(name string, value any) {
	if symbol, ok := t.Lookup(name); ok {
		symbol.Value = value
	}
}

func (t *Table) PushScope() {
	t.current = NewScope(t.current)
	t.depth++
}

// PopScope never discards the root scope.
func (t *Table) PopScope() {
	if t.current.Parent == nil {
		return
	}
	t.current = t.current.Parent
	t.depth--
}

func (t *Table) Depth() int {
	return t.depth
}

func (t *Table) DefineFunction(fn *ast.FnDecl) error {
	name := fn.Name.Name()
	if _, ok := t.functions[name]; ok {
		return ERR_FUNCTION_ALREADY_DEFINED
	}
	t.functions[name] = fn
	return nil
}

func (t *Table) LookupFunction(name string) (*ast.FnDecl, bool) {
	fn, ok := t.functions[name]
	return fn, ok
}

func (t *Table) DefineStruct(st *ast.StructDecl) error {
	name := st.Name.Name()
	if _, ok := t.structs[name]; ok {
		return ERR_STRUCT_ALREADY_DEFINED
	}
	t.structs[name] = st
	return nil
}

func (t *Table) LookupStruct(name string) (*ast.StructDecl, bool) {
	st, ok := t.structs[name]
	return st, ok
}
