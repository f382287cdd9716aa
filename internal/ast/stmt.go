package ast

import (
	"fmt"
	"strings"

	"github.com/HicaroD/Otag/internal/lexer/token"
)

type ImportStmt struct {
	Path string
}

func (imp ImportStmt) String() string {
	return fmt.Sprintf("kullan %q", imp.Path)
}

type VarDecl struct {
	Name *token.Token
	Type *ExprType
}

func (decl VarDecl) String() string {
	return fmt.Sprintf("%s'ı %s olarak tanımla", decl.Name.Name(), decl.Type)
}

type AssignStmt struct {
	Name  *token.Token
	Value *Node
}

func (assign AssignStmt) String() string {
	return fmt.Sprintf("%s = %s", assign.Name.Name(), assign.Value)
}

type OutputStmt struct {
	Value *Node
}

func (output OutputStmt) String() string {
	return fmt.Sprintf("söyle %s", output.Value)
}

type BlockStmt struct {
	Statements []*Node
}

func (block BlockStmt) String() string {
	stmts := make([]string, 0, len(block.Statements))
	for _, stmt := range block.Statements {
		stmts = append(stmts, stmt.String())
	}
	return strings.Join(stmts, "; ")
}

type CondStmt struct {
	Cond *Node
	Then *BlockStmt
	// nil when there is no "yoksa" branch
	Else *BlockStmt
}

func (cond CondStmt) String() string {
	if cond.Else == nil {
		return fmt.Sprintf("eğer %s ise %s son", cond.Cond, cond.Then)
	}
	return fmt.Sprintf("eğer %s ise %s yoksa %s son", cond.Cond, cond.Then, cond.Else)
}

type WhileLoop struct {
	Cond  *Node
	Block *BlockStmt
}

func (while WhileLoop) String() string {
	return fmt.Sprintf("döngü %s ise %s son", while.Cond, while.Block)
}

type ForLoop struct {
	Var   *token.Token
	Start *Node
	End   *Node
	Step  *Node
	Block *BlockStmt
}

func (forLoop ForLoop) String() string {
	if forLoop.Step == nil {
		return fmt.Sprintf("için %s %s dan %s ise %s son", forLoop.Var.Name(), forLoop.Start, forLoop.End, forLoop.Block)
	}
	return fmt.Sprintf("için %s %s dan %s adım %s ise %s son", forLoop.Var.Name(), forLoop.Start, forLoop.End, forLoop.Step, forLoop.Block)
}

type Field struct {
	Name *token.Token
	Type *ExprType
}

func (field Field) String() string {
	return fmt.Sprintf("%s: %s", field.Name.Name(), field.Type)
}

type FnDecl struct {
	Name    *token.Token
	Params  []*Field
	RetType *ExprType // nil when omitted
	Block   *BlockStmt
}

func (fnDecl FnDecl) String() string {
	params := make([]string, 0, len(fnDecl.Params))
	for _, param := range fnDecl.Params {
		params = append(params, param.String())
	}
	ret := ""
	if fnDecl.RetType != nil {
		ret = " -> " + fnDecl.RetType.String()
	}
	return fmt.Sprintf("fonksiyon %s(%s)%s { %s }", fnDecl.Name.Name(), strings.Join(params, ", "), ret, fnDecl.Block)
}

type ReturnStmt struct {
	Return *token.Token
	Value  *Node // nil on a bare return
}

func (ret ReturnStmt) String() string {
	if ret.Value == nil {
		return "return"
	}
	return fmt.Sprintf("return %s", ret.Value)
}

type StructDecl struct {
	Name   *token.Token
	Fields []*Field
}

func (st StructDecl) String() string {
	fields := make([]string, 0, len(st.Fields))
	for _, field := range st.Fields {
		fields = append(fields, field.String())
	}
	return fmt.Sprintf("%s { %s }", st.Name.Name(), strings.Join(fields, ", "))
}
