package ast

import (
	"fmt"
	"path"
)

// Program is the flattened list of statements of an entry file and
// everything it imports, in execution order.
type Program struct {
	Loc   *Loc
	Stmts []*Node
}

func (p *Program) Append(stmts ...*Node) {
	p.Stmts = append(p.Stmts, stmts...)
}

type Loc struct {
	Name string
	Dir  string
	Path string
}

// LocFromName builds a location for in-memory sources, where the name is
// also the path used to resolve imports.
func LocFromName(name string) *Loc {
	return &Loc{Name: name, Dir: path.Dir(name), Path: name}
}

func (l Loc) String() string {
	return fmt.Sprintf(
		"Name: %s | Dir: %s | Path: %s",
		l.Name,
		l.Dir,
		l.Path,
	)
}
