// Package loader reads an entry file, resolves its top-level imports and
// flattens everything into a single program.
package loader

import (
	"errors"
	"path"

	"github.com/HicaroD/Otag/internal/ast"
	"github.com/HicaroD/Otag/internal/diagnostics"
	"github.com/HicaroD/Otag/internal/lexer/token"
	"github.com/HicaroD/Otag/internal/parser"
	"github.com/HicaroD/Otag/internal/vfs"
)

type Resolver = vfs.Resolver

// Loader is single use: the visited set lives as long as the loader.
type Loader struct {
	resolver  Resolver
	collector *diagnostics.Collector
	visited   map[string]bool
	// Files in the order they were loaded.
	order []string
}

func New(resolver Resolver, collector *diagnostics.Collector) *Loader {
	return &Loader{
		resolver:  resolver,
		collector: collector,
		visited:   make(map[string]bool),
	}
}

// Load parses entry and splices every imported file's statements where its
// import stood. A file already visited is skipped, which also breaks
// import cycles.
func (l *Loader) Load(entry string) (*ast.Program, error) {
	entry = path.Clean(entry)

	stmts, err := l.loadFile(entry)
	if err != nil {
		return nil, err
	}

	program := &ast.Program{Loc: ast.LocFromName(entry)}
	program.Append(stmts...)
	return program, nil
}

// Loaded reports the files read so far, in load order.
func (l *Loader) Loaded() []string {
	return l.order
}

func (l *Loader) loadFile(filePath string) ([]*ast.Node, error) {
	l.visited[filePath] = true
	l.order = append(l.order, filePath)

	src, err := l.resolver.Resolve(filePath)
	if err != nil {
		pos := token.NewPosition(filePath, 0, 0)
		if errors.Is(err, vfs.ErrNotFound) {
			return nil, l.collector.Report(diagnostics.NewRuntime(pos, "Dosya bulunamadı: %s", filePath))
		}
		return nil, l.collector.Report(diagnostics.NewRuntime(pos, "Dosya okuma hatası: %v", err))
	}

	p := parser.New(l.collector)
	program, err := p.ParseFile(ast.LocFromName(filePath), src)
	if err != nil {
		return nil, err
	}

	stmts := make([]*ast.Node, 0, len(program.Stmts))
	for _, stmt := range program.Stmts {
		if !stmt.IsImport() {
			stmts = append(stmts, stmt)
			continue
		}

		imp := stmt.Node.(*ast.ImportStmt)
		target := path.Join(path.Dir(filePath), imp.Path)
		if path.IsAbs(imp.Path) {
			target = path.Clean(imp.Path)
		}
		if l.visited[target] {
			continue
		}

		imported, err := l.loadFile(target)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, imported...)
	}
	return stmts, nil
}
