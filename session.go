package otag

import (
	"fmt"

	"github.com/HicaroD/Otag/internal/ast"
	"github.com/HicaroD/Otag/internal/diagnostics"
	"github.com/HicaroD/Otag/internal/interp"
	"github.com/HicaroD/Otag/internal/parser"
	"github.com/HicaroD/Otag/internal/sema"
	"github.com/HicaroD/Otag/internal/symtab"
)

const SESSION_FILENAME = "<repl>"

// Session keeps variables, functions and structs alive between Eval calls.
// The interactive prompt runs one line or block per call.
type Session struct {
	collector *diagnostics.Collector
	symbols   *symtab.Table
	interp    *interp.Interpreter
}

func (r *Runtime) NewSession() *Session {
	collector := r.newCollector()
	return &Session{
		collector: collector,
		symbols:   symtab.New(),
		interp:    interp.New(r.stdout, collector),
	}
}

func (s *Session) Eval(src string) error {
	s.collector.Reset()

	p := parser.New(s.collector)
	program, err := p.ParseFile(ast.LocFromName(SESSION_FILENAME), []byte(src))
	if err != nil {
		return err
	}

	if err := sema.NewWithTable(s.symbols, s.collector).Check(program); err != nil {
		return err
	}
	return s.interp.Run(program)
}

// Variables lists the session's global bindings as "name = value", sorted
// by name.
func (s *Session) Variables() []string {
	globals := s.interp.Globals()
	keys := globals.Keys()
	vars := make([]string, 0, len(keys))
	for _, name := range keys {
		value, _ := globals.Get(name)
		vars = append(vars, fmt.Sprintf("%s = %s", name, interp.Format(value)))
	}
	return vars
}

// Complete reports whether src parses without running out of input, so a
// prompt knows to ask for another line before calling Eval.
func Complete(src string) bool {
	_, err := parser.ParseSource(SESSION_FILENAME, src)
	if err == nil {
		return true
	}
	return !parser.IsUnexpectedEOF(err)
}
