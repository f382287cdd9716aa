// Package otag runs Otağ programs from memory or from disk.
//
//	rt := otag.New()
//	rt.AddSource("main.otağ", "söyle \"merhaba\"")
//	err := rt.Run("main.otağ")
package otag

import (
	"io"
	"os"

	"github.com/HicaroD/Otag/internal/ast"
	"github.com/HicaroD/Otag/internal/diagnostics"
	"github.com/HicaroD/Otag/internal/interp"
	"github.com/HicaroD/Otag/internal/loader"
	"github.com/HicaroD/Otag/internal/parser"
	"github.com/HicaroD/Otag/internal/sema"
	"github.com/HicaroD/Otag/internal/vfs"
)

const INLINE_FILENAME = "<inline>"

type VirtualFileSystem = vfs.FS

type Option func(*Runtime)

// WithStdout redirects "söyle" output, os.Stdout by default.
func WithStdout(out io.Writer) Option {
	return func(r *Runtime) {
		r.stdout = out
	}
}

// WithDisk makes files missing from memory fall back to the disk, relative
// to root.
func WithDisk(root string) Option {
	return func(r *Runtime) {
		r.resolver = vfs.Layered{r.files, vfs.Disk{Root: root}}
	}
}

// WithDiagnostics echoes every diagnostic to out as it is reported.
func WithDiagnostics(out io.Writer) Option {
	return func(r *Runtime) {
		r.diagOut = out
	}
}

// Runtime is not safe for concurrent use. Each Run starts from empty
// registries and variables.
type Runtime struct {
	files    *VirtualFileSystem
	resolver vfs.Resolver
	stdout   io.Writer
	diagOut  io.Writer
}

func New(opts ...Option) *Runtime {
	files := vfs.New()
	r := &Runtime{
		files:    files,
		resolver: files,
		stdout:   os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runtime) Files() *VirtualFileSystem {
	return r.files
}

func (r *Runtime) AddSource(path, text string) {
	r.files.AddFile(path, text)
}

// Run loads entry with its imports, checks it and executes it.
func (r *Runtime) Run(entry string) error {
	collector := r.newCollector()

	program, err := loader.New(r.resolver, collector).Load(entry)
	if err != nil {
		return err
	}
	return r.execute(program, collector)
}

// RunInline runs src as a single file named <inline>. Imports are not
// resolved.
func (r *Runtime) RunInline(src string) error {
	collector := r.newCollector()

	p := parser.New(collector)
	program, err := p.ParseFile(ast.LocFromName(INLINE_FILENAME), []byte(src))
	if err != nil {
		return err
	}
	return r.execute(program, collector)
}

func (r *Runtime) execute(program *ast.Program, collector *diagnostics.Collector) error {
	if err := sema.New(collector).Check(program); err != nil {
		return err
	}
	return interp.New(r.stdout, collector).Run(program)
}

func (r *Runtime) newCollector() *diagnostics.Collector {
	if r.diagOut == nil {
		return diagnostics.New()
	}
	return diagnostics.NewWithOutput(r.diagOut)
}

// RunInline runs src on a fresh runtime that prints to os.Stdout.
func RunInline(src string) error {
	return New().RunInline(src)
}
