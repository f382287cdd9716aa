package loader

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/HicaroD/Otag/internal/ast"
	"github.com/HicaroD/Otag/internal/diagnostics"
	"github.com/HicaroD/Otag/internal/vfs"
)

func newStore(files map[string]string) *vfs.FS {
	store := vfs.New()
	for name, src := range files {
		store.AddFile(name, src)
	}
	return store
}

func outputs(program *ast.Program) []string {
	var values []string
	for _, stmt := range program.Stmts {
		if stmt.Kind != ast.KIND_OUTPUT_STMT {
			continue
		}
		output := stmt.Node.(*ast.OutputStmt)
		literal := output.Value.Node.(*ast.LiteralExpr)
		values = append(values, string(literal.Value))
	}
	return values
}

func TestLoadOrder(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		entry    string
		expected []string
	}{
		{
			name: "chain",
			files: map[string]string{
				"a.otağ": "kullan \"b.otağ\"\nsöyle \"A\"",
				"b.otağ": "kullan \"c.otağ\"\nsöyle \"B\"",
				"c.otağ": "söyle \"C\"",
			},
			entry:    "a.otağ",
			expected: []string{"C", "B", "A"},
		},
		{
			name: "import spliced in place",
			files: map[string]string{
				"main.otağ": "söyle \"önce\"\nkullan \"lib.otağ\"\nsöyle \"sonra\"",
				"lib.otağ":  "söyle \"lib\"",
			},
			entry:    "main.otağ",
			expected: []string{"önce", "lib", "sonra"},
		},
		{
			name: "cycle is skipped",
			files: map[string]string{
				"a.otağ": "kullan \"b.otağ\"\nsöyle \"A\"",
				"b.otağ": "kullan \"a.otağ\"\nsöyle \"B\"",
			},
			entry:    "a.otağ",
			expected: []string{"B", "A"},
		},
		{
			name: "duplicate import loads once",
			files: map[string]string{
				"main.otağ": "kullan \"lib.otağ\"\nkullan \"lib.otağ\"\nsöyle \"main\"",
				"lib.otağ":  "söyle \"lib\"",
			},
			entry:    "main.otağ",
			expected: []string{"lib", "main"},
		},
		{
			name: "relative to importer",
			files: map[string]string{
				"main.otağ":       "kullan \"lib/a.otağ\"\nsöyle \"main\"",
				"lib/a.otağ":      "kullan \"b.otağ\"\nsöyle \"lib/a\"",
				"lib/b.otağ":      "söyle \"lib/b\"",
				"b.otağ":          "söyle \"yanlış dosya\"",
				"lib/unused.otağ": "söyle \"kullanılmıyor\"",
			},
			entry:    "main.otağ",
			expected: []string{"lib/b", "lib/a", "main"},
		},
		{
			name: "absolute import",
			files: map[string]string{
				"app/main.otağ":  "kullan \"/lib/x.otağ\"\nsöyle \"main\"",
				"/lib/x.otağ":    "söyle \"x\"",
				"app/lib/x.otağ": "söyle \"yanlış dosya\"",
			},
			entry:    "app/main.otağ",
			expected: []string{"x", "main"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := New(newStore(test.files), diagnostics.New())
			program, err := l.Load(test.entry)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got := outputs(program); !reflect.DeepEqual(got, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, got)
			}
		})
	}
}

func TestLoadedFiles(t *testing.T) {
	store := newStore(map[string]string{
		"a.otağ": "kullan \"b.otağ\"",
		"b.otağ": "kullan \"a.otağ\"",
	})
	l := New(store, diagnostics.New())
	if _, err := l.Load("./a.otağ"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := []string{"a.otağ", "b.otağ"}
	if !reflect.DeepEqual(l.Loaded(), expected) {
		t.Errorf("expected %v, got %v", expected, l.Loaded())
	}
}

func TestMissingFile(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		entry   string
		missing string
	}{
		{
			name:    "missing entry",
			files:   map[string]string{},
			entry:   "yok.otağ",
			missing: "yok.otağ",
		},
		{
			name:    "missing import",
			files:   map[string]string{"main.otağ": "kullan \"yok.otağ\""},
			entry:   "main.otağ",
			missing: "yok.otağ",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			collector := diagnostics.New()
			_, err := New(newStore(test.files), collector).Load(test.entry)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var diag *diagnostics.Diag
			if !errors.As(err, &diag) {
				t.Fatalf("expected *diagnostics.Diag, got %T", err)
			}
			if diag.Kind != diagnostics.RUNTIME {
				t.Errorf("expected runtime error, got %s", diag.Kind)
			}
			expected := "Dosya bulunamadı: " + test.missing
			if diag.Message != expected {
				t.Errorf("expected %q, got %q", expected, diag.Message)
			}
			if diag.Pos.String() != test.missing+":0:0" {
				t.Errorf("expected position %s:0:0, got %s", test.missing, diag.Pos)
			}
			if !collector.HasErrors() {
				t.Error("expected the error to be collected")
			}
		})
	}
}

type brokenResolver struct{}

func (brokenResolver) Resolve(string) ([]byte, error) {
	return nil, errors.New("izin reddedildi")
}

func TestReadError(t *testing.T) {
	_, err := New(brokenResolver{}, diagnostics.New()).Load("main.otağ")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "Dosya okuma hatası: izin reddedildi") {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestSyntaxErrorInImport(t *testing.T) {
	store := newStore(map[string]string{
		"main.otağ": "kullan \"lib.otağ\"",
		"lib.otağ":  "söyle",
	})
	_, err := New(store, diagnostics.New()).Load("main.otağ")
	if !diagnostics.Is(err, diagnostics.SYNTAX) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if !strings.Contains(err.Error(), "lib.otağ") {
		t.Errorf("expected the error to point at lib.otağ, got %s", err)
	}
}
